package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Completer is the narrow language-model surface the assistant needs.
// Implemented by the OpenAI client wrapper.
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error)
}

// ApologyMessage is returned when the generative fallback itself fails.
const ApologyMessage = "I apologize, but I couldn't find an answer to your question."

const answerSystemPrompt = "You are a helpful assistant that answers questions about a to-do list application based on provided Q&A pairs."

const answerPromptTemplate = `Based on the following Q&A pairs about a to-do list application, answer the user's question.

Q&A Pairs:
%s

User's question: %s

Provide a concise answer based on the Q&A pairs above. If the question is not directly covered, provide the closest relevant answer.`

// Answerer resolves a question against the loaded knowledge base, falling
// back to a single model completion seeded with the whole corpus.
type Answerer struct {
	Pairs       []QAPair
	AI          Completer
	MinTokenLen int
	L           *logrus.Logger
}

func NewAnswerer(pairs []QAPair, ai Completer, minTokenLen int, l *logrus.Logger) *Answerer {
	if minTokenLen <= 0 {
		minTokenLen = DefaultMinTokenLen
	}
	return &Answerer{Pairs: pairs, AI: ai, MinTokenLen: minTokenLen, L: l}
}

// Answer returns the matched or generated answer. It never returns an
// error: the fallback fails closed with ApologyMessage.
func (a *Answerer) Answer(ctx context.Context, question string) string {
	if answer, ok := MatchAnswer(a.Pairs, question, a.MinTokenLen); ok {
		return answer
	}

	prompt := fmt.Sprintf(answerPromptTemplate, CorpusContext(a.Pairs), question)
	answer, err := a.AI.Complete(ctx, answerSystemPrompt, prompt, 200, 0.3)
	if err != nil {
		a.L.Errorf("[Bot] answer fallback failed: %s", err.Error())
		return ApologyMessage
	}
	return strings.TrimSpace(answer)
}
