package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// RedirectionMessage is returned for questions the gate classifies as
// unrelated to the to-do application.
const RedirectionMessage = "I'm a Q&A assistant designed specifically to help with questions about the to-do list application. I can only answer questions related to how to use the app, such as adding tasks, completing tasks, deleting tasks, and other app features. Please ask me something about the to-do list app!"

const gateSystemPrompt = "You are a helpful classifier that responds with only YES or NO."

const gatePromptTemplate = `You are a classifier that determines if a user's question is related to a to-do list application.

A question is related to the to-do list app if it asks about:
- How to use the app features (adding tasks, completing tasks, deleting tasks, etc.)
- App functionality, buttons, inputs, or interface elements
- Task management, task status, or task operations
- App behavior, settings, or features

A question is NOT related if it asks about:
- General knowledge, facts, or information outside the app
- Other applications or software
- Personal advice, opinions, or unrelated topics
- Anything not directly about using the to-do list application

User's question: "%s"

Respond with only "YES" if the question is related to the to-do list app, or "NO" if it is not related. Do not provide any other text.`

// Gate filters out questions unrelated to the app with a single YES/NO
// classification call.
type Gate struct {
	AI Completer
	L  *logrus.Logger
}

func NewGate(ai Completer, l *logrus.Logger) *Gate {
	return &Gate{AI: ai, L: l}
}

// Relevant reports whether the question is about the to-do app. Fails open:
// any model error counts as relevant, favoring availability over filtering.
func (g *Gate) Relevant(ctx context.Context, question string) bool {
	prompt := fmt.Sprintf(gatePromptTemplate, question)
	verdict, err := g.AI.Complete(ctx, gateSystemPrompt, prompt, 10, 0.1)
	if err != nil {
		g.L.Errorf("[Bot] relevancy check failed: %s", err.Error())
		return true
	}
	return strings.ToUpper(strings.TrimSpace(verdict)) == "YES"
}
