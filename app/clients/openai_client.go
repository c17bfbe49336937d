package client

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

type OpenAIClient struct {
	Client *openai.Client
	L      *logrus.Logger
	model  string
}

func NewOpenAIClient(l *logrus.Logger) *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	return &OpenAIClient{
		Client: openai.NewClient(apiKey),
		L:      l,
		model:  openai.GPT4oMini,
	}
}

// Complete runs a single chat completion and returns the first choice.
func (o *OpenAIClient) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		o.L.Errorf("Error calling chat completion: %s", err.Error())
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
