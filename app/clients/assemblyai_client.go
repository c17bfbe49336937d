package client

import (
	"context"
	"errors"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/sirupsen/logrus"
)

type AssemblyAIClient struct {
	Client *aai.Client
	L      *logrus.Logger
}

func NewAssemblyAIClient(l *logrus.Logger) *AssemblyAIClient {
	apiKey := os.Getenv("ASSEMBLYAI_API_KEY")
	return &AssemblyAIClient{
		Client: aai.NewClient(apiKey),
		L:      l,
	}
}

// Transcribe uploads the audio file at path and returns the transcript text.
func (a *AssemblyAIClient) Transcribe(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	transcript, err := a.Client.Transcripts.TranscribeFromReader(ctx, f, nil)
	if err != nil {
		a.L.Errorf("Error transcribing audio: %s", err.Error())
		return "", err
	}
	if transcript.Status == aai.TranscriptStatusError {
		a.L.Errorf("Transcription failed: %s", aai.ToString(transcript.Error))
		return "", errors.New("transcription failed")
	}
	return aai.ToString(transcript.Text), nil
}
