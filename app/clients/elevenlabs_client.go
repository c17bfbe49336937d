package client

import (
	"context"
	"os"
	"time"

	"github.com/haguro/elevenlabs-go"
	"github.com/sirupsen/logrus"
)

// Fixed synthesis parameters, matching the assistant's single voice.
const (
	voiceID      = "pNInz6obpgDQGcFmaJgB"
	ttsModelID   = "eleven_turbo_v2_5"
	outputFormat = "mp3_22050_32"
)

type ElevenLabsClient struct {
	Client *elevenlabs.Client
	L      *logrus.Logger
}

func NewElevenLabsClient(l *logrus.Logger) *ElevenLabsClient {
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	return &ElevenLabsClient{
		Client: elevenlabs.NewClient(context.Background(), apiKey, 30*time.Second),
		L:      l,
	}
}

// Synthesize converts text to a complete MP3 payload.
func (e *ElevenLabsClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	audio, err := e.Client.TextToSpeech(voiceID, elevenlabs.TextToSpeechRequest{
		Text:    text,
		ModelID: ttsModelID,
		VoiceSettings: &elevenlabs.VoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
			Style:           0.0,
			SpeakerBoost:    true,
		},
	}, elevenlabs.OutputFormat(outputFormat))
	if err != nil {
		e.L.Errorf("Error generating audio: %s", err.Error())
		return nil, err
	}
	return audio, nil
}
