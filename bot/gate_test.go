package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGateRelevant(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  bool
	}{
		{name: "yes verdict", reply: "YES", want: true},
		{name: "no verdict", reply: "NO", want: false},
		{name: "verdict is normalized", reply: " yes\n", want: true},
		{name: "anything else is not relevant", reply: "maybe", want: false},
		{name: "fails open on error", err: errors.New("timeout"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(&fakeCompleter{reply: tt.reply, err: tt.err}, logrus.New())
			got := g.Relevant(context.Background(), "what is the capital of France")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGatePromptCarriesQuestion(t *testing.T) {
	fc := &fakeCompleter{reply: "NO"}
	g := NewGate(fc, logrus.New())
	g.Relevant(context.Background(), "what is the capital of France")
	assert.Contains(t, fc.lastUser, "what is the capital of France")
}
