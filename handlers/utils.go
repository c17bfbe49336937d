package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"todovoice/bot"
	"todovoice/database"
)

// Transcriber converts an uploaded audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// Synthesizer converts text into a complete audio payload.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Handler struct {
	Todos database.TodoStore
	Bot   *bot.Answerer
	Gate  *bot.Gate
	Stt   Transcriber
	Tts   Synthesizer
	L     *logrus.Logger
}

func NewHandler(todos database.TodoStore, answerer *bot.Answerer, gate *bot.Gate, stt Transcriber, tts Synthesizer, l *logrus.Logger) *Handler {
	return &Handler{
		Todos: todos,
		Bot:   answerer,
		Gate:  gate,
		Stt:   stt,
		Tts:   tts,
		L:     l,
	}
}

func FiberJsonResponse(c *fiber.Ctx, httpStatus int, status, message string, data any) error {
	return c.Status(httpStatus).JSON(fiber.Map{"status": status, "message": message, "data": data})
}
