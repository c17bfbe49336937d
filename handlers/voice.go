package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"todovoice/bot"
)

type AskRequest struct {
	Question string `json:"question"`
}

type SpeakRequest struct {
	Text string `json:"text"`
}

type DetectionRequest struct {
	Status string  `json:"status"`
	Volume float64 `json:"volume"`
}

// TempAudioPath returns the fixed scratch path an uploaded clip is written
// to before transcription. The extension is taken from the upload name,
// defaulting to webm (what MediaRecorder produces).
func TempAudioPath(filename string) string {
	ext := "webm"
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		ext = strings.ToLower(filename[i+1:])
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("temp_audio.%s", ext))
}

// @Summary Transcribe an audio clip.
// @Description accept a multipart audio upload and return its transcript.
// @Tags bot
// @Accept mpfd
// @Param audio formData file true "Audio clip"
// @Produce json
// @Success 200 {object} map[string]string
// @Router /bot/transcribe [post]
func HandleTranscribe(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("audio")
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "no audio file provided", err.Error())
		}

		tempPath := TempAudioPath(fh.Filename)
		if err = c.SaveFile(fh, tempPath); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to save audio file", err.Error())
		}
		// scratch file goes away on every path, success or not
		defer os.Remove(tempPath)

		h.L.Infof("[Transcription] Processing audio file: %s", tempPath)

		transcription, err := h.Stt.Transcribe(c.Context(), tempPath)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "transcription failed", err.Error())
		}

		return c.JSON(fiber.Map{"transcription": transcription})
	}
}

// @Summary Answer a question about the app.
// @Description run the relevancy gate, then answer from the knowledge base with a generative fallback.
// @Tags bot
// @Accept json
// @Param question body AskRequest true "Question"
// @Produce json
// @Success 200 {object} map[string]string
// @Router /bot/response [post]
func HandleBotResponse(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(AskRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}

		question := strings.TrimSpace(req.Question)
		if question == "" {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "no question provided", nil)
		}

		var response string
		if h.Gate.Relevant(c.Context(), question) {
			response = h.Bot.Answer(c.Context(), question)
		} else {
			response = bot.RedirectionMessage
		}

		return c.JSON(fiber.Map{"response": response})
	}
}

// @Summary Synthesize speech for a bot response.
// @Description convert text into an MP3 payload.
// @Tags bot
// @Accept json
// @Param text body SpeakRequest true "Text to speak"
// @Produce mpeg
// @Success 200 "audio/mpeg payload"
// @Router /bot/audio [post]
func HandleGenerateAudio(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(SpeakRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}

		text := strings.TrimSpace(req.Text)
		c.Set(fiber.HeaderContentType, "audio/mpeg")
		if text == "" {
			return c.Status(fiber.StatusBadRequest).Send([]byte{})
		}

		audio, err := h.Tts.Synthesize(c.Context(), text)
		if err != nil {
			h.L.Errorf("Audio generation error: %s", err.Error())
			return c.Status(fiber.StatusInternalServerError).Send([]byte{})
		}

		return c.Send(audio)
	}
}

// @Summary Log browser voice-detection activity.
// @Description record the client's voice-activity-detection status server-side.
// @Tags bot
// @Accept json
// @Param detection body DetectionRequest true "Detection status"
// @Produce json
// @Success 200 {object} map[string]string
// @Router /bot/detection [post]
func HandleDetectionLog(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(DetectionRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}

		switch req.Status {
		case "checking":
			h.L.Infof("[Voice Detection] Checking for voice... Volume level: %.2f", req.Volume)
		case "speech_detected":
			h.L.Infof("[Voice Detection] Speech detected! Volume: %.2f - Starting recording...", req.Volume)
		case "silence_detected":
			h.L.Infof("[Voice Detection] Silence detected (Volume: %.2f) - Counting silence duration...", req.Volume)
		case "processing":
			h.L.Info("[Voice Detection] Processing audio after 1.5s silence...")
		case "listening":
			h.L.Info("[Voice Detection] Listening mode active - Ready to detect speech...")
		}

		return c.JSON(fiber.Map{"status": "logged"})
	}
}
