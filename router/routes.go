package router

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	client "todovoice/app/clients"
	"todovoice/bot"
	"todovoice/config"
	"todovoice/database"
	"todovoice/handlers"
)

// Create a new instance of the logger.
var l = logrus.New()

func SetupRoutes(app *fiber.App) error {
	qaPath := config.GetEnvDefault("QA_FILE", "q_and_a.txt")
	pairs, err := bot.LoadQAPairs(qaPath)
	if err != nil {
		l.Errorf("Error loading Q&A file: %s", err.Error())
		pairs = nil
	}

	minTokenLen := bot.DefaultMinTokenLen
	if v := config.GetEnv("QA_MIN_TOKEN_LEN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			minTokenLen = n
		}
	}

	ai := client.NewOpenAIClient(l)
	h := handlers.NewHandler(
		database.NewMongoTodoStore(config.GetEnvDefault("TODO_COLLECTION", "todos")),
		bot.NewAnswerer(pairs, ai, minTokenLen, l),
		bot.NewGate(ai, l),
		client.NewAssemblyAIClient(l),
		client.NewElevenLabsClient(l),
		l,
	)

	app.Get("/health", handlers.HandleHealthCheck)

	// setup the todos group
	todos := app.Group("/todos")
	todos.Get("/", handlers.HandleAllTodos(h))
	todos.Post("/", handlers.HandleCreateTodo(h))
	todos.Put("/:id/complete", handlers.HandleToggleTodo(h))
	todos.Delete("/:id", handlers.HandleDeleteTodo(h))

	// setup the voice assistant group
	botGroup := app.Group("/bot")
	botGroup.Post("/transcribe", handlers.HandleTranscribe(h))
	botGroup.Post("/response", handlers.HandleBotResponse(h))
	botGroup.Post("/audio", handlers.HandleGenerateAudio(h))
	botGroup.Post("/detection", handlers.HandleDetectionLog(h))

	// browser pages: todo list at /, voice assistant at /voice.html
	app.Static("/", "./static")

	return nil
}
