package app

import (
	"github.com/gofiber/fiber/v2"

	"todovoice/config"
	"todovoice/database"
	"todovoice/router"
)

// SetupAndRunApp handle app and database start and graceful shutdown
func SetupAndRunApp(port string) error {
	// load .env in development
	_ = config.LoadENV()

	// start database
	err := database.StartMongoDB()
	if err != nil {
		return err
	}

	// defer closing database
	defer database.CloseMongoDB()

	// create app
	app := fiber.New()

	// attach middleware
	FiberMiddleware(app)

	// setup routes
	if err = router.SetupRoutes(app); err != nil {
		return err
	}

	// attach swagger
	config.AddSwaggerRoutes(app)

	StartServerWithGracefulShutdown(app, port)

	return nil
}
