package main

import (
	"os"

	"todovoice/app"
)

func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else {
		port = ":" + port
	}

	return port
}

// @title Voice To-Do API
// @version 0.1
// @description To-do list backend with a voice-driven Q&A assistant.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	err := app.SetupAndRunApp(getPort())
	if err != nil {
		panic(err)
	}
}
