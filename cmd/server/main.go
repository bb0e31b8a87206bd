package main

import (
	"fmt"
	"log"
	"os"

	"ytranscript/internal/handlers"
	"ytranscript/internal/logging"
	"ytranscript/internal/transcript"
	"ytranscript/internal/version"
	"ytranscript/internal/youtube"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger, err := logging.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FILE"))
	if err != nil {
		log.Fatal(err)
	}

	client := youtube.NewClient()
	fetcher := transcript.NewFetcher(client, logger)
	h := handlers.NewTranscriptHandler(fetcher, logger)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/", handlers.Home)
	e.GET("/health", handlers.Health)
	e.GET("/transcript/:video_id", h.Get)
	e.GET("/transcripts/list/:video_id", h.List)

	logger.Infof("Starting YouTube Transcript API v%s on port %s", version.Version, port)
	if err := e.Start(fmt.Sprintf(":%s", port)); err != nil {
		logger.Fatal(err)
	}
}
