package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ytranscript/internal/version"
)

// Home returns the API welcome message.
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the YouTube Transcript API. Fetch a transcript at /transcript/{video_id} or list the available ones at /transcripts/list/{video_id}.",
	})
}

// Health reports service liveness.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}
