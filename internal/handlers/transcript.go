package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"ytranscript/internal/transcript"
	"ytranscript/internal/youtube"
)

// TranscriptFetcher is the outcome-mapping layer the handlers depend on.
type TranscriptFetcher interface {
	Fetch(videoID string, languages []string) ([]youtube.CaptionLine, *transcript.Failure)
	List(videoID string) ([]transcript.Descriptor, *transcript.Failure)
}

// TranscriptHandler serves the transcript API endpoints.
type TranscriptHandler struct {
	fetcher TranscriptFetcher
	log     *logrus.Logger
}

// NewTranscriptHandler creates a new TranscriptHandler.
func NewTranscriptHandler(fetcher TranscriptFetcher, log *logrus.Logger) *TranscriptHandler {
	return &TranscriptHandler{fetcher: fetcher, log: log}
}

// Get fetches the transcript of a video in the most preferred language.
func (h *TranscriptHandler) Get(c echo.Context) error {
	videoID := c.Param("video_id")

	languages, ok := languagePreference(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"detail": "At least one language code must be provided.",
		})
	}

	h.log.WithFields(logrus.Fields{
		"video_id":  videoID,
		"languages": languages,
	}).Info("Received request for transcript")

	lines, failure := h.fetcher.Fetch(videoID, languages)
	if failure == nil {
		h.log.WithField("video_id", videoID).Info("Successfully fetched transcript")
		return c.JSON(http.StatusOK, map[string]interface{}{
			"video_id":   videoID,
			"transcript": lines,
		})
	}

	switch failure.Kind {
	case transcript.FailureNotFound:
		h.log.WithField("video_id", videoID).Warnf("No transcript found in languages: %s", strings.Join(languages, ", "))
		return h.respondNotFound(c, videoID, languages)
	case transcript.FailureDisabled:
		return h.respondDisabled(c, videoID)
	default:
		return h.respondUnexpected(c, videoID, failure)
	}
}

// respondNotFound enriches a not-found outcome with the available
// languages when listing succeeds. A disabled signal during enrichment
// takes precedence over the 404; any other listing failure is swallowed
// and the plain not-found message is returned.
func (h *TranscriptHandler) respondNotFound(c echo.Context, videoID string, languages []string) error {
	detail := fmt.Sprintf("Could not find a transcript in the requested languages: %s.", strings.Join(languages, ", "))

	available, failure := h.fetcher.List(videoID)
	if failure != nil {
		if failure.Kind == transcript.FailureDisabled {
			return h.respondDisabled(c, videoID)
		}
		h.log.WithField("video_id", videoID).Warnf("Could not list available transcripts: %s", failure.Detail)
		return c.JSON(http.StatusNotFound, map[string]string{"detail": detail})
	}

	codes := lo.Map(available, func(d transcript.Descriptor, _ int) string {
		return d.LanguageCode
	})
	h.log.WithField("video_id", videoID).Infof("Found available transcripts: %s", strings.Join(codes, ", "))

	detail = fmt.Sprintf(
		"Could not find a transcript in the requested languages: %s. Available languages are: %s",
		strings.Join(languages, ", "),
		strings.Join(codes, ", "),
	)
	return c.JSON(http.StatusNotFound, map[string]string{"detail": detail})
}

// List enumerates all available transcripts for a video.
func (h *TranscriptHandler) List(c echo.Context) error {
	videoID := c.Param("video_id")

	h.log.WithField("video_id", videoID).Info("Received request to list transcripts")

	available, failure := h.fetcher.List(videoID)
	if failure != nil {
		if failure.Kind == transcript.FailureDisabled {
			return h.respondDisabled(c, videoID)
		}
		return h.respondUnexpected(c, videoID, failure)
	}

	h.log.WithField("video_id", videoID).Infof("Successfully listed %d available transcripts", len(available))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"video_id":              videoID,
		"available_transcripts": available,
	})
}

func (h *TranscriptHandler) respondDisabled(c echo.Context, videoID string) error {
	h.log.WithField("video_id", videoID).Error("Transcripts are disabled")
	return c.JSON(http.StatusForbidden, map[string]string{
		"detail": fmt.Sprintf("Transcripts are disabled for video '%s'.", videoID),
	})
}

func (h *TranscriptHandler) respondUnexpected(c echo.Context, videoID string, failure *transcript.Failure) error {
	h.log.WithField("video_id", videoID).Errorf("Unexpected error: %s", failure.Detail)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"detail": fmt.Sprintf("An unexpected error occurred: %s", failure.Detail),
	})
}

// languagePreference reads the repeatable languages query parameter. The
// order is passed through as given; omitting the parameter defaults to
// English, while providing it with no usable value is a caller error.
func languagePreference(c echo.Context) ([]string, bool) {
	values, provided := c.QueryParams()["languages"]
	if !provided {
		return []string{"en"}, true
	}

	languages := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			languages = append(languages, v)
		}
	}
	if len(languages) == 0 {
		return nil, false
	}
	return languages, true
}
