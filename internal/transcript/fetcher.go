package transcript

import (
	"errors"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"ytranscript/internal/youtube"
)

// FailureKind is the closed set of fetch failure categories.
type FailureKind int

const (
	// FailureNotFound means no transcript exists in the requested languages.
	FailureNotFound FailureKind = iota
	// FailureDisabled means the platform disabled transcripts for the video.
	FailureDisabled
	// FailureUnexpected covers every other fault.
	FailureUnexpected
)

// Failure is the tagged failure variant of a fetch attempt.
type Failure struct {
	Kind   FailureKind
	Detail string
}

func (f *Failure) Error() string {
	return f.Detail
}

// Provider is the external capability performing retrieval and
// enumeration against the video platform.
type Provider interface {
	GetTranscript(videoID string, languages []string) ([]youtube.CaptionLine, error)
	ListTranscripts(videoID string) ([]youtube.Track, error)
}

// Descriptor is metadata about one available transcript on a video.
type Descriptor struct {
	Language       string `json:"language"`
	LanguageCode   string `json:"language_code"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

// Fetcher normalizes provider outcomes into the Failure vocabulary.
type Fetcher struct {
	provider Provider
	log      *logrus.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(provider Provider, log *logrus.Logger) *Fetcher {
	return &Fetcher{
		provider: provider,
		log:      log,
	}
}

// Fetch attempts transcript retrieval with the exact video id and
// language order given. A single provider call, no retries.
func (f *Fetcher) Fetch(videoID string, languages []string) ([]youtube.CaptionLine, *Failure) {
	lines, err := f.provider.GetTranscript(videoID, languages)
	if err != nil {
		failure := classify(err)
		f.log.WithFields(logrus.Fields{
			"video_id":  videoID,
			"languages": languages,
		}).Debugf("transcript fetch failed: %s", failure.Detail)
		return nil, failure
	}
	return lines, nil
}

// List enumerates the available transcripts of a video, preserving the
// provider's enumeration order.
func (f *Fetcher) List(videoID string) ([]Descriptor, *Failure) {
	tracks, err := f.provider.ListTranscripts(videoID)
	if err != nil {
		failure := classify(err)
		f.log.WithField("video_id", videoID).Debugf("transcript listing failed: %s", failure.Detail)
		return nil, failure
	}

	descriptors := lo.Map(tracks, func(track youtube.Track, _ int) Descriptor {
		return Descriptor{
			Language:       track.Language,
			LanguageCode:   track.LanguageCode,
			IsGenerated:    track.IsGenerated,
			IsTranslatable: track.IsTranslatable,
		}
	})
	return descriptors, nil
}

// classify maps provider errors onto the closed FailureKind set.
func classify(err error) *Failure {
	switch {
	case errors.Is(err, youtube.ErrNoTranscript):
		return &Failure{Kind: FailureNotFound, Detail: err.Error()}
	case errors.Is(err, youtube.ErrTranscriptsDisabled):
		return &Failure{Kind: FailureDisabled, Detail: err.Error()}
	default:
		return &Failure{Kind: FailureUnexpected, Detail: err.Error()}
	}
}
