package youtube

// CaptionError is a sentinel error for caption retrieval outcomes.
type CaptionError string

func (e CaptionError) Error() string {
	return string(e)
}

const (
	// ErrNoTranscript means the video has caption tracks, but none in the
	// requested languages.
	ErrNoTranscript = CaptionError("no transcript found for the requested languages")

	// ErrTranscriptsDisabled means the video exposes no caption tracks at all.
	ErrTranscriptsDisabled = CaptionError("transcripts are disabled")
)
