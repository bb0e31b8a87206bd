package youtube

import (
	"fmt"

	"github.com/kkdai/youtube/v2"
)

// Client wraps YouTube video metadata and caption retrieval.
type Client struct {
	client youtube.Client
}

// NewClient creates a new YouTube client.
func NewClient() *Client {
	return &Client{
		client: youtube.Client{},
	}
}

// VideoInfo holds video metadata and its caption tracks.
type VideoInfo struct {
	ID     string
	Title  string
	Author string
	Tracks []Track
}

// Track describes one available caption track.
type Track struct {
	Language       string
	LanguageCode   string
	BaseURL        string
	IsGenerated    bool
	IsTranslatable bool
}

// GetVideo fetches video metadata including the caption track list.
func (c *Client) GetVideo(videoID string) (*VideoInfo, error) {
	video, err := c.client.GetVideo(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	tracks := make([]Track, len(video.CaptionTracks))
	for i, track := range video.CaptionTracks {
		tracks[i] = Track{
			Language:       track.Name.SimpleText,
			LanguageCode:   track.LanguageCode,
			BaseURL:        track.BaseURL,
			IsGenerated:    track.Kind == "asr",
			IsTranslatable: track.IsTranslatable,
		}
	}

	return &VideoInfo{
		ID:     video.ID,
		Title:  video.Title,
		Author: video.Author,
		Tracks: tracks,
	}, nil
}

// FindTrack returns the first caption track matching the language
// preference order, or nil when no language matches.
func (v *VideoInfo) FindTrack(languages []string) *Track {
	for _, lang := range languages {
		for i := range v.Tracks {
			if v.Tracks[i].LanguageCode == lang {
				return &v.Tracks[i]
			}
		}
	}
	return nil
}

// HasTracks reports whether any caption track is available.
func (v *VideoInfo) HasTracks() bool {
	return len(v.Tracks) > 0
}

// GetCaption fetches the caption content for the most preferred matching
// language. Returns ErrTranscriptsDisabled when the video has no caption
// tracks and ErrNoTranscript when no track matches the preference list.
func (c *Client) GetCaption(videoID string, languages []string) (*CaptionResult, error) {
	video, err := c.GetVideo(videoID)
	if err != nil {
		return nil, err
	}

	if !video.HasTracks() {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrTranscriptsDisabled)
	}

	track := video.FindTrack(languages)
	if track == nil {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNoTranscript)
	}

	result, err := c.FetchCaption(track)
	if err != nil {
		return nil, err
	}

	result.VideoID = video.ID
	return result, nil
}

// GetTranscript returns the caption lines for the most preferred matching
// language, in the order the platform emits them.
func (c *Client) GetTranscript(videoID string, languages []string) ([]CaptionLine, error) {
	result, err := c.GetCaption(videoID, languages)
	if err != nil {
		return nil, err
	}
	return result.Lines, nil
}

// ListTranscripts enumerates the available caption tracks for a video,
// preserving the platform's enumeration order. Returns
// ErrTranscriptsDisabled when the video has no caption tracks.
func (c *Client) ListTranscripts(videoID string) ([]Track, error) {
	video, err := c.GetVideo(videoID)
	if err != nil {
		return nil, err
	}

	if !video.HasTracks() {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrTranscriptsDisabled)
	}

	return video.Tracks, nil
}
