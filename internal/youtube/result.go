package youtube

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CaptionLine is a single captioned unit. Start and Duration are seconds.
type CaptionLine struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// End returns the end offset in seconds.
func (l *CaptionLine) End() float64 {
	return l.Start + l.Duration
}

// CaptionResult is the outcome of a caption fetch.
type CaptionResult struct {
	VideoID      string        `json:"video_id"`
	LanguageCode string        `json:"language_code"`
	Lines        []CaptionLine `json:"lines"`
}

// FormatAsText renders the captions as plain text.
func (r *CaptionResult) FormatAsText() string {
	var sb strings.Builder
	for _, line := range r.Lines {
		sb.WriteString(line.Text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// FormatAsJSON renders the captions as indented JSON.
func (r *CaptionResult) FormatAsJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// FormatAsSRT renders the captions in SRT format.
func (r *CaptionResult) FormatAsSRT() string {
	var sb strings.Builder
	for i, line := range r.Lines {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(line.Start),
			formatSRTTime(line.End()),
		))
		sb.WriteString(line.Text)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// FormatAsVTT renders the captions in WebVTT format.
func (r *CaptionResult) FormatAsVTT() string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, line := range r.Lines {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(line.Start),
			formatVTTTime(line.End()),
		))
		sb.WriteString(line.Text)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// formatSRTTime renders an SRT timestamp (HH:MM:SS,mmm) from seconds.
func formatSRTTime(seconds float64) string {
	return formatTimestamp(seconds, ",")
}

// formatVTTTime renders a WebVTT timestamp (HH:MM:SS.mmm) from seconds.
func formatVTTTime(seconds float64) string {
	return formatTimestamp(seconds, ".")
}

func formatTimestamp(seconds float64, sep string) string {
	d := time.Duration(seconds * float64(time.Second))
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d%s%03d", h, m, s, sep, ms)
}
