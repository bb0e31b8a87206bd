package youtube

import (
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
)

// YouTube timedtext XML structure
type xmlTranscript struct {
	XMLName xml.Name  `xml:"transcript"`
	Texts   []xmlText `xml:"text"`
}

type xmlText struct {
	Start    float64 `xml:"start,attr"` // seconds
	Duration float64 `xml:"dur,attr"`   // seconds
	Text     string  `xml:",chardata"`
}

var markupTags = regexp.MustCompile(`(?i)<[^>]*>`)

// FetchCaption downloads and parses the caption content of a track.
func (c *Client) FetchCaption(track *Track) (*CaptionResult, error) {
	result, err := c.FetchCaptionByURL(track.BaseURL)
	if err != nil {
		return nil, err
	}

	result.LanguageCode = track.LanguageCode
	return result, nil
}

// FetchCaptionByURL downloads caption XML from a track URL.
func (c *Client) FetchCaptionByURL(url string) (*CaptionResult, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return parseCaptionXML(body)
}

// parseCaptionXML parses timedtext XML into a CaptionResult.
func parseCaptionXML(data []byte) (*CaptionResult, error) {
	var transcript xmlTranscript
	if err := xml.Unmarshal(data, &transcript); err != nil {
		return nil, fmt.Errorf("XML parse failed: %w", err)
	}

	lines := make([]CaptionLine, 0, len(transcript.Texts))
	for _, entry := range transcript.Texts {
		// Strip markup tags, then decode character references.
		text := html.UnescapeString(markupTags.ReplaceAllString(entry.Text, ""))

		// Skip empty entries
		if len(text) == 0 {
			continue
		}

		lines = append(lines, CaptionLine{
			Text:     text,
			Start:    entry.Start,
			Duration: entry.Duration,
		})
	}

	return &CaptionResult{
		Lines: lines,
	}, nil
}
