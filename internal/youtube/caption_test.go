package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaptionXML(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8" ?><transcript>
		<text start="0" dur="1.54">Hello &amp;amp; welcome</text>
		<text start="1.54" dur="2.2">&lt;i&gt;styled text&lt;/i&gt;</text>
		<text start="3.74" dur="1"></text>
		<text start="4.74" dur="0.5">goodbye</text>
	</transcript>`)

	result, err := parseCaptionXML(data)
	require.NoError(t, err)

	// Markup stripped, entities decoded, empty entries skipped,
	// emission order preserved.
	assert.Equal(t, []CaptionLine{
		{Text: "Hello & welcome", Start: 0, Duration: 1.54},
		{Text: "styled text", Start: 1.54, Duration: 2.2},
		{Text: "goodbye", Start: 4.74, Duration: 0.5},
	}, result.Lines)
}

func TestParseCaptionXMLEmptyTranscript(t *testing.T) {
	result, err := parseCaptionXML([]byte(`<transcript></transcript>`))
	require.NoError(t, err)
	assert.Empty(t, result.Lines)
}

func TestParseCaptionXMLInvalid(t *testing.T) {
	_, err := parseCaptionXML([]byte(`not xml at all`))
	assert.Error(t, err)
}
