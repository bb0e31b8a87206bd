package transcript

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ytranscript/internal/youtube"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) GetTranscript(videoID string, languages []string) ([]youtube.CaptionLine, error) {
	args := m.Called(videoID, languages)
	if lines := args.Get(0); lines != nil {
		return lines.([]youtube.CaptionLine), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProvider) ListTranscripts(videoID string) ([]youtube.Track, error) {
	args := m.Called(videoID)
	if tracks := args.Get(0); tracks != nil {
		return tracks.([]youtube.Track), args.Error(1)
	}
	return nil, args.Error(1)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestFetch(t *testing.T) {
	lines := []youtube.CaptionLine{
		{Text: "Hello", Start: 0, Duration: 1.5},
		{Text: "world", Start: 1.5, Duration: 2.25},
	}

	tests := []struct {
		name         string
		languages    []string
		providerErr  error
		expectedKind FailureKind
	}{
		{
			name:      "success passes lines through unchanged",
			languages: []string{"en"},
		},
		{
			name:         "no transcript maps to not found",
			languages:    []string{"de", "fr"},
			providerErr:  fmt.Errorf("video abc123: %w", youtube.ErrNoTranscript),
			expectedKind: FailureNotFound,
		},
		{
			name:         "disabled maps to disabled",
			languages:    []string{"en"},
			providerErr:  fmt.Errorf("video abc123: %w", youtube.ErrTranscriptsDisabled),
			expectedKind: FailureDisabled,
		},
		{
			name:         "any other error maps to unexpected",
			languages:    []string{"en"},
			providerErr:  errors.New("network down"),
			expectedKind: FailureUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{}
			if tt.providerErr != nil {
				provider.On("GetTranscript", "abc123", tt.languages).Return(nil, tt.providerErr)
			} else {
				provider.On("GetTranscript", "abc123", tt.languages).Return(lines, nil)
			}

			fetcher := NewFetcher(provider, testLogger())
			got, failure := fetcher.Fetch("abc123", tt.languages)

			if tt.providerErr != nil {
				assert.Nil(t, got)
				assert.NotNil(t, failure)
				assert.Equal(t, tt.expectedKind, failure.Kind)
				assert.Equal(t, tt.providerErr.Error(), failure.Detail)
			} else {
				assert.Nil(t, failure)
				assert.Equal(t, lines, got)
			}

			provider.AssertExpectations(t)
		})
	}
}

func TestFetchPreservesLanguageOrder(t *testing.T) {
	languages := []string{"es", "en", "es"}

	provider := &mockProvider{}
	provider.On("GetTranscript", "abc123", languages).Return([]youtube.CaptionLine{}, nil)

	fetcher := NewFetcher(provider, testLogger())
	_, failure := fetcher.Fetch("abc123", languages)

	assert.Nil(t, failure)
	// The mock expectation asserts the exact order, including duplicates.
	provider.AssertExpectations(t)
}

func TestList(t *testing.T) {
	tracks := []youtube.Track{
		{Language: "English", LanguageCode: "en", IsGenerated: false, IsTranslatable: true},
		{Language: "Spanish", LanguageCode: "es", IsGenerated: true, IsTranslatable: false},
	}

	provider := &mockProvider{}
	provider.On("ListTranscripts", "abc123").Return(tracks, nil)

	fetcher := NewFetcher(provider, testLogger())
	got, failure := fetcher.List("abc123")

	assert.Nil(t, failure)
	assert.Equal(t, []Descriptor{
		{Language: "English", LanguageCode: "en", IsGenerated: false, IsTranslatable: true},
		{Language: "Spanish", LanguageCode: "es", IsGenerated: true, IsTranslatable: false},
	}, got)
	provider.AssertExpectations(t)
}

func TestListFailures(t *testing.T) {
	tests := []struct {
		name         string
		providerErr  error
		expectedKind FailureKind
	}{
		{
			name:         "disabled maps to disabled",
			providerErr:  fmt.Errorf("video abc123: %w", youtube.ErrTranscriptsDisabled),
			expectedKind: FailureDisabled,
		},
		{
			name:         "any other error maps to unexpected",
			providerErr:  errors.New("boom"),
			expectedKind: FailureUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{}
			provider.On("ListTranscripts", "abc123").Return(nil, tt.providerErr)

			fetcher := NewFetcher(provider, testLogger())
			got, failure := fetcher.List("abc123")

			assert.Nil(t, got)
			assert.NotNil(t, failure)
			assert.Equal(t, tt.expectedKind, failure.Kind)
			assert.Equal(t, tt.providerErr.Error(), failure.Detail)
			provider.AssertExpectations(t)
		})
	}
}
