package models

import (
	"strings"

	"loady/enums"
)

type Extractor struct {
	Name     string
	CodeName string
	Platform enums.Platform
	Host     []string // host substrings
	TextHint []string // raw-text fallback substrings
	Referer  string   // sent when fetching resolved media bytes

	Run func(*ResolveContext) ([]*MediaItem, error)
}

// Matches reports whether the extractor claims the given URL.
// the host match is substring based; TextHint additionally matches
// against the raw message text for short/redirect link forms.
func (extractor *Extractor) Matches(host string, rawText string) bool {
	for _, hint := range extractor.TextHint {
		if strings.Contains(rawText, hint) {
			return true
		}
	}
	for _, part := range extractor.Host {
		if strings.Contains(host, part) {
			return true
		}
	}
	return false
}

func (extractor *Extractor) NewMedia(
	mediaType enums.MediaType,
	contentURL string,
) *MediaItem {
	return &MediaItem{
		Type: mediaType,
		URL:  contentURL,
	}
}
