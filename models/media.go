package models

import (
	"loady/enums"

	"github.com/guregu/null/v6/zero"
)

// MediaItem is a single resolved asset with a direct fetch URL.
// items are produced by an extractor and consumed once by the
// relay pipeline, in order.
type MediaItem struct {
	Type enums.MediaType
	URL  string

	// audio metadata, when the backend provides it
	Title     zero.String
	Performer zero.String
}
