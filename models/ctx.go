package models

import (
	"context"
	"net/url"
)

type ResolveContext struct {
	Context   context.Context
	URL       *url.URL
	RawText   string
	Extractor *Extractor
}
