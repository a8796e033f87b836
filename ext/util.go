package ext

import (
	"net/url"
	"strings"

	"loady/models"
	"loady/util"

	"go.uber.org/zap"
)

// Match classifies a pasted message into a resolve context.
// it fails with ErrInvalidURL when the text is not an absolute URL,
// and returns (nil, nil) when no extractor claims the host.
func Match(text string) (*models.ResolveContext, error) {
	text = strings.TrimSpace(text)
	parsed, err := url.Parse(text)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, util.ErrInvalidURL
	}

	host := strings.ToLower(parsed.Hostname())
	for _, extractor := range List {
		if extractor.Matches(host, text) {
			return &models.ResolveContext{
				URL:       parsed,
				RawText:   text,
				Extractor: extractor,
			}, nil
		}
	}
	return nil, nil
}

// Resolve runs the matched extractor. backend failures are absorbed:
// they are logged with platform context and surface to the caller as
// an empty sequence.
func Resolve(ctx *models.ResolveContext) []*models.MediaItem {
	items, err := ctx.Extractor.Run(ctx)
	if err != nil {
		zap.S().Errorf(
			"%s: failed to resolve %s: %v",
			ctx.Extractor.CodeName,
			ctx.RawText,
			err,
		)
		return nil
	}
	return items
}
