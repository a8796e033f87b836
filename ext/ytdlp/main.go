package ytdlp

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"loady/config"
	"loady/enums"
	"loady/models"
	"loady/util"

	"github.com/pkg/errors"
)

// both extractors lean on a yt-dlp sidecar service: it is asked for
// the best-quality format in metadata-only mode and answers with a
// directly playable URL.

const linkedinReferer = "https://www.linkedin.com/"

var YouTubeExtractor = &models.Extractor{
	Name:     "YouTube",
	CodeName: "youtube",
	Platform: enums.PlatformYouTube,
	Host:     []string{"youtube.com", "youtu.be"},

	Run: func(ctx *models.ResolveContext) ([]*models.MediaItem, error) {
		return BestFormatURL(
			ctx,
			util.GetLookupSession(),
			config.Env.ExtractorAPIURL,
			"",
		)
	},
}

var LinkedInExtractor = &models.Extractor{
	Name:     "LinkedIn",
	CodeName: "linkedin",
	Platform: enums.PlatformLinkedIn,
	Host:     []string{"linkedin.com"},
	Referer:  linkedinReferer,

	Run: func(ctx *models.ResolveContext) ([]*models.MediaItem, error) {
		return BestFormatURL(
			ctx,
			util.GetLookupSession(),
			config.Env.ExtractorAPIURL,
			linkedinReferer,
		)
	},
}

func BestFormatURL(
	ctx *models.ResolveContext,
	client *http.Client,
	apiBase string,
	referer string,
) ([]*models.MediaItem, error) {
	query := url.Values{}
	query.Set("url", ctx.RawText)
	query.Set("format", "best")
	query.Set("download", "false")

	reqURL := strings.TrimSuffix(apiBase, "/") + "/api/info?" + query.Encode()
	req, err := http.NewRequestWithContext(
		ctx.Context,
		http.MethodGet,
		reqURL,
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("invalid response status: %s", resp.Status)
	}

	var data *InfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	if data == nil || data.URL == "" {
		return nil, nil
	}
	video := ctx.Extractor.NewMedia(
		enums.MediaTypeVideo,
		data.URL,
	)
	return []*models.MediaItem{video}, nil
}
