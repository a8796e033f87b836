package tiktok

import (
	"io"
	"net/http"
	"net/url"

	"loady/config"
	"loady/enums"
	"loady/models"
	"loady/util"

	"github.com/guregu/null/v6/zero"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// tikwm is a third-party lookup API: one GET with the post URL
// returns either an image carousel (plus soundtrack) or a single
// watermark-free video.

var Extractor = &models.Extractor{
	Name:     "TikTok",
	CodeName: "tiktok",
	Platform: enums.PlatformTikTok,
	Host:     []string{"tiktok"},
	TextHint: []string{"tiktok.com"},
	Referer:  "https://www.tiktok.com/",

	Run: func(ctx *models.ResolveContext) ([]*models.MediaItem, error) {
		return MediaListFromAPI(
			ctx,
			util.GetLookupSession(),
			config.Env.TikwmAPIURL,
		)
	},
}

func MediaListFromAPI(
	ctx *models.ResolveContext,
	client *http.Client,
	apiBase string,
) ([]*models.MediaItem, error) {
	reqURL := apiBase + "/api/?url=" + url.QueryEscape(ctx.RawText)
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

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("invalid response status: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("response is not valid json")
	}

	root := gjson.ParseBytes(body)
	if code := root.Get("code"); code.Int() != 0 {
		return nil, errors.Errorf(
			"api returned code %d: %s",
			code.Int(),
			root.Get("msg").String(),
		)
	}
	data := root.Get("data")

	// an image carousel takes precedence over the
	// single-video shape even when both fields are present
	if images := data.Get("images"); images.IsArray() {
		return carouselItems(ctx, data, apiBase), nil
	}
	if play := data.Get("play"); play.Type == gjson.String {
		video := ctx.Extractor.NewMedia(
			enums.MediaTypeVideo,
			AssetURL(apiBase, play.String()),
		)
		return []*models.MediaItem{video}, nil
	}
	return nil, errors.New("no recognizable media fields in response")
}

func carouselItems(
	ctx *models.ResolveContext,
	data gjson.Result,
	apiBase string,
) []*models.MediaItem {
	var items []*models.MediaItem
	for _, image := range data.Get("images").Array() {
		if image.Type != gjson.String {
			continue
		}
		items = append(items, ctx.Extractor.NewMedia(
			enums.MediaTypePhoto,
			AssetURL(apiBase, image.String()),
		))
	}

	// the soundtrack is either a bare URL string or an
	// object carrying play_url plus track metadata
	music := data.Get("music")
	var audioURL string
	switch {
	case music.Type == gjson.String:
		audioURL = music.String()
	case music.IsObject():
		audioURL = music.Get("play_url").String()
	}
	if audioURL != "" {
		audio := ctx.Extractor.NewMedia(
			enums.MediaTypeAudio,
			AssetURL(apiBase, audioURL),
		)
		if title := music.Get("title"); title.Type == gjson.String {
			audio.Title = zero.StringFrom(title.String())
		}
		if author := music.Get("author"); author.Type == gjson.String {
			audio.Performer = zero.StringFrom(author.String())
		}
		items = append(items, audio)
	}
	return items
}
