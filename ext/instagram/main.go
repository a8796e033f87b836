package instagram

import (
	"encoding/json"
	"net/http"
	"strings"

	"loady/config"
	"loady/enums"
	"loady/models"
	"loady/util"

	"github.com/pkg/errors"
)

// posts are resolved through a scraping sidecar service that mirrors
// the instaloader metadata shape: a media count, per-child nodes for
// carousels, and top-level video/display URLs for single posts.

var Extractor = &models.Extractor{
	Name:     "Instagram",
	CodeName: "instagram",
	Platform: enums.PlatformInstagram,
	Host:     []string{"instagram.com"},

	Run: func(ctx *models.ResolveContext) ([]*models.MediaItem, error) {
		return MediaListFromAPI(
			ctx,
			util.GetLookupSession(),
			config.Env.InstagramAPIURL,
		)
	},
}

func MediaListFromAPI(
	ctx *models.ResolveContext,
	client *http.Client,
	apiBase string,
) ([]*models.MediaItem, error) {
	shortcode, err := ShortcodeFromURL(ctx.RawText)
	if err != nil {
		return nil, err
	}
	post, err := GetPostAPI(ctx, client, apiBase, shortcode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get post")
	}

	var items []*models.MediaItem
	if post.MediaCount > 1 {
		for _, node := range post.Children {
			if node.IsVideo {
				items = append(items, ctx.Extractor.NewMedia(
					enums.MediaTypeVideo,
					node.VideoURL,
				))
			} else {
				items = append(items, ctx.Extractor.NewMedia(
					enums.MediaTypePhoto,
					node.DisplayURL,
				))
			}
		}
		return items, nil
	}
	if post.IsVideo {
		items = append(items, ctx.Extractor.NewMedia(
			enums.MediaTypeVideo,
			post.VideoURL,
		))
	} else {
		items = append(items, ctx.Extractor.NewMedia(
			enums.MediaTypePhoto,
			post.DisplayURL,
		))
	}
	return items, nil
}

func GetPostAPI(
	ctx *models.ResolveContext,
	client *http.Client,
	apiBase string,
	shortcode string,
) (*Post, error) {
	reqURL := strings.TrimSuffix(apiBase, "/") + "/api/post/" + shortcode
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

	var data *PostResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	if data == nil || data.Post == nil {
		return nil, errors.New("no post data in response")
	}
	return data.Post, nil
}

// ShortcodeFromURL derives the post shortcode from the pasted link,
// taking the second-to-last slash-separated segment. canonical post
// links carry a trailing slash: https://www.instagram.com/p/<code>/
func ShortcodeFromURL(rawURL string) (string, error) {
	parts := strings.Split(rawURL, "/")
	if len(parts) < 2 {
		return "", errors.Errorf("cannot derive shortcode from %s", rawURL)
	}
	shortcode := parts[len(parts)-2]
	if shortcode == "" {
		return "", errors.Errorf("cannot derive shortcode from %s", rawURL)
	}
	return shortcode, nil
}
