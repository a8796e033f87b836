package bot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"loady/config"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

type BotClient struct {
	gotgbot.BotClient
}

func (b BotClient) RequestWithContext(
	ctx context.Context,
	token string,
	method string,
	params map[string]string,
	data map[string]gotgbot.FileReader,
	opts *gotgbot.RequestOpts,
) (json.RawMessage, error) {
	if strings.HasPrefix(method, "send") || method == "copyMessage" {
		params["allow_sending_without_reply"] = "true"
	}
	return b.BotClient.RequestWithContext(ctx, token, method, params, data, opts)
}

func NewBotClient() BotClient {
	return BotClient{
		BotClient: &gotgbot.BaseBotClient{
			Client: http.Client{
				Transport: &http.Transport{
					// avoid using proxy for telegram
					Proxy: func(r *http.Request) (*url.URL, error) {
						return nil, nil
					},
				},
			},
			UseTestEnvironment: false,
			DefaultRequestOpts: &gotgbot.RequestOpts{
				Timeout: 5 * time.Minute,
				APIURL:  config.Env.BotAPIURL,
			},
		},
	}
}
