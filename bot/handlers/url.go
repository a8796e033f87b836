package handlers

import (
	"context"
	"fmt"
	"strings"

	"loady/bot/core"
	extractors "loady/ext"
	"loady/util"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/message"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func URLFilter(msg *gotgbot.Message) bool {
	return message.Text(msg) && !message.Command(msg)
}

// NewURLHandler builds the per-message dispatcher: cooldown gate,
// URL classification, media resolution, then the relay pipeline.
// every failure maps to one user-facing reply; nothing propagates
// past the handler.
func NewURLHandler(gate *core.CooldownGate) func(*gotgbot.Bot, *ext.Context) error {
	return func(bot *gotgbot.Bot, ctx *ext.Context) error {
		msg := ctx.EffectiveMessage
		if msg.From == nil {
			return nil
		}
		userID := msg.From.Id
		chatID := msg.Chat.Id
		log := zap.S().With("request_id", uuid.NewString())

		if admitted, remaining := gate.Admit(userID); !admitted {
			msg.Reply(bot, fmt.Sprintf(
				"please wait %d seconds before your next request",
				remaining,
			), nil)
			return nil
		}

		resolveCtx, err := extractors.Match(strings.TrimSpace(msg.Text))
		if err != nil {
			msg.Reply(bot, util.ErrInvalidURL.Error(), nil)
			return nil
		}
		if resolveCtx == nil {
			msg.Reply(bot, util.ErrUnsupportedPlatform.Error(), nil)
			return nil
		}
		resolveCtx.Context = context.Background()
		log = log.With("platform", resolveCtx.Extractor.CodeName)
		log.Debugf("resolving %s", resolveCtx.RawText)

		items := extractors.Resolve(resolveCtx)
		_, err = core.Relay(
			resolveCtx.Context,
			core.NewTransport(bot),
			chatID,
			resolveCtx.Extractor,
			items,
			nil,
		)
		if err != nil {
			if errors.Is(err, util.ErrNoMediaFound) {
				msg.Reply(bot, core.NoMediaMessage(
					resolveCtx.Extractor.Platform,
				), nil)
				return nil
			}
			log.Errorf("relay failed: %v", err)
			msg.Reply(bot, "an error occurred. please try again later", nil)
		}
		return nil
	}
}
