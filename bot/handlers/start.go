package handlers

import (
	"fmt"

	"loady/config"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/dustin/go-humanize"
)

func StartHandler(bot *gotgbot.Bot, ctx *ext.Context) error {
	startMessage := fmt.Sprintf(
		"welcome to loady, a social media download bot.\n\n"+
			"supported content:\n"+
			"- TikTok: videos, images & audio\n"+
			"- Instagram: posts, carousels & reels\n"+
			"- YouTube: videos & shorts\n"+
			"- LinkedIn: public videos\n\n"+
			"limits:\n"+
			"- max file size: %s\n"+
			"- cooldown: %.0f seconds\n"+
			"- public posts only\n\n"+
			"send a valid link to get started.",
		humanize.IBytes(uint64(config.Env.MaxFileSize)),
		config.Env.Cooldown.Seconds(),
	)
	_, err := ctx.EffectiveMessage.Reply(bot, startMessage, nil)
	return err
}
