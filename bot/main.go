package bot

import (
	"runtime/debug"
	"time"

	botHandlers "loady/bot/handlers"
	"loady/bot/core"
	"loady/config"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"go.uber.org/zap"
)

var allowedUpdates = []string{
	"message",
}

func Start() {
	b, err := gotgbot.NewBot(config.Env.BotToken, &gotgbot.BotOpts{
		BotClient: NewBotClient(),
	})
	if err != nil {
		zap.S().Fatalf("failed to create bot: %v", err)
	}
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(_ *gotgbot.Bot, _ *ext.Context, err error) ext.DispatcherAction {
			zap.S().Errorf("an error occurred while handling update: %v", err)
			return ext.DispatcherActionNoop
		},
		Panic: func(_ *gotgbot.Bot, _ *ext.Context, r any) {
			zap.S().Errorf(
				"panic occurred while handling update: %v\n%s",
				r,
				debug.Stack(),
			)
		},
		MaxRoutines: config.Env.ConcurrentUpdates,
	})
	updater := ext.NewUpdater(dispatcher, nil)
	registerHandlers(dispatcher)
	zap.S().Debugf("starting updates polling. allowed updates: %v", allowedUpdates)
	err = updater.StartPolling(b, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: time.Second * 10,
			},
			AllowedUpdates: allowedUpdates,
		},
	})
	if err != nil {
		zap.S().Fatalf("failed to start polling: %v", err)
	}
	zap.S().Infof("bot started with username: %s", b.Username)
}

func registerHandlers(dispatcher *ext.Dispatcher) {
	zap.S().Debug("registering handlers")
	gate := core.NewCooldownGate(config.Env.Cooldown, nil)
	dispatcher.AddHandler(handlers.NewCommand(
		"start",
		botHandlers.StartHandler,
	))
	dispatcher.AddHandler(handlers.NewMessage(
		botHandlers.URLFilter,
		botHandlers.NewURLHandler(gate),
	))
}
