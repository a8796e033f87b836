package main

import (
	"fmt"
	"net/http"

	"loady/bot"
	"loady/config"
	extractors "loady/ext"
	"loady/logger"

	_ "net/http/pprof" // profiling

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// load environment variables and configurations
	config.Load()
	logger.Configure(config.Env.LogLevel, config.Env.LogPath)

	zap.S().Debugf("loaded %d extractors", len(extractors.List))

	// setup pprof profiler
	if config.Env.ProfilerPort > 0 {
		go func() {
			zap.S().Infof("starting profiler on port %d", config.Env.ProfilerPort)
			if err := http.ListenAndServe(fmt.Sprintf(":%d", config.Env.ProfilerPort), nil); err != nil {
				zap.S().Fatalf("failed to start profiler: %v", err)
			}
		}()
	}

	// setup bot client
	go bot.Start()

	select {}
}
