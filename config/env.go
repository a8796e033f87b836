package config

import (
	"os"
	"strconv"
	"time"

	"loady/models"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var Env = GetDefaultConfig()

func Load() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		zap.S().Warnf("failed to load .env file: %v", err)
	}
	LoadEnv()
}

func LoadEnv() {
	if value := os.Getenv("BOT_TOKEN"); value != "" {
		Env.BotToken = value
	} else {
		zap.S().Fatal("BOT_TOKEN env is not set")
	}
	if value := os.Getenv("BOT_API_URL"); value != "" {
		Env.BotAPIURL = value
	} else {
		zap.S().Warnf("BOT_API_URL is not set, using default %s", Env.BotAPIURL)
	}
	if value := os.Getenv("CONCURRENT_UPDATES"); value != "" {
		if updates, err := strconv.Atoi(value); err == nil {
			Env.ConcurrentUpdates = updates
		} else {
			zap.S().Fatal("CONCURRENT_UPDATES env is not a valid integer")
		}
	}
	if value := os.Getenv("COOLDOWN"); value != "" {
		if cooldown, err := time.ParseDuration(value); err == nil {
			Env.Cooldown = cooldown
		} else {
			zap.S().Fatalf("COOLDOWN env is not a valid duration: %v", err)
		}
	}
	if value := os.Getenv("MAX_FILE_SIZE"); value != "" {
		if size, err := strconv.ParseInt(value, 10, 64); err == nil {
			Env.MaxFileSize = size
		} else {
			zap.S().Fatal("MAX_FILE_SIZE env is not a valid integer")
		}
	}
	if value := os.Getenv("SEND_DELAY"); value != "" {
		if delay, err := time.ParseDuration(value); err == nil {
			Env.SendDelay = delay
		} else {
			zap.S().Fatalf("SEND_DELAY env is not a valid duration: %v", err)
		}
	}
	if value := os.Getenv("TIKWM_API_URL"); value != "" {
		Env.TikwmAPIURL = value
	}
	if value := os.Getenv("INSTAGRAM_API_URL"); value != "" {
		Env.InstagramAPIURL = value
	} else {
		zap.S().Warnf("INSTAGRAM_API_URL is not set, using default %s", Env.InstagramAPIURL)
	}
	if value := os.Getenv("EXTRACTOR_API_URL"); value != "" {
		Env.ExtractorAPIURL = value
	} else {
		zap.S().Warnf("EXTRACTOR_API_URL is not set, using default %s", Env.ExtractorAPIURL)
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		Env.LogLevel = value
	}
	if value := os.Getenv("LOG_PATH"); value != "" {
		Env.LogPath = value
	}
	if value := os.Getenv("PROFILER_PORT"); value != "" {
		if port, err := strconv.Atoi(value); err == nil {
			Env.ProfilerPort = port
		} else {
			zap.S().Fatal("PROFILER_PORT env is not a valid integer")
		}
	}
}

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		BotAPIURL:         gotgbot.DefaultAPIURL,
		ConcurrentUpdates: 50,

		Cooldown:    15 * time.Second,
		MaxFileSize: 50 * 1024 * 1024,
		SendDelay:   time.Second,

		TikwmAPIURL:     "https://www.tikwm.com",
		InstagramAPIURL: "http://localhost:8091",
		ExtractorAPIURL: "http://localhost:8092",

		LogLevel: "info",
	}
}
