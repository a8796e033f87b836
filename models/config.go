package models

import "time"

type EnvConfig struct {
	BotToken          string
	BotAPIURL         string
	ConcurrentUpdates int

	Cooldown    time.Duration
	MaxFileSize int64 // bytes
	SendDelay   time.Duration

	TikwmAPIURL     string
	InstagramAPIURL string
	ExtractorAPIURL string

	LogLevel     string
	LogPath      string
	ProfilerPort int
}
