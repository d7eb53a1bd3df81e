package config

import (
	"os"
	"strings"
)

type Config struct {
	BotToken        string
	GuildID         string
	NotifyChannelID string
	FixedTargetIDs  []string
	FixedSweepTime  string
	FixedSweepLabel string
	LogLevel        string
}

func Load() *Config {
	return &Config{
		BotToken:        getEnv("BOT_TOKEN", ""),
		GuildID:         getEnv("GUILD_ID", ""),
		NotifyChannelID: getEnv("NOTIFY_CHANNEL_ID", ""),
		FixedTargetIDs:  splitList(getEnv("TARGET_USER_IDS", "")),
		FixedSweepTime:  getEnv("FIXED_SWEEP_TIME", "18:00"),
		FixedSweepLabel: getEnv("FIXED_SWEEP_LABEL", "1 AM"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	var ids []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
