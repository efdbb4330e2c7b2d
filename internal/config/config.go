package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"pointsjack/internal/game"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken          string
	HTTPAddr          string
	DatabasePath      string
	GinMode           string
	Rules             game.Rules
	DefaultVisibility game.Visibility
	TopLimit          int
	SessionIdle       time.Duration
	SweepInterval     time.Duration
}

func Load() (*Config, error) {
	// A missing .env is fine; the process environment wins anyway.
	_ = godotenv.Load()

	rules := game.DefaultRules()
	rules.StartingPoints = intEnv("STARTING_POINTS", rules.StartingPoints)
	rules.Stake = intEnv("STAKE", rules.Stake)
	rules.WinAt = intEnv("WIN_POINTS", rules.WinAt)
	rules.LoseAt = intEnv("LOSE_POINTS", rules.LoseAt)
	rules.DealerStandsOn = intEnv("DEALER_STANDS_ON", rules.DealerStandsOn)

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	visibility := game.VisibilityOneCard
	if v := strings.TrimSpace(os.Getenv("DEALER_VISIBILITY")); v != "" {
		parsed, err := game.ParseVisibility(v)
		if err != nil {
			return nil, fmt.Errorf("DEALER_VISIBILITY: %w", err)
		}
		visibility = parsed
	}

	return &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		DatabasePath:      getEnv("DATABASE_PATH", "./blackjack.db"),
		GinMode:           getEnv("GIN_MODE", "release"),
		Rules:             rules,
		DefaultVisibility: visibility,
		TopLimit:          intEnv("TOP_LIMIT", 10),
		SessionIdle:       durationEnv("SESSION_IDLE", 30*time.Minute),
		SweepInterval:     durationEnv("SESSION_SWEEP_INTERVAL", time.Minute),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("config: invalid %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
