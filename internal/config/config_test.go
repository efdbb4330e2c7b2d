package config

import (
	"testing"
	"time"

	"pointsjack/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"BOT_TOKEN", "HTTP_ADDR", "DATABASE_PATH", "GIN_MODE", "STARTING_POINTS",
		"STAKE", "WIN_POINTS", "LOSE_POINTS", "DEALER_STANDS_ON", "DEALER_VISIBILITY", "TOP_LIMIT",
		"SESSION_IDLE", "SESSION_SWEEP_INTERVAL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "./blackjack.db", cfg.DatabasePath)
	assert.Equal(t, game.DefaultRules(), cfg.Rules)
	assert.Equal(t, game.VisibilityOneCard, cfg.DefaultVisibility)
	assert.Equal(t, 10, cfg.TopLimit)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Empty(t, cfg.BotToken)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("STAKE", "50")
	t.Setenv("WIN_POINTS", "300")
	t.Setenv("DEALER_VISIBILITY", "3")
	t.Setenv("SESSION_IDLE", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.BotToken)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 50, cfg.Rules.Stake)
	assert.Equal(t, 300, cfg.Rules.WinAt)
	assert.Equal(t, game.VisibilityFull, cfg.DefaultVisibility)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdle)
}

func TestLoadInvalidNumberFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("STAKE", "lots")
	t.Setenv("SESSION_IDLE", "soon")
	t.Setenv("SESSION_SWEEP_INTERVAL", "-1s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Rules.Stake)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("WIN_POINTS", "50")

	_, err := Load()
	assert.ErrorIs(t, err, game.ErrInvalidRules)

	clearEnv(t)
	t.Setenv("DEALER_VISIBILITY", "9")

	_, err = Load()
	assert.ErrorIs(t, err, game.ErrInvalidVisibility)
}
