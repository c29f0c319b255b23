package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TG_API_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Token)
	assert.Equal(t, 60*time.Second, cfg.NightDuration)
	assert.Equal(t, 60*time.Second, cfg.DayDuration)
	assert.Equal(t, 30*time.Second, cfg.VoteDuration)
	assert.Equal(t, 5*time.Second, cfg.BotDecisionDelay)
	assert.Equal(t, 5, cfg.MinPlayers)
	assert.Equal(t, 10, cfg.MaxPlayers)
	assert.Equal(t, 6, cfg.MaxBots)
	assert.Equal(t, "gifs", cfg.GifDir)
	assert.False(t, cfg.Debug)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TG_API_TOKEN", "test-token")
	t.Setenv("MAFIA_VOTE_DURATION", "45s")
	t.Setenv("MAFIA_MIN_PLAYERS", "4")
	t.Setenv("MAFIA_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.VoteDuration)
	assert.Equal(t, 4, cfg.MinPlayers)
	assert.True(t, cfg.Debug)
}

func TestGifPath(t *testing.T) {
	path, ok := GifPath("assets", "night")
	require.True(t, ok)
	assert.Equal(t, "assets/night.gif", path)

	_, ok = GifPath("assets", "nonexistent")
	assert.False(t, ok)
}
