// Package config loads bot configuration from environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Token       string `env:"TG_API_TOKEN,required"`
	Debug       bool   `env:"MAFIA_DEBUG" envDefault:"false"`
	GifDir      string `env:"MAFIA_GIF_DIR" envDefault:"gifs"`
	MetricsAddr string `env:"MAFIA_METRICS_ADDR"`

	NightDuration    time.Duration `env:"MAFIA_NIGHT_DURATION" envDefault:"60s"`
	DayDuration      time.Duration `env:"MAFIA_DAY_DURATION" envDefault:"60s"`
	VoteDuration     time.Duration `env:"MAFIA_VOTE_DURATION" envDefault:"30s"`
	BotDecisionDelay time.Duration `env:"MAFIA_BOT_DELAY" envDefault:"5s"`

	MinPlayers int `env:"MAFIA_MIN_PLAYERS" envDefault:"5"`
	MaxPlayers int `env:"MAFIA_MAX_PLAYERS" envDefault:"10"`
	MaxBots    int `env:"MAFIA_MAX_BOTS" envDefault:"6"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// gifs maps event keys emitted by the game to asset file names.
var gifs = map[string]string{
	"night":      "night.gif",
	"morning":    "morning.gif",
	"vote":       "vote.gif",
	"dead":       "dead.gif",
	"lost_civil": "lost_civil.gif",
	"lost_mafia": "lost_mafia.gif",
}

// GifPath resolves an event key to an asset path.
func GifPath(dir, key string) (string, bool) {
	name, ok := gifs[key]
	if !ok {
		return "", false
	}
	return filepath.Join(dir, name), true
}
