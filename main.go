package main

import (
	"net/http"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/bobsterx/mafiabot/config"
	"github.com/bobsterx/mafiabot/game"
	"github.com/bobsterx/mafiabot/metrics"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram auth")
	}
	bot.Debug = cfg.Debug
	logger.Info().Str("account", bot.Self.UserName).Msg("authorized")

	messages := make(chan game.Message, 64)
	settings := game.Settings{
		NightDuration:    cfg.NightDuration,
		DayDuration:      cfg.DayDuration,
		VoteDuration:     cfg.VoteDuration,
		BotDecisionDelay: cfg.BotDecisionDelay,
		MinPlayers:       cfg.MinPlayers,
		MaxPlayers:       cfg.MaxPlayers,
		MaxBots:          cfg.MaxBots,
	}
	mgr := game.NewManager(messages, settings, logger)

	a := &app{
		bot:    bot,
		mgr:    mgr,
		tokens: newTokenStore(time.Hour),
		cfg:    cfg,
		log:    logger,
	}

	if cfg.MetricsAddr != "" {
		go func() {
			logger.Info().Str("addr", cfg.MetricsAddr).Msg("metrics listener")
			if err := http.ListenAndServe(cfg.MetricsAddr, metrics.Handler()); err != nil {
				logger.Error().Err(err).Msg("metrics listener failed")
			}
		}()
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates, err := bot.GetUpdatesChan(u)
	if err != nil {
		logger.Fatal().Err(err).Msg("updates channel")
	}

	for {
		select {
		case m := <-messages:
			a.deliver(m)
		case update := <-updates:
			a.handleUpdate(update)
		}
	}
}
