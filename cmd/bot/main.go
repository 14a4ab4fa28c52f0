package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/ai"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/bot"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/config"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/location"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/logger"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/schedule"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/storage"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/telegram"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/timeparse"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/voice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info")
		fallback.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.New(cfg.Log.Level)
	log.Info().Msg("starting smart expense bot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer store.Close()

	gemini, err := ai.NewGeminiClient(ctx, cfg.Gemini.Model)
	if err != nil {
		log.Fatal().Err(err).Msg("create model client")
	}
	gateway := ai.NewGateway(gemini, cfg.Gemini.Timeout, cfg.Gemini.CountryTimeout, logger.Component(log, "ai"))

	transport, err := telegram.New(cfg.Telegram.Token, logger.Component(log, "telegram"))
	if err != nil {
		log.Fatal().Err(err).Msg("connect to telegram")
	}

	timer := schedule.NewMemoryTimer()
	defer timer.Stop()
	dispatcher := schedule.NewDispatcher(timer, store, store, transport, logger.Component(log, "schedule"))

	if err := dispatcher.RecoverPending(ctx); err != nil {
		log.Error().Err(err).Msg("recover pending reminders")
	}
	if err := dispatcher.ScheduleAllNudges(ctx); err != nil {
		log.Error().Err(err).Msg("schedule daily nudges")
	}

	resolver := timeparse.NewResolver(timeparse.WithAI(gateway.ExtractReminderTime))

	transcriber := voice.NewHTTPTranscriber(cfg.Voice.TranscriberURL, transport.FileURL, cfg.Voice.Timeout)

	core := bot.New(bot.Deps{
		Store:       store,
		Extractor:   gateway,
		Times:       resolver,
		Scheduler:   dispatcher,
		Transport:   transport,
		Transcriber: transcriber,
		Locations:   location.NewResolver(),
		Log:         logger.Component(log, "bot"),
	})

	go transport.Run(ctx, core, cfg.Telegram.PollTimeout)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	cancel()
}
