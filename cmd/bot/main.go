// Package main is the entry point for the Discord arcade bot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/bot"
	"discord-arcade-bot/internal/config"
	"discord-arcade-bot/internal/emoji"
	"discord-arcade-bot/internal/moderation"
	"discord-arcade-bot/internal/pkg/db"
	"discord-arcade-bot/internal/repository"
	"discord-arcade-bot/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional .env for local development; real deployments use the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		log.Info().Msg(".env file loaded")
	}

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	log.Info().Str("backend", cfg.Storage.Backend).Msg("Configuration loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Pick the score persistence backend.
	var scoreRepo repository.ScoreRepository
	if cfg.Storage.Backend == "postgres" {
		dbPool, err := db.NewPool(ctx, &cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer dbPool.Close()

		pgRepo := repository.NewPostgresScoreRepository(dbPool.Pool)
		if err := pgRepo.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
		scoreRepo = pgRepo
	} else {
		scoreRepo = repository.NewJSONScoreRepository(cfg.Storage.ScoreFile)
		log.Info().Str("file", cfg.Storage.ScoreFile).Msg("Using JSON score store")
	}

	// Initialize services
	scoreService := service.NewScoreService(scoreRepo)
	arcadeService := service.NewArcadeService(scoreService, cfg.Games)
	defer arcadeService.Close()

	// Moderation and emoji tooling
	banwordStore := moderation.NewStore(cfg.Storage.BanwordsFile)
	banwordFilter := moderation.NewFilter(banwordStore)
	emojiImporter := emoji.NewImporter()

	// Initialize bot
	discordBot, err := bot.New(&bot.Dependencies{
		Config:        cfg,
		Arcade:        arcadeService,
		BanwordStore:  banwordStore,
		BanwordFilter: banwordFilter,
		EmojiImporter: emojiImporter,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	if err := discordBot.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start bot")
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	discordBot.Stop()
	log.Info().Msg("Bot stopped gracefully")
}
