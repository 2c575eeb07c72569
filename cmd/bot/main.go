package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/avtomir/avtomir-backend/internal/bot"
	"github.com/avtomir/avtomir-backend/internal/catalog"
	"github.com/avtomir/avtomir-backend/pkg/config"
	"github.com/avtomir/avtomir-backend/pkg/db"
	"github.com/avtomir/avtomir-backend/pkg/logger"
	"github.com/avtomir/avtomir-backend/pkg/telegram"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "bot"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "bot",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if !cfg.Telegram.Configured() {
		logg.Error(context.Background(), "telegram credentials are required for the bot worker", nil)
		os.Exit(1)
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	telegramClient, err := telegram.New(context.Background(), cfg.Telegram, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap telegram", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	worker, err := bot.New(telegramClient, catalogService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create bot worker", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logCtx := logg.WithField(ctx, "env", cfg.App.Env)
	logg.Info(logCtx, "starting bot worker")

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logg.Error(logCtx, "bot worker stopped unexpectedly", err)
		os.Exit(1)
	}
}
