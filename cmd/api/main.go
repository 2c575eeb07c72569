package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avtomir/avtomir-backend/api/routes"
	cartpkg "github.com/avtomir/avtomir-backend/internal/cart"
	"github.com/avtomir/avtomir-backend/internal/catalog"
	"github.com/avtomir/avtomir-backend/internal/preorders"
	"github.com/avtomir/avtomir-backend/pkg/config"
	"github.com/avtomir/avtomir-backend/pkg/db"
	"github.com/avtomir/avtomir-backend/pkg/logger"
	"github.com/avtomir/avtomir-backend/pkg/metrics"
	"github.com/avtomir/avtomir-backend/pkg/migrate"
	"github.com/avtomir/avtomir-backend/pkg/redis"
	"github.com/avtomir/avtomir-backend/pkg/telegram"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

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

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotency guard disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	notifierMetrics := metrics.NewNotifierMetrics(registry)

	var notifier preorders.Notifier
	if cfg.Telegram.Configured() {
		telegramClient, err := telegram.New(context.Background(), cfg.Telegram, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap telegram", err)
			os.Exit(1)
		}
		notifier = telegramClient
	} else {
		logg.Warn(context.Background(), "telegram not configured, pre-order notifications disabled")
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	preOrderService, err := preorders.NewService(preorders.NewRepository(dbClient.DB()), catalogRepo, notifier, notifierMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create pre-order service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Redis:           redisClient,
			HTTPMetrics:     httpMetrics,
			CatalogService:  catalogService,
			CartStore:       cartpkg.NewStore(),
			PreOrderService: preOrderService,
			MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
