package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/config"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/handlers"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/realtime"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.New()
	svc := marketplace.NewService(marketplace.RepositoriesFrom(st), marketplace.WithLogger(logger))

	hub := realtime.NewHub(logger)
	go hub.Run(ctx)

	notify := realtime.Fanout{hub}
	if cfg.RedisEnabled() {
		rdb, err := realtime.NewRedis(ctx, realtime.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Error("connect redis", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		notify = append(notify, realtime.NewRedisPublisher(rdb, logger))
		logger.Info("redis notifications enabled", "addr", cfg.RedisAddr)
	}

	app := handlers.NewApp(handlers.Deps{
		Config: cfg,
		Svc:    svc,
		Hub:    hub,
		Notify: notify,
		Log:    logger,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Warn("shutdown", "err", err)
		}
	}()

	logger.Info("listening", "port", cfg.AppPort, "seed_enabled", cfg.EnableSeed)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Error("listen", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
