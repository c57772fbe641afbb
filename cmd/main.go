package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"jsonviews/config"
	"jsonviews/internal/app"
	"jsonviews/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.New(cfg.LogLevel, os.Stdout)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, log)

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Error("error creating app", "error", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Error("app stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("app stopped")
}
