package main

import (
	"log/slog"
	"os"

	"github.com/rhyrak/krsplan/internal/api"
	"github.com/rhyrak/krsplan/internal/scheduler"
	"github.com/rhyrak/krsplan/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := scheduler.LoadConfiguration(os.Getenv("KRSPLAN_CONFIG"))
	if err != nil {
		logger.Error("load configuration", "err", err)
		os.Exit(1)
	}

	srv := &api.Server{Store: store.New(), Config: cfg, Logger: logger}
	logger.Info("listening", "addr", cfg.ServerAddr)
	if err := srv.Router().Run(cfg.ServerAddr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
