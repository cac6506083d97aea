package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/lol-match-coach/internal/config"
	"github.com/preston-bernstein/lol-match-coach/internal/logging"
	"github.com/preston-bernstein/lol-match-coach/internal/server"
)

const appName = "lol-match-coach"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	dotEnvErr := config.LoadDotEnv()
	cfg := config.Load()
	logger := newLogger(cfg, os.Stdout)
	if dotEnvErr != nil {
		logging.Warn(logger, "could not read .env file", "err", dotEnvErr)
	}
	logging.Info(logger, "starting",
		logging.FieldProvider, cfg.Provider,
		"riot_configured", cfg.Riot.Configured(),
		"ai_configured", cfg.Narrative.APIKey != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: cfg.Version,
		Output:  out,
	})
}
