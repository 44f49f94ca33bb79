package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/roster-service/internal/config"
	"github.com/preston-bernstein/roster-service/internal/logging"
	"github.com/preston-bernstein/roster-service/internal/server"
)

const serviceName = "roster-service"

// appVersion is overridden at build time with -ldflags "-X main.appVersion=...".
var appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, cfgErr := config.Parse()
	if cfgErr != nil {
		cfg = config.Defaults()
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})
	if cfgErr != nil {
		logging.Warn(logger, "invalid configuration, using defaults", "error", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
