package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/JakeFAU/talenthub-backend/internal/config"
	"github.com/JakeFAU/talenthub-backend/internal/logging"
	"github.com/JakeFAU/talenthub-backend/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		return 1
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush
	zap.ReplaceGlobals(logger)

	app, err := server.Build(cfg, logger)
	if err != nil {
		logger.Error("build application failed", zap.Error(err))
		return 1
	}
	if err := app.Run(context.Background()); err != nil {
		logger.Error("server exited", zap.Error(err))
		return 1
	}
	return 0
}
