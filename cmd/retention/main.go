package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/app"
	"github.com/kapu/youtube-growth-monitor/internal/config"
	"github.com/kapu/youtube-growth-monitor/internal/util"
	"go.uber.org/zap"
)

// retention analyzes the audience retention curves of recent uploads and
// stores drop/peak findings for the editing workflow.
func main() {
	days := flag.Int("days", 7, "lookback window in days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}
	defer container.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := container.Retention.Run(ctx, *days); err != nil {
		logger.Error("Retention analysis failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Retention analysis complete")
}
