package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/app"
	"github.com/kapu/youtube-growth-monitor/internal/config"
	"github.com/kapu/youtube-growth-monitor/internal/util"
	"go.uber.org/zap"
)

func main() {
	once := flag.Bool("once", false, "run a single monitoring pass and exit")
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

	logger.Info("Growth monitor starting...",
		zap.String("log_level", cfg.Logging.Level),
		zap.Duration("interval", cfg.Monitor.Interval),
		zap.Bool("once", *once))

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}
	defer container.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	if *once {
		if err := container.Monitor.Run(ctx); err != nil {
			logger.Error("Monitoring pass failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("Monitoring pass complete")
		return
	}

	ticker := time.NewTicker(cfg.Monitor.Interval)
	defer ticker.Stop()

	// Run immediately, then on the configured cadence.
	if err := container.Monitor.Run(ctx); err != nil {
		logger.Error("Monitoring pass failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutdown complete")
			return
		case <-ticker.C:
			if err := container.Monitor.Run(ctx); err != nil {
				logger.Error("Monitoring pass failed", zap.Error(err))
			}
		}
	}
}
