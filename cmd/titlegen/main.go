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
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// titlegen generates A/B/C title variants. Titles come from the command
// line, or from the channel's latest uploads when none are given.
func main() {
	maxVideos := flag.Int("recent", 5, "number of recent uploads to process when no titles are given")
	concurrency := flag.Int("concurrency", 3, "parallel generations")
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	titles := flag.Args()
	if len(titles) == 0 {
		titles, err = recentTitles(ctx, container, *maxVideos)
		if err != nil {
			logger.Error("Failed to fetch recent uploads", zap.Error(err))
			os.Exit(1)
		}
	}
	if len(titles) == 0 {
		logger.Warn("No titles to process")
		return
	}

	logger.Info("Generating title variants",
		zap.Int("titles", len(titles)),
		zap.Int("concurrency", *concurrency))

	type result struct {
		original string
		a, b, c  string
		profile  string
		provider string
	}

	results := make([]result, len(titles))
	p := pool.New().WithMaxGoroutines(*concurrency)
	for idx, title := range titles {
		idx, title := idx, title
		p.Go(func() {
			suggestion := container.Titles.Generate(ctx, title)
			provider := suggestion.Provider
			if !suggestion.Generated {
				provider = "fallback"
			}
			results[idx] = result{
				original: title,
				a:        suggestion.Variants.VariantA,
				b:        suggestion.Variants.VariantB,
				c:        suggestion.Variants.VariantC,
				profile:  suggestion.Profile.String(),
				provider: provider,
			}
		})
	}
	p.Wait()

	for _, r := range results {
		fmt.Printf("\nOriginal: %s\n", r.original)
		fmt.Printf("  Perfil: %s (%s)\n", r.profile, r.provider)
		fmt.Printf("  A (Curiosidad): %s\n", r.a)
		fmt.Printf("  B (Beneficio):  %s\n", r.b)
		fmt.Printf("  C (Urgencia):   %s\n", r.c)
	}
}

func recentTitles(ctx context.Context, container *app.Container, max int) ([]string, error) {
	if container.Config.YouTube.ChannelID == "" {
		return nil, fmt.Errorf("CHANNEL_ID is required when no titles are passed")
	}

	ids, err := container.YouTube.GetRecentUploads(ctx, container.Config.YouTube.ChannelID, int64(max))
	if err != nil {
		return nil, err
	}

	details, err := container.YouTube.GetVideoDetails(ctx, ids)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		if d, ok := details[id]; ok && d.Title != "" {
			titles = append(titles, d.Title)
		}
	}
	return titles, nil
}
