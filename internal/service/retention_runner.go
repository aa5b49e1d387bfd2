package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// RetentionRunner analyzes the audience retention curve of recently
// published videos and persists drop/peak findings.
type RetentionRunner struct {
	videos    *VideoRepository
	youtube   *YouTubeService
	analytics *AnalyticsService
	logger    *zap.Logger
}

func NewRetentionRunner(videos *VideoRepository, youtube *YouTubeService, analytics *AnalyticsService, logger *zap.Logger) *RetentionRunner {
	return &RetentionRunner{
		videos:    videos,
		youtube:   youtube,
		analytics: analytics,
		logger:    logger,
	}
}

// Run analyzes every video published within the lookback window. Videos
// without a curve yet (too young, too few views) are skipped, not failed.
func (r *RetentionRunner) Run(ctx context.Context, lookbackDays int) error {
	if lookbackDays <= 0 {
		lookbackDays = 7
	}
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -lookbackDays)

	videos, err := r.videos.ListRecentVideos(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to list recent videos: %w", err)
	}

	r.logger.Info("Retention analysis started",
		zap.Int("videos", len(videos)),
		zap.Int("lookbackDays", lookbackDays))

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.VideoID)
	}
	details, err := r.youtube.GetVideoDetails(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch video details: %w", err)
	}

	analyzed := 0
	for _, video := range videos {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		points, err := r.analytics.GetRetentionCurve(ctx, video.VideoID, video.PublishedAt, now)
		if err != nil {
			r.logger.Warn("Retention curve unavailable",
				zap.String("videoId", video.VideoID),
				zap.Error(err))
			continue
		}
		if len(points) == 0 {
			r.logger.Debug("No retention data yet",
				zap.String("videoId", video.VideoID))
			continue
		}

		// Without a known duration the second markers would be meaningless;
		// assume 10 minutes like the report consumers expect.
		durationSeconds := 600
		if d, ok := details[video.VideoID]; ok && d.DurationSeconds > 0 {
			durationSeconds = d.DurationSeconds
		}

		analysis := AnalyzeRetentionCurve(video.VideoID, video.TitleOriginal, durationSeconds, points, now)
		if err := r.videos.SaveRetentionAnalysis(ctx, &analysis); err != nil {
			r.logger.Error("Failed to save retention analysis",
				zap.String("videoId", video.VideoID),
				zap.Error(err))
			continue
		}

		r.logger.Info("Retention analyzed",
			zap.String("videoId", video.VideoID),
			zap.Float64("avgRetention", analysis.AverageRetention),
			zap.Int("dropPoints", len(analysis.DropPoints)),
			zap.Int("peakPoints", len(analysis.PeakPoints)))
		analyzed++
	}

	r.logger.Info("Retention analysis finished",
		zap.Int("analyzed", analyzed),
		zap.Int("skipped", len(videos)-analyzed))
	return nil
}
