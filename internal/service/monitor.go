package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/adapter"
	"github.com/kapu/youtube-growth-monitor/internal/domain"
	"github.com/kapu/youtube-growth-monitor/internal/service/cache"
	"github.com/kapu/youtube-growth-monitor/internal/util"
	"go.uber.org/zap"
)

const (
	runLockKey        = "monitor:run-lock"
	runLockTTL        = 30 * time.Minute
	analyticsCacheTTL = 30 * time.Minute
	criticalCTRLimit  = 5.0
)

// Monitor drives one evaluation pass over every video still in monitoring.
// Passes are serialized across processes with a Redis lock so an overlapping
// cron run cannot double-send checkpoint notifications.
type Monitor struct {
	videos    *VideoRepository
	prefs     *PreferenceRepository
	youtube   *YouTubeService
	analytics *AnalyticsService
	titles    *TitleGenerator
	resolver  *ProfileResolver
	mailer    *Mailer
	cache     *cache.CacheService
	logger    *zap.Logger
}

func NewMonitor(
	videos *VideoRepository,
	prefs *PreferenceRepository,
	youtube *YouTubeService,
	analytics *AnalyticsService,
	titles *TitleGenerator,
	resolver *ProfileResolver,
	mailer *Mailer,
	cacheService *cache.CacheService,
	logger *zap.Logger,
) *Monitor {
	return &Monitor{
		videos:    videos,
		prefs:     prefs,
		youtube:   youtube,
		analytics: analytics,
		titles:    titles,
		resolver:  resolver,
		mailer:    mailer,
		cache:     cacheService,
		logger:    logger,
	}
}

// Run performs a single monitoring pass. Per-video failures are logged and
// skipped; one broken video must not starve the rest of the batch.
func (m *Monitor) Run(ctx context.Context) error {
	acquired, err := m.cache.AcquireRunLock(ctx, runLockKey, runLockTTL)
	if err != nil {
		m.logger.Warn("Run lock check failed, proceeding without lock", zap.Error(err))
	} else if !acquired {
		m.logger.Info("Another monitoring run is active, skipping this pass")
		return nil
	} else {
		defer m.cache.ReleaseRunLock(ctx, runLockKey)
	}

	videos, err := m.videos.ListMonitoring(ctx)
	if err != nil {
		return fmt.Errorf("failed to list monitored videos: %w", err)
	}

	m.logger.Info("Monitoring pass started", zap.Int("videos", len(videos)))

	now := time.Now().UTC()
	evaluated := 0
	for _, video := range videos {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		done, err := m.safeEvaluate(ctx, video, now)
		if err != nil {
			m.logger.Error("Video evaluation failed",
				zap.String("videoId", video.VideoID),
				zap.String("title", truncateTitle(video.TitleOriginal, 50)),
				zap.Error(err))
			continue
		}
		if done {
			evaluated++
		}
	}

	m.logger.Info("Monitoring pass finished",
		zap.Int("videos", len(videos)),
		zap.Int("evaluated", evaluated))
	return nil
}

// safeEvaluate converts a panic inside one video's evaluation into an error
// so the rest of the batch keeps running.
func (m *Monitor) safeEvaluate(ctx context.Context, video *domain.TrackedVideo, now time.Time) (done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluation panicked: %v", r)
		}
	}()
	return m.evaluateVideo(ctx, video, now)
}

// evaluateVideo runs the full checkpoint pipeline for one video. Returns
// true when a checkpoint actually fired.
func (m *Monitor) evaluateVideo(ctx context.Context, video *domain.TrackedVideo, now time.Time) (bool, error) {
	profile := video.Profile
	if profile == "" || profile == domain.ProfileUnknown {
		profile = m.resolver.Resolve(video.TitleOriginal, video.ChannelID)
	}
	cfg := domain.GetProfileConfig(profile)

	hoursSince := util.HoursSince(video.PublishedAt, now)

	// Past the archive window with no long-term watch there is nothing left
	// to evaluate.
	if hoursSince > cfg.ArchiveAfterHours && !video.LongTermWatch {
		m.logger.Info("Archiving video past monitoring window",
			zap.String("videoId", video.VideoID),
			zap.Float64("hoursOnline", hoursSince))
		return false, m.videos.Complete(ctx, video.VideoID, now, "archive_window_elapsed", false)
	}

	schedule := EvaluationSchedule(cfg, video.LongTermWatch)
	checkpoint, alreadyNotified := SelectDueCheckpoint(hoursSince, schedule, video.NotificationsSent)
	if checkpoint == nil {
		return false, nil
	}
	if alreadyNotified {
		m.logger.Debug("Checkpoint already notified",
			zap.String("videoId", video.VideoID),
			zap.String("checkpoint", checkpoint.Key))
		return false, nil
	}

	m.logger.Info("Checkpoint due",
		zap.String("videoId", video.VideoID),
		zap.String("title", truncateTitle(video.TitleOriginal, 50)),
		zap.String("checkpoint", checkpoint.Key),
		zap.String("profile", profile.String()))

	counts, err := m.youtube.GetVideoCounts(ctx, video.VideoID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch counts: %w", err)
	}
	if err := m.videos.UpsertCounts(ctx, video.VideoID, video.TitleOriginal, video.PublishedAt, video.ChannelID, *counts); err != nil {
		m.logger.Warn("Failed to refresh counts row", zap.String("videoId", video.VideoID), zap.Error(err))
	}

	vph := util.ViewsPerHour(counts.Views, hoursSince)
	analytics := m.fetchAnalytics(ctx, video, now)

	var ctr, retention *float64
	var impressions *int64
	if analytics != nil {
		ctr = analytics.CTR
		retention = analytics.Retention
		impressions = analytics.Impressions
	}

	snapshot := domain.MetricsSnapshot{
		Timestamp:   now,
		Views:       counts.Views,
		Likes:       counts.Likes,
		Comments:    counts.Comments,
		VPH:         vph,
		CTR:         ctr,
		Retention:   retention,
		Impressions: impressions,
		HoursSince:  util.Round1(hoursSince),
	}
	video.Metrics = video.Metrics.Merge(checkpoint.Key, snapshot)
	video.NotificationsSent = video.NotificationsSent.Mark(checkpoint.Key, now)

	diagnosis := DiagnoseRootCause(impressions, ctr, retention, counts.Views, profile, cfg)
	health := CheckVideoHealth(HealthMetrics{
		Views:     counts.Views,
		VPH:       vph,
		CTR:       ctr,
		Retention: retention,
	}, hoursSince, profile, cfg)

	m.logger.Info("Checkpoint evaluated",
		zap.String("videoId", video.VideoID),
		zap.String("syndrome", string(diagnosis.Syndrome)),
		zap.String("culprit", string(diagnosis.Culprit)),
		zap.String("health", string(health.Status)),
		zap.Int64("views", counts.Views),
		zap.Int64("vph", vph))

	update := CheckpointUpdate{
		Metrics:       video.Metrics,
		Notifications: video.NotificationsSent,
		CheckedAt:     now,
		Stage:         checkpoint.Key,
		Profile:       profile,
		Diagnosis:     diagnosis,
	}
	if err := m.videos.RecordCheckpoint(ctx, video.VideoID, update); err != nil {
		return false, err
	}

	if signal := BuildLearningSignal(video, analytics, vph, counts.Views, checkpoint.Key, now); signal != nil {
		if err := m.prefs.SaveSignal(ctx, signal); err != nil {
			m.logger.Error("Failed to save learning signal",
				zap.String("videoId", video.VideoID),
				zap.Error(err))
		}
	}

	if checkpoint.Key == "checkpoint_24h" && ctr != nil && *ctr < criticalCTRLimit {
		m.sendCriticalAlert(ctx, video, analytics, vph, counts.Views, now)
	}

	m.sendDiagnosisReport(video, checkpoint, profile, cfg, hoursSince, snapshot, diagnosis)

	if checkpoint.Key == baselineCheckpoint {
		if err := m.decideExtension(ctx, video, ctr, retention, vph, now); err != nil {
			return true, err
		}
	}

	if checkpoint.Key == "checkpoint_30d" {
		if err := m.closeExtendedMonitoring(ctx, video, ctr, now); err != nil {
			return true, err
		}
	}

	return true, nil
}

// fetchAnalytics reads the Analytics API through a short Redis cache so
// back-to-back passes (or the retention binary) do not re-query the same
// video. Analytics being unavailable degrades the diagnosis, it does not
// abort the checkpoint.
func (m *Monitor) fetchAnalytics(ctx context.Context, video *domain.TrackedVideo, now time.Time) *domain.VideoAnalytics {
	cacheKey := "analytics:" + video.VideoID

	var cached domain.VideoAnalytics
	if found, err := m.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached
	}

	analytics, err := m.analytics.GetVideoAnalytics(ctx, video.VideoID, video.PublishedAt, now)
	if err != nil {
		m.logger.Warn("Analytics unavailable for video",
			zap.String("videoId", video.VideoID),
			zap.Error(err))
		return nil
	}

	if err := m.cache.Set(ctx, cacheKey, analytics, analyticsCacheTTL); err != nil {
		m.logger.Debug("Failed to cache analytics", zap.Error(err))
	}
	return analytics
}

// sendCriticalAlert handles the 24h low-CTR emergency: attribute the
// failure, generate replacement titles when the title is implicated, email
// the owner and persist the alert.
func (m *Monitor) sendCriticalAlert(ctx context.Context, video *domain.TrackedVideo, analytics *domain.VideoAnalytics, vph, views int64, now time.Time) {
	var ctr float64
	var retention *float64
	if analytics != nil && analytics.CTR != nil {
		ctr = *analytics.CTR
	}
	if analytics != nil {
		retention = analytics.Retention
	}

	problem := AttributeProblem(analytics)
	m.logger.Warn("Critical CTR alert",
		zap.String("videoId", video.VideoID),
		zap.Float64("ctr", ctr),
		zap.String("problem", string(problem)))

	var variants *domain.TitleVariants
	if problem == domain.ProblemTitle || problem == domain.ProblemBoth || problem == domain.ProblemUnknown {
		suggestion := m.titles.Generate(ctx, video.TitleOriginal)
		variants = suggestion.Variants
	}

	email, err := adapter.BuildCriticalAlert(adapter.CriticalAlertInput{
		VideoID:       video.VideoID,
		Title:         video.TitleOriginal,
		CTR:           ctr,
		Retention:     retention,
		VPH:           vph,
		Views:         views,
		ProblemSource: problem,
		Variants:      variants,
	})
	if err != nil {
		m.logger.Error("Failed to render alert email", zap.Error(err))
	} else {
		m.mailer.Send(email)
	}

	if err := m.videos.SaveAlert(ctx, video.VideoID, now, variants, problem); err != nil {
		m.logger.Error("Failed to persist alert",
			zap.String("videoId", video.VideoID),
			zap.Error(err))
	}
}

func (m *Monitor) sendDiagnosisReport(video *domain.TrackedVideo, checkpoint *Checkpoint, profile domain.ChannelProfile, cfg domain.ProfileConfig, hoursSince float64, snapshot domain.MetricsSnapshot, diagnosis domain.Diagnosis) {
	email, err := adapter.BuildDiagnosisReport(adapter.DiagnosisReportInput{
		VideoID:         video.VideoID,
		Title:           video.TitleOriginal,
		CheckpointLabel: checkpoint.Label,
		Profile:         profile,
		HoursOnline:     hoursSince,
		Impressions:     snapshot.Impressions,
		CTR:             snapshot.CTR,
		CTRTarget:       cfg.MinCTRThreshold,
		Retention:       snapshot.Retention,
		Views:           snapshot.Views,
		VPH:             snapshot.VPH,
		Diagnosis:       diagnosis,
	})
	if err != nil {
		m.logger.Error("Failed to render diagnosis report", zap.Error(err))
		return
	}
	m.mailer.Send(email)
}

// decideExtension is the 72h gate: videos showing "sleeper potential"
// (great retention, weak reach) stay on the extended schedule, everything
// else closes out.
func (m *Monitor) decideExtension(ctx context.Context, video *domain.TrackedVideo, ctr, retention *float64, vph int64, now time.Time) error {
	var reason string

	switch {
	case retention != nil && *retention >= 50 && ctr != nil && *ctr < 8:
		reason = fmt.Sprintf("high_retention_%.1f%%_low_ctr_%.1f%%", *retention, *ctr)
	case vph < 20 && retention != nil && *retention >= 45:
		reason = fmt.Sprintf("low_vph_%d_good_retention_%.1f%%", vph, *retention)
	}

	if reason == "" {
		m.logger.Info("Monitoring complete after 72h",
			zap.String("videoId", video.VideoID))
		return m.videos.Complete(ctx, video.VideoID, now, "normal_72h_completion", false)
	}

	m.logger.Info("Sleeper potential detected, extending monitoring",
		zap.String("videoId", video.VideoID),
		zap.String("reason", reason))
	return m.videos.EnableLongTermWatch(ctx, video.VideoID, reason, now)
}

// closeExtendedMonitoring is the definitive 30-day end, flagging videos
// whose CTR grew at least 1.5x over the 72h baseline as sleeper hits.
func (m *Monitor) closeExtendedMonitoring(ctx context.Context, video *domain.TrackedVideo, ctr *float64, now time.Time) error {
	explosion := false
	if baseline, ok := video.Metrics[baselineCheckpoint]; ok && baseline.CTR != nil && ctr != nil {
		if *baseline.CTR > 0 && *ctr >= *baseline.CTR*1.5 {
			explosion = true
			m.logger.Info("Sleeper hit confirmed",
				zap.String("videoId", video.VideoID),
				zap.Float64("ctrDay3", *baseline.CTR),
				zap.Float64("ctrDay30", *ctr))
		}
	}

	return m.videos.Complete(ctx, video.VideoID, now, "extended_30d_completion", explosion)
}

// AttributeProblem determines whether low CTR is the title's fault, the
// thumbnail's, or both. High retention or browse-dominated traffic clears
// the title; sub-30% retention condemns both.
func AttributeProblem(analytics *domain.VideoAnalytics) domain.ProblemSource {
	if analytics == nil {
		return domain.ProblemUnknown
	}

	if analytics.Retention != nil && *analytics.Retention > 40 {
		return domain.ProblemThumbnail
	}

	if top := analytics.TopTrafficSource(); top != "" {
		switch top {
		case domain.TrafficSearch:
			return domain.ProblemTitle
		case domain.TrafficBrowse, domain.TrafficBrowseFeatures, domain.TrafficRelatedVideo:
			return domain.ProblemThumbnail
		}
		return domain.ProblemUnknown
	}

	if analytics.Retention != nil && *analytics.Retention < 30 {
		return domain.ProblemBoth
	}

	return domain.ProblemTitle
}

func truncateTitle(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
