package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
	"github.com/kapu/youtube-growth-monitor/internal/service/database"
	"github.com/kapu/youtube-growth-monitor/pkg/errors"
	"go.uber.org/zap"
)

// VideoRepository reads and updates the videos and video_monitoring tables.
// Upserts are keyed by video id; the metrics history and notified set live
// in JSONB blobs that are merged in memory and written back whole.
type VideoRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewVideoRepository(postgres *database.PostgresService, logger *zap.Logger) *VideoRepository {
	return &VideoRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

// ListMonitoring returns all videos still in monitoring status, newest
// first so fresh uploads are evaluated before backlog.
func (r *VideoRepository) ListMonitoring(ctx context.Context) ([]*domain.TrackedVideo, error) {
	query := `
		SELECT video_id, title_original, channel_id, published_at, status,
		       profile, metrics, notifications_sent, long_term_watch, long_term_reason
		FROM video_monitoring
		WHERE status = 'monitoring'
		ORDER BY published_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewStoreError("query failed", "video_monitoring", "select", err)
	}
	defer rows.Close()

	var videos []*domain.TrackedVideo
	for rows.Next() {
		video, err := scanTrackedVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	return videos, rows.Err()
}

func scanTrackedVideo(rows *sql.Rows) (*domain.TrackedVideo, error) {
	var (
		videoID        string
		titleOriginal  string
		channelID      sql.NullString
		publishedAt    time.Time
		status         string
		profile        sql.NullString
		metricsJSON    []byte
		notifiedJSON   []byte
		longTermWatch  sql.NullBool
		longTermReason sql.NullString
	)

	if err := rows.Scan(
		&videoID, &titleOriginal, &channelID, &publishedAt, &status,
		&profile, &metricsJSON, &notifiedJSON, &longTermWatch, &longTermReason,
	); err != nil {
		return nil, fmt.Errorf("failed to scan monitoring row: %w", err)
	}

	video := &domain.TrackedVideo{
		VideoID:           videoID,
		TitleOriginal:     titleOriginal,
		ChannelID:         channelID.String,
		PublishedAt:       publishedAt,
		Status:            domain.MonitoringStatus(status),
		Profile:           domain.ParseProfile(profile.String),
		Metrics:           make(domain.MetricsHistory),
		NotificationsSent: make(domain.NotifiedSet),
		LongTermWatch:     longTermWatch.Bool,
		LongTermReason:    longTermReason.String,
	}

	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &video.Metrics); err != nil {
			return nil, fmt.Errorf("failed to decode metrics history for %s: %w", videoID, err)
		}
	}
	if len(notifiedJSON) > 0 {
		if err := json.Unmarshal(notifiedJSON, &video.NotificationsSent); err != nil {
			return nil, fmt.Errorf("failed to decode notified set for %s: %w", videoID, err)
		}
	}

	return video, nil
}

// GetCounts fetches the public counters kept in the videos table.
func (r *VideoRepository) GetCounts(ctx context.Context, videoID string) (*domain.VideoCounts, error) {
	query := `
		SELECT view_count, like_count, comment_count
		FROM videos
		WHERE video_id = $1
		LIMIT 1
	`

	var counts domain.VideoCounts
	err := r.db.QueryRowContext(ctx, query, videoID).Scan(&counts.Views, &counts.Likes, &counts.Comments)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStoreError("query failed", "videos", "select", err)
	}

	return &counts, nil
}

// UpsertCounts refreshes the videos table from the Data API.
func (r *VideoRepository) UpsertCounts(ctx context.Context, videoID, title string, publishedAt time.Time, channelID string, counts domain.VideoCounts) error {
	query := `
		INSERT INTO videos (video_id, title, published_at, channel_id, view_count, like_count, comment_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (video_id) DO UPDATE SET
			title = EXCLUDED.title,
			view_count = EXCLUDED.view_count,
			like_count = EXCLUDED.like_count,
			comment_count = EXCLUDED.comment_count,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query, videoID, title, publishedAt, channelID,
		counts.Views, counts.Likes, counts.Comments)
	if err != nil {
		return errors.NewStoreError("upsert failed", "videos", "upsert", err)
	}
	return nil
}

// CheckpointUpdate is everything persisted after one checkpoint evaluation.
type CheckpointUpdate struct {
	Metrics       domain.MetricsHistory
	Notifications domain.NotifiedSet
	CheckedAt     time.Time
	Stage         string
	Profile       domain.ChannelProfile
	Diagnosis     domain.Diagnosis
}

// RecordCheckpoint writes the merged history and diagnosis back to the
// monitoring row.
func (r *VideoRepository) RecordCheckpoint(ctx context.Context, videoID string, update CheckpointUpdate) error {
	metricsJSON, err := json.Marshal(update.Metrics)
	if err != nil {
		return fmt.Errorf("failed to encode metrics history: %w", err)
	}
	notifiedJSON, err := json.Marshal(update.Notifications)
	if err != nil {
		return fmt.Errorf("failed to encode notified set: %w", err)
	}

	query := `
		UPDATE video_monitoring SET
			metrics = $2,
			notifications_sent = $3,
			last_check_at = $4,
			monitoring_stage = $5,
			profile = $6,
			diagnosis_syndrome = $7,
			diagnosis_culprit = $8,
			diagnosis_reason = $9,
			diagnosis_action = $10,
			impressions_level = $11
		WHERE video_id = $1
	`

	_, err = r.db.ExecContext(ctx, query, videoID,
		metricsJSON, notifiedJSON, update.CheckedAt, update.Stage,
		update.Profile.String(),
		string(update.Diagnosis.Syndrome), string(update.Diagnosis.Culprit),
		update.Diagnosis.Reason, update.Diagnosis.Action,
		string(update.Diagnosis.ImpressionsLevel),
	)
	if err != nil {
		return errors.NewStoreError("update failed", "video_monitoring", "update", err)
	}
	return nil
}

// SaveAlert records a critical-CTR alert, optionally with the suggested
// replacement titles.
func (r *VideoRepository) SaveAlert(ctx context.Context, videoID string, at time.Time, variants *domain.TitleVariants, problem domain.ProblemSource) error {
	var variantsJSON []byte
	if variants != nil {
		var err error
		variantsJSON, err = json.Marshal(variants)
		if err != nil {
			return fmt.Errorf("failed to encode title variants: %w", err)
		}
	}

	query := `
		UPDATE video_monitoring SET
			alert_sent_at = $2,
			suggested_titles = COALESCE($3, suggested_titles),
			problem_diagnosed = $4
		WHERE video_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, videoID, at, variantsJSON, string(problem))
	if err != nil {
		return errors.NewStoreError("update failed", "video_monitoring", "save_alert", err)
	}
	return nil
}

// EnableLongTermWatch keeps the video in monitoring for the extended
// 7d/15d/30d schedule.
func (r *VideoRepository) EnableLongTermWatch(ctx context.Context, videoID, reason string, at time.Time) error {
	query := `
		UPDATE video_monitoring SET
			long_term_watch = TRUE,
			long_term_reason = $2,
			extended_monitoring_started_at = $3
		WHERE video_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, videoID, reason, at)
	if err != nil {
		return errors.NewStoreError("update failed", "video_monitoring", "enable_long_term", err)
	}
	return nil
}

// Complete closes out monitoring for a video.
func (r *VideoRepository) Complete(ctx context.Context, videoID string, at time.Time, reason string, explosionDetected bool) error {
	query := `
		UPDATE video_monitoring SET
			status = 'completed',
			completed_at = $2,
			completion_reason = $3,
			explosion_detected = $4
		WHERE video_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, videoID, at, reason, explosionDetected)
	if err != nil {
		return errors.NewStoreError("update failed", "video_monitoring", "complete", err)
	}
	return nil
}

// SaveRetentionAnalysis upserts one retention analysis row.
func (r *VideoRepository) SaveRetentionAnalysis(ctx context.Context, analysis *domain.RetentionAnalysis) error {
	dropsJSON, err := json.Marshal(analysis.DropPoints)
	if err != nil {
		return fmt.Errorf("failed to encode drop points: %w", err)
	}
	peaksJSON, err := json.Marshal(analysis.PeakPoints)
	if err != nil {
		return fmt.Errorf("failed to encode peak points: %w", err)
	}
	recsJSON, err := json.Marshal(analysis.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}

	query := `
		INSERT INTO video_retention_analysis
			(video_id, title, duration_seconds, average_retention, drop_points, peak_points, recommendations, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (video_id) DO UPDATE SET
			average_retention = EXCLUDED.average_retention,
			drop_points = EXCLUDED.drop_points,
			peak_points = EXCLUDED.peak_points,
			recommendations = EXCLUDED.recommendations,
			analyzed_at = EXCLUDED.analyzed_at
	`

	_, err = r.db.ExecContext(ctx, query,
		analysis.VideoID, analysis.Title, analysis.DurationSeconds, analysis.AverageRetention,
		dropsJSON, peaksJSON, recsJSON, analysis.AnalyzedAt)
	if err != nil {
		return errors.NewStoreError("upsert failed", "video_retention_analysis", "upsert", err)
	}
	return nil
}

// ListRecentVideos returns videos published inside the lookback window,
// used by the retention analysis pass.
func (r *VideoRepository) ListRecentVideos(ctx context.Context, since time.Time) ([]*domain.TrackedVideo, error) {
	query := `
		SELECT video_id, title, channel_id, published_at
		FROM videos
		WHERE published_at >= $1
		ORDER BY published_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, errors.NewStoreError("query failed", "videos", "select_recent", err)
	}
	defer rows.Close()

	var videos []*domain.TrackedVideo
	for rows.Next() {
		var (
			videoID     string
			title       string
			channelID   sql.NullString
			publishedAt time.Time
		)
		if err := rows.Scan(&videoID, &title, &channelID, &publishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video row: %w", err)
		}
		videos = append(videos, &domain.TrackedVideo{
			VideoID:       videoID,
			TitleOriginal: title,
			ChannelID:     channelID.String,
			PublishedAt:   publishedAt,
		})
	}

	return videos, rows.Err()
}
