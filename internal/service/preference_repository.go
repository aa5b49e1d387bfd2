package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
	"github.com/kapu/youtube-growth-monitor/internal/service/database"
	"github.com/kapu/youtube-growth-monitor/pkg/errors"
	"go.uber.org/zap"
)

// PreferenceRepository appends learning signals to user_preferences.
// Rows are append-only; the downstream trainer dedupes by video and
// checkpoint.
type PreferenceRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPreferenceRepository(postgres *database.PostgresService, logger *zap.Logger) *PreferenceRepository {
	return &PreferenceRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *PreferenceRepository) SaveSignal(ctx context.Context, signal *domain.LearningSignal) error {
	metadata := map[string]any{
		"video_id":       signal.VideoID,
		"published_at":   signal.PublishedAt,
		"checkpoint":     signal.Checkpoint,
		"vph":            signal.VPH,
		"views":          signal.Views,
		"problem_source": string(signal.ProblemSource),
	}
	if signal.CTR != nil {
		metadata["ctr"] = *signal.CTR
	}
	if signal.Retention != nil {
		metadata["retention"] = *signal.Retention
	}
	if len(signal.TrafficSources) > 0 {
		metadata["traffic_sources"] = signal.TrafficSources
	}
	if signal.SuccessPattern != "" {
		metadata["success_pattern"] = string(signal.SuccessPattern)
	}
	if signal.Evolution != nil {
		metadata["evolution"] = signal.Evolution
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode signal metadata: %w", err)
	}

	query := `
		INSERT INTO user_preferences (content_type, original_content, action, reason, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.ExecContext(ctx, query,
		signal.ContentType, signal.OriginalContent, string(signal.Action), signal.Reason,
		metadataJSON, signal.CreatedAt)
	if err != nil {
		return errors.NewStoreError("insert failed", "user_preferences", "insert", err)
	}

	r.logger.Info("Learning signal saved",
		zap.String("videoId", signal.VideoID),
		zap.String("action", string(signal.Action)),
		zap.String("checkpoint", signal.Checkpoint))
	return nil
}
