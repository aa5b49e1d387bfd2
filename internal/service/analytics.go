package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
	"github.com/kapu/youtube-growth-monitor/internal/util"
	"github.com/kapu/youtube-growth-monitor/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	youtubeanalytics "google.golang.org/api/youtubeanalytics/v2"
)

const analyticsReadonlyScope = "https://www.googleapis.com/auth/yt-analytics.readonly"

// AnalyticsService queries the YouTube Analytics API for the owner channel.
// Authenticates with a long-lived refresh token; the oauth2 token source
// refreshes access tokens transparently. The Analytics API has its own
// 50k/day quota separate from the Data API.
type AnalyticsService struct {
	service *youtubeanalytics.Service
	breaker *util.CircuitBreaker
	logger  *zap.Logger
}

func NewAnalyticsService(ctx context.Context, clientID, clientSecret, refreshToken string, logger *zap.Logger) (*AnalyticsService, error) {
	if clientID == "" || clientSecret == "" || refreshToken == "" {
		return nil, fmt.Errorf("analytics OAuth credentials are required")
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{analyticsReadonlyScope},
	}
	tokenSource := config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	service, err := youtubeanalytics.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %w", err)
	}

	as := &AnalyticsService{
		service: service,
		breaker: util.NewCircuitBreaker(5, 2*time.Minute, 30*time.Second, nil, logger),
		logger:  logger,
	}

	logger.Info("YouTube Analytics service initialized")
	return as, nil
}

// GetVideoAnalytics runs the general-metrics and traffic-source queries for
// one video over its whole lifetime. A missing traffic breakdown is not an
// error: young videos often have no rows yet.
func (as *AnalyticsService) GetVideoAnalytics(ctx context.Context, videoID string, publishedAt time.Time, now time.Time) (*domain.VideoAnalytics, error) {
	if !as.breaker.CanExecute() {
		return nil, errors.NewAPIError("Circuit breaker open", 503, map[string]any{
			"service":  "youtube-analytics",
			"video_id": videoID,
			"state":    as.breaker.GetState(),
		})
	}

	startDate := util.FormatDate(publishedAt)
	endDate := util.FormatDate(now)

	response, err := as.service.Reports.Query().
		Ids("channel==MINE").
		StartDate(startDate).
		EndDate(endDate).
		Metrics("views,estimatedMinutesWatched,averageViewDuration,averageViewPercentage,subscribersGained,cardImpressions,cardClickRate").
		Dimensions("video").
		Filters(fmt.Sprintf("video==%s", videoID)).
		Context(ctx).Do()
	if err != nil {
		as.breaker.RecordFailure(0)
		return nil, fmt.Errorf("analytics query failed for %s: %w", videoID, err)
	}
	as.breaker.RecordSuccess()

	analytics := &domain.VideoAnalytics{
		TrafficSources: make(map[string]domain.TrafficShare),
	}

	if len(response.Rows) > 0 {
		row := response.Rows[0]
		analytics.Views = cellInt(row, 1)
		analytics.AvgViewDuration = cellFloat(row, 3)
		analytics.Retention = cellFloat(row, 4)
		analytics.Impressions = cellInt(row, 6)
		analytics.CTR = cellFloat(row, 7)
	}

	if err := as.fillTrafficSources(ctx, videoID, startDate, endDate, analytics); err != nil {
		// Breakdown is advisory; keep going with what we have.
		as.logger.Warn("Traffic source query failed",
			zap.String("videoId", videoID),
			zap.Error(err))
	}

	as.logger.Debug("Analytics fetched",
		zap.String("videoId", videoID),
		zap.Any("impressions", analytics.Impressions),
		zap.Any("ctr", analytics.CTR),
		zap.Any("retention", analytics.Retention),
		zap.String("topSource", analytics.TopTrafficSource()))

	return analytics, nil
}

func (as *AnalyticsService) fillTrafficSources(ctx context.Context, videoID, startDate, endDate string, analytics *domain.VideoAnalytics) error {
	response, err := as.service.Reports.Query().
		Ids("channel==MINE").
		StartDate(startDate).
		EndDate(endDate).
		Metrics("views,estimatedMinutesWatched").
		Dimensions("insightTrafficSourceType").
		Filters(fmt.Sprintf("video==%s", videoID)).
		Sort("-views").
		Context(ctx).Do()
	if err != nil {
		return err
	}

	var totalViews int64
	for _, row := range response.Rows {
		if v := cellInt(row, 1); v != nil {
			totalViews += *v
		}
	}
	if totalViews == 0 {
		return nil
	}

	for _, row := range response.Rows {
		source, ok := row[0].(string)
		if !ok {
			continue
		}
		views := cellInt(row, 1)
		if views == nil {
			continue
		}
		analytics.TrafficSources[source] = domain.TrafficShare{
			Views:      *views,
			Percentage: float64(*views) / float64(totalViews) * 100,
		}
	}

	return nil
}

// GetRetentionCurve returns the audience retention samples for one video.
func (as *AnalyticsService) GetRetentionCurve(ctx context.Context, videoID string, publishedAt time.Time, now time.Time) ([]domain.RetentionPoint, error) {
	if !as.breaker.CanExecute() {
		return nil, errors.NewAPIError("Circuit breaker open", 503, map[string]any{
			"service":  "youtube-analytics",
			"video_id": videoID,
			"state":    as.breaker.GetState(),
		})
	}

	response, err := as.service.Reports.Query().
		Ids("channel==MINE").
		StartDate(util.FormatDate(publishedAt)).
		EndDate(util.FormatDate(now)).
		Metrics("audienceWatchRatio").
		Dimensions("elapsedVideoTimeRatio").
		Filters(fmt.Sprintf("video==%s", videoID)).
		Sort("elapsedVideoTimeRatio").
		Context(ctx).Do()
	if err != nil {
		as.breaker.RecordFailure(0)
		return nil, fmt.Errorf("retention query failed for %s: %w", videoID, err)
	}
	as.breaker.RecordSuccess()

	points := make([]domain.RetentionPoint, 0, len(response.Rows))
	for _, row := range response.Rows {
		elapsed := cellFloat(row, 0)
		watch := cellFloat(row, 1)
		if elapsed == nil || watch == nil {
			continue
		}
		points = append(points, domain.RetentionPoint{
			ElapsedRatio: *elapsed,
			WatchRatio:   *watch,
		})
	}

	return points, nil
}

// Analytics rows arrive as untyped JSON cells; numeric cells decode as
// float64, the video dimension as string.
func cellFloat(row []interface{}, idx int) *float64 {
	if idx >= len(row) {
		return nil
	}
	if v, ok := row[idx].(float64); ok {
		return &v
	}
	return nil
}

func cellInt(row []interface{}, idx int) *int64 {
	f := cellFloat(row, idx)
	if f == nil {
		return nil
	}
	v := int64(*f)
	return &v
}
