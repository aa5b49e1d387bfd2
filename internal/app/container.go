package app

import (
	"context"
	"fmt"

	"github.com/kapu/youtube-growth-monitor/internal/config"
	"github.com/kapu/youtube-growth-monitor/internal/service"
	"github.com/kapu/youtube-growth-monitor/internal/service/cache"
	"github.com/kapu/youtube-growth-monitor/internal/service/database"
	"go.uber.org/zap"
)

// Container bundles the assembled services the commands run against.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Monitor   *service.Monitor
	Retention *service.RetentionRunner
	Titles    *service.TitleGenerator
	YouTube   *service.YouTubeService

	closers []func()
}

// Close releases infrastructure handles in reverse construction order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles all infrastructure services. Heavy-weight initialization
// (DB, cache, API clients) happens here so the commands stay thin.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	videoRepo := service.NewVideoRepository(postgresSvc, logger)
	prefRepo := service.NewPreferenceRepository(postgresSvc, logger)

	youtubeSvc, err := service.NewYouTubeService(ctx, cfg.YouTube.APIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	analyticsSvc, err := service.NewAnalyticsService(ctx,
		cfg.Analytics.ClientID, cfg.Analytics.ClientSecret, cfg.Analytics.RefreshToken, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %w", err)
	}

	modelManager, err := service.NewModelManager(ctx, service.ModelManagerConfig{
		GeminiAPIKey:   cfg.Gemini.APIKey,
		OpenAIAPIKey:   cfg.OpenAI.APIKey,
		GeminiModel:    cfg.Gemini.Model,
		OpenAIModel:    cfg.OpenAI.Model,
		EnableFallback: cfg.OpenAI.EnableFallback,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}

	titleGen := service.NewTitleGenerator(modelManager, logger)
	resolver := service.NewProfileResolver(cfg.Monitor.ChannelProfiles, cfg.Monitor.DefaultProfile)

	mailer := service.NewMailer(service.MailerConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		User:      cfg.SMTP.User,
		Password:  cfg.SMTP.Password,
		Recipient: cfg.Notification.Recipient,
	}, logger)

	monitor := service.NewMonitor(videoRepo, prefRepo, youtubeSvc, analyticsSvc,
		titleGen, resolver, mailer, cacheSvc, logger)
	retention := service.NewRetentionRunner(videoRepo, youtubeSvc, analyticsSvc, logger)

	logger.Info("Service container ready")

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Monitor:   monitor,
		Retention: retention,
		Titles:    titleGen,
		YouTube:   youtubeSvc,
		closers:   closers,
	}, nil
}
