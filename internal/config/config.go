package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kapu/youtube-growth-monitor/pkg/errors"
)

type Config struct {
	Database     DatabaseConfig
	Redis        RedisConfig
	YouTube      YouTubeConfig
	Analytics    AnalyticsConfig
	Gemini       GeminiConfig
	OpenAI       OpenAIConfig
	SMTP         SMTPConfig
	Notification NotificationConfig
	Monitor      MonitorConfig
	Logging      LoggingConfig
}

// DatabaseConfig points at the hosted Supabase Postgres instance.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type YouTubeConfig struct {
	APIKey    string
	ChannelID string
}

// AnalyticsConfig holds the OAuth credentials for the YouTube Analytics API.
// The refresh token is exchanged on demand; no interactive flow is needed.
type AnalyticsConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey         string
	Model          string
	EnableFallback bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type NotificationConfig struct {
	Recipient string
}

type MonitorConfig struct {
	Interval       time.Duration
	DefaultProfile string
	// ChannelProfiles maps explicit channel IDs to profile names
	// (CHANNEL_PROFILE_MAP="UCxxx=tech,UCyyy=growth").
	ChannelProfiles map[string]string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("SUPABASE_DB_HOST", ""),
			Port:     getEnvInt("SUPABASE_DB_PORT", 5432),
			User:     getEnv("SUPABASE_DB_USER", "postgres"),
			Password: getEnv("SUPABASE_DB_PASSWORD", ""),
			Database: getEnv("SUPABASE_DB_NAME", "postgres"),
			SSLMode:  getEnv("SUPABASE_DB_SSLMODE", "require"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		YouTube: YouTubeConfig{
			APIKey:    getEnv("YOUTUBE_API_KEY", ""),
			ChannelID: getEnv("CHANNEL_ID", ""),
		},
		Analytics: AnalyticsConfig{
			ClientID:     getEnv("YT_CLIENT_ID", ""),
			ClientSecret: getEnv("YT_CLIENT_SECRET", ""),
			RefreshToken: getEnv("YT_REFRESH_TOKEN", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			Model:          getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", true),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
		Notification: NotificationConfig{
			Recipient: getEnv("NOTIFICATION_EMAIL", ""),
		},
		Monitor: MonitorConfig{
			Interval:        time.Duration(getEnvInt("MONITOR_INTERVAL_MINUTES", 60)) * time.Minute,
			DefaultProfile:  getEnv("DEFAULT_CHANNEL_PROFILE", "tech"),
			ChannelProfiles: parseKeyValueList(getEnv("CHANNEL_PROFILE_MAP", "")),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.NewValidationError("SUPABASE_DB_HOST is required", "SUPABASE_DB_HOST", nil)
	}
	if c.Database.Password == "" {
		return errors.NewValidationError("SUPABASE_DB_PASSWORD is required", "SUPABASE_DB_PASSWORD", nil)
	}
	if c.Analytics.ClientID == "" || c.Analytics.ClientSecret == "" {
		return errors.NewValidationError("YT_CLIENT_ID and YT_CLIENT_SECRET are required", "YT_CLIENT_ID", nil)
	}
	if c.Analytics.RefreshToken == "" {
		return errors.NewValidationError("YT_REFRESH_TOKEN is required", "YT_REFRESH_TOKEN", nil)
	}
	if c.Gemini.APIKey == "" {
		return errors.NewValidationError("GEMINI_API_KEY is required", "GEMINI_API_KEY", nil)
	}
	if c.SMTP.Host == "" || c.SMTP.User == "" {
		return errors.NewValidationError("SMTP_HOST and SMTP_USER are required", "SMTP_HOST", nil)
	}
	if c.Notification.Recipient == "" {
		return errors.NewValidationError("NOTIFICATION_EMAIL is required", "NOTIFICATION_EMAIL", nil)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func parseKeyValueList(value string) map[string]string {
	result := make(map[string]string)
	if value == "" {
		return result
	}
	for _, part := range strings.Split(value, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) == 2 && kv[0] != "" && kv[1] != "" {
			result[kv[0]] = kv[1]
		}
	}
	return result
}
