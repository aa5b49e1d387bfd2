package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Run("parses the configured level", func(t *testing.T) {
		logger, err := NewLogger("debug", "")
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("debug logger should enable debug level")
		}
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger, err := NewLogger("loud", "")
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		if logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("fallback logger should not enable debug level")
		}
		if !logger.Core().Enabled(zapcore.InfoLevel) {
			t.Error("fallback logger should enable info level")
		}
	})
}

func TestNewLoggerAppendsToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "monitor.log")

	logger, err := NewLogger("info", logFile)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("primera corrida")
	logger.Sync()

	logger, err = NewLogger("info", logFile)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("segunda corrida")
	logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "primera corrida") || !strings.Contains(out, "segunda corrida") {
		t.Errorf("log file should keep both runs, got:\n%s", out)
	}
	if !strings.Contains(out, " | ") {
		t.Errorf("log lines should use the console separator, got:\n%s", out)
	}
}
