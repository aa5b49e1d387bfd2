package service

import (
	"testing"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

func testVideo() *domain.TrackedVideo {
	return &domain.TrackedVideo{
		VideoID:       "vid123",
		TitleOriginal: "Cómo reparar Windows 11 sin formatear",
		PublishedAt:   time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
		Profile:       domain.ProfileTech,
	}
}

func trafficTopped(source string) map[string]domain.TrafficShare {
	return map[string]domain.TrafficShare{
		source:    {Views: 80, Percentage: 80},
		"EXTERNAL": {Views: 20, Percentage: 20},
	}
}

func TestBuildLearningSignalSkipRules(t *testing.T) {
	now := time.Now()

	t.Run("low ctr with high retention is not the title's fault", func(t *testing.T) {
		analytics := &domain.VideoAnalytics{CTR: f64(3.0), Retention: f64(45)}
		if sig := BuildLearningSignal(testVideo(), analytics, 50, 500, "checkpoint_24h", now); sig != nil {
			t.Errorf("expected nil signal, got action %s reason %s", sig.Action, sig.Reason)
		}
	})

	t.Run("browse-dominated traffic clears the title", func(t *testing.T) {
		analytics := &domain.VideoAnalytics{
			CTR:            f64(3.0),
			Retention:      f64(35),
			TrafficSources: trafficTopped(domain.TrafficBrowse),
		}
		if sig := BuildLearningSignal(testVideo(), analytics, 50, 500, "checkpoint_24h", now); sig != nil {
			t.Errorf("expected nil signal for browse traffic, got %s", sig.Reason)
		}
	})

	t.Run("low ctr without retention data teaches nothing", func(t *testing.T) {
		analytics := &domain.VideoAnalytics{CTR: f64(3.0)}
		if sig := BuildLearningSignal(testVideo(), analytics, 50, 500, "checkpoint_24h", now); sig != nil {
			t.Errorf("expected nil signal without attribution, got %s", sig.Reason)
		}
	})

	t.Run("neutral zone emits nothing", func(t *testing.T) {
		if sig := BuildLearningSignal(testVideo(), nil, 50, 500, "checkpoint_24h", now); sig != nil {
			t.Errorf("expected nil signal for vph 50 without ctr, got %s", sig.Reason)
		}
	})
}

func TestBuildLearningSignalRejections(t *testing.T) {
	now := time.Now()

	t.Run("search traffic blames the title", func(t *testing.T) {
		analytics := &domain.VideoAnalytics{
			CTR:            f64(3.2),
			Retention:      f64(35),
			TrafficSources: trafficTopped(domain.TrafficSearch),
		}
		sig := BuildLearningSignal(testVideo(), analytics, 50, 500, "checkpoint_24h", now)
		if sig == nil {
			t.Fatal("expected a rejection signal")
		}
		if sig.Action != domain.ActionRejected {
			t.Errorf("action = %s, want rejected", sig.Action)
		}
		if sig.Reason != "ctr_bajo_3.2%_problema_titulo" {
			t.Errorf("reason = %q", sig.Reason)
		}
		if sig.ProblemSource != domain.ProblemTitle {
			t.Errorf("problem source = %s, want title", sig.ProblemSource)
		}
	})

	t.Run("search traffic with very low retention blames both", func(t *testing.T) {
		analytics := &domain.VideoAnalytics{
			CTR:            f64(2.5),
			Retention:      f64(25),
			TrafficSources: trafficTopped(domain.TrafficSearch),
		}
		sig := BuildLearningSignal(testVideo(), analytics, 50, 500, "checkpoint_24h", now)
		if sig == nil {
			t.Fatal("expected a rejection signal")
		}
		if sig.Reason != "ctr_bajo_2.5%_problema_titulo_y_miniatura" {
			t.Errorf("reason = %q", sig.Reason)
		}
		if sig.ProblemSource != domain.ProblemBoth {
			t.Errorf("problem source = %s, want both", sig.ProblemSource)
		}
	})

	t.Run("very low vph rejects", func(t *testing.T) {
		sig := BuildLearningSignal(testVideo(), nil, 10, 100, "checkpoint_24h", now)
		if sig == nil {
			t.Fatal("expected a rejection signal")
		}
		if sig.Action != domain.ActionRejected || sig.Reason != "vph_bajo_10" {
			t.Errorf("got action %s reason %q", sig.Action, sig.Reason)
		}
		if sig.ProblemSource != domain.ProblemTitle {
			t.Errorf("problem source = %s, want title", sig.ProblemSource)
		}
	})
}

func TestBuildLearningSignalApprovals(t *testing.T) {
	now := time.Now()

	t.Run("excellent ctr", func(t *testing.T) {
		analytics := &domain.VideoAnalytics{CTR: f64(9.0)}
		sig := BuildLearningSignal(testVideo(), analytics, 50, 500, "checkpoint_24h", now)
		if sig == nil {
			t.Fatal("expected an approval signal")
		}
		if sig.Action != domain.ActionApproved || sig.Reason != "ctr_excelente_9.0%" {
			t.Errorf("got action %s reason %q", sig.Action, sig.Reason)
		}
		if sig.SuccessPattern != domain.PatternImmediate {
			t.Errorf("pattern = %s, want immediate", sig.SuccessPattern)
		}
		if sig.ContentType != "titulo" {
			t.Errorf("content type = %q, want titulo", sig.ContentType)
		}
	})

	t.Run("good ctr", func(t *testing.T) {
		analytics := &domain.VideoAnalytics{CTR: f64(6.0)}
		sig := BuildLearningSignal(testVideo(), analytics, 50, 500, "checkpoint_48h", now)
		if sig == nil || sig.Reason != "ctr_bueno_6.0%" {
			t.Fatalf("expected ctr_bueno signal, got %+v", sig)
		}
	})

	t.Run("high vph without ctr data", func(t *testing.T) {
		sig := BuildLearningSignal(testVideo(), nil, 150, 2000, "checkpoint_24h", now)
		if sig == nil || sig.Reason != "vph_alto_150" {
			t.Fatalf("expected vph_alto signal, got %+v", sig)
		}
	})
}

func TestBuildLearningSignalDelayedExplosion(t *testing.T) {
	now := time.Now()

	video := testVideo()
	video.Metrics = domain.MetricsHistory{
		"checkpoint_72h": domain.MetricsSnapshot{CTR: f64(4.0), VPH: 12},
	}

	t.Run("ctr growth beats the plain bands", func(t *testing.T) {
		analytics := &domain.VideoAnalytics{CTR: f64(6.5)}
		sig := BuildLearningSignal(video, analytics, 20, 5000, "checkpoint_7d", now)
		if sig == nil {
			t.Fatal("expected a delayed-explosion signal")
		}
		if sig.Action != domain.ActionApproved {
			t.Errorf("action = %s, want approved", sig.Action)
		}
		if sig.Reason != "delayed_explosion_ctr_6.5%_from_4.0%_checkpoint_7d" {
			t.Errorf("reason = %q", sig.Reason)
		}
		if sig.SuccessPattern != domain.PatternDelayedExplosion {
			t.Errorf("pattern = %s, want delayed_explosion", sig.SuccessPattern)
		}
		if sig.Evolution == nil {
			t.Fatal("expected evolution metrics on an extended checkpoint")
		}
		if sig.Evolution.GrowthPercentageCTR == nil {
			t.Fatal("expected ctr growth percentage")
		}
		if got := *sig.Evolution.GrowthPercentageCTR; got < 62.4 || got > 62.6 {
			t.Errorf("ctr growth = %.2f, want 62.5", got)
		}
	})

	t.Run("vph growth when ctr missing", func(t *testing.T) {
		sig := BuildLearningSignal(video, nil, 30, 5000, "checkpoint_15d", now)
		if sig == nil {
			t.Fatal("expected a delayed-explosion signal")
		}
		if sig.Reason != "delayed_explosion_vph_30_from_12_checkpoint_15d" {
			t.Errorf("reason = %q", sig.Reason)
		}
	})

	t.Run("zero baseline ctr disables the rule", func(t *testing.T) {
		dead := testVideo()
		dead.Metrics = domain.MetricsHistory{
			"checkpoint_72h": domain.MetricsSnapshot{CTR: f64(0)},
		}
		analytics := &domain.VideoAnalytics{CTR: f64(0), Retention: f64(35)}
		sig := BuildLearningSignal(dead, analytics, 50, 500, "checkpoint_7d", now)
		if sig != nil && sig.SuccessPattern == domain.PatternDelayedExplosion {
			t.Fatalf("a dead video must not be labeled a sleeper hit: %+v", sig)
		}
	})

	t.Run("no baseline falls through to the plain bands", func(t *testing.T) {
		analytics := &domain.VideoAnalytics{CTR: f64(6.5)}
		sig := BuildLearningSignal(testVideo(), analytics, 20, 5000, "checkpoint_7d", now)
		if sig == nil || sig.Reason != "ctr_bueno_6.5%" {
			t.Fatalf("expected ctr_bueno signal, got %+v", sig)
		}
		if sig.SuccessPattern != domain.PatternImmediate {
			t.Errorf("pattern = %s, want immediate", sig.SuccessPattern)
		}
		if sig.Evolution == nil {
			t.Error("extended checkpoints still record evolution context")
		}
	})
}
