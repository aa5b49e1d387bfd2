package service

import (
	"strings"
	"testing"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

var retentionNow = time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)

func TestAnalyzeRetentionCurveEmpty(t *testing.T) {
	analysis := AnalyzeRetentionCurve("vid1", "Sin datos", 600, nil, retentionNow)
	if len(analysis.Recommendations) != 1 {
		t.Fatalf("expected a single placeholder recommendation, got %v", analysis.Recommendations)
	}
	if !strings.Contains(analysis.Recommendations[0], "Sin datos de retención") {
		t.Errorf("unexpected recommendation %q", analysis.Recommendations[0])
	}
	if len(analysis.DropPoints) != 0 || len(analysis.PeakPoints) != 0 {
		t.Error("expected no drop or peak points without data")
	}
}

func TestAnalyzeRetentionCurveDropsAndPeaks(t *testing.T) {
	// 600s video sampled every 2% of duration (12s steps), with a sharp
	// drop in the intro and a rewatch peak near the middle.
	points := []domain.RetentionPoint{
		{ElapsedRatio: 0.00, WatchRatio: 1.00},
		{ElapsedRatio: 0.02, WatchRatio: 0.85}, // -15 points inside 12s
		{ElapsedRatio: 0.04, WatchRatio: 0.82},
		{ElapsedRatio: 0.06, WatchRatio: 0.80},
		{ElapsedRatio: 0.08, WatchRatio: 0.78},
		{ElapsedRatio: 0.10, WatchRatio: 0.85}, // +7 point rewatch peak
		{ElapsedRatio: 0.12, WatchRatio: 0.84},
	}

	analysis := AnalyzeRetentionCurve("vid2", "Con caídas", 600, points, retentionNow)

	if len(analysis.DropPoints) != 1 {
		t.Fatalf("drop points = %d, want 1 (%+v)", len(analysis.DropPoints), analysis.DropPoints)
	}
	drop := analysis.DropPoints[0]
	if drop.StartSeconds != 0 || drop.EndSeconds != 12 {
		t.Errorf("drop window = [%d,%d], want [0,12]", drop.StartSeconds, drop.EndSeconds)
	}
	if drop.DropPercent < 14.9 || drop.DropPercent > 15.1 {
		t.Errorf("drop percent = %.1f, want 15", drop.DropPercent)
	}

	if len(analysis.PeakPoints) != 1 {
		t.Fatalf("peak points = %d, want 1 (%+v)", len(analysis.PeakPoints), analysis.PeakPoints)
	}
	if analysis.PeakPoints[0].AtSeconds != 60 {
		t.Errorf("peak at %ds, want 60", analysis.PeakPoints[0].AtSeconds)
	}

	var hookRec, peakRec bool
	for _, rec := range analysis.Recommendations {
		if strings.Contains(rec, "primeros 30 segundos") {
			hookRec = true
		}
		if strings.Contains(rec, "picos de retención") {
			peakRec = true
		}
	}
	if !hookRec {
		t.Errorf("expected an intro-hook recommendation, got %v", analysis.Recommendations)
	}
	if !peakRec {
		t.Errorf("expected a peak recommendation, got %v", analysis.Recommendations)
	}
}

func TestAnalyzeRetentionCurveExactThresholdDrop(t *testing.T) {
	// A fall of exactly 10 points inside the window counts as a drop.
	points := []domain.RetentionPoint{
		{ElapsedRatio: 0.00, WatchRatio: 0.80},
		{ElapsedRatio: 0.02, WatchRatio: 0.70},
	}

	analysis := AnalyzeRetentionCurve("vid5", "Umbral exacto", 600, points, retentionNow)

	if len(analysis.DropPoints) != 1 {
		t.Fatalf("drop points = %d, want 1 (%+v)", len(analysis.DropPoints), analysis.DropPoints)
	}
	if got := analysis.DropPoints[0].DropPercent; got < 9.9 || got > 10.1 {
		t.Errorf("drop percent = %.1f, want 10", got)
	}
}

func TestAnalyzeRetentionCurveStable(t *testing.T) {
	points := []domain.RetentionPoint{
		{ElapsedRatio: 0.0, WatchRatio: 0.70},
		{ElapsedRatio: 0.25, WatchRatio: 0.65},
		{ElapsedRatio: 0.50, WatchRatio: 0.60},
		{ElapsedRatio: 0.75, WatchRatio: 0.55},
		{ElapsedRatio: 1.00, WatchRatio: 0.50},
	}

	analysis := AnalyzeRetentionCurve("vid3", "Estable", 600, points, retentionNow)

	if len(analysis.DropPoints) != 0 {
		t.Errorf("expected organic decay to produce no drop points, got %+v", analysis.DropPoints)
	}
	if analysis.AverageRetention < 59.9 || analysis.AverageRetention > 60.1 {
		t.Errorf("average retention = %.1f, want 60", analysis.AverageRetention)
	}
	if len(analysis.Recommendations) != 1 || !strings.Contains(analysis.Recommendations[0], "estable") {
		t.Errorf("expected the stable-curve recommendation, got %v", analysis.Recommendations)
	}
}

func TestAnalyzeRetentionCurveLowAverage(t *testing.T) {
	points := []domain.RetentionPoint{
		{ElapsedRatio: 0.0, WatchRatio: 0.40},
		{ElapsedRatio: 0.5, WatchRatio: 0.30},
		{ElapsedRatio: 1.0, WatchRatio: 0.20},
	}

	analysis := AnalyzeRetentionCurve("vid4", "Bajo promedio", 600, points, retentionNow)

	var found bool
	for _, rec := range analysis.Recommendations {
		if strings.Contains(rec, "por debajo del 35%") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a low-average recommendation at %.1f%%, got %v", analysis.AverageRetention, analysis.Recommendations)
	}
}
