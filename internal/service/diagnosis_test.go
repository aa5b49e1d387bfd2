package service

import (
	"testing"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestCheckVideoHealthUniversalWindows(t *testing.T) {
	cfg := domain.GetProfileConfig(domain.ProfileGrowth)

	t.Run("silence window before min hours", func(t *testing.T) {
		m := HealthMetrics{Views: 10, VPH: 1, CTR: f64(0.5), Retention: f64(5)}
		result := CheckVideoHealth(m, 1.5, domain.ProfileGrowth, cfg)
		if result.Status != domain.HealthWaitingIndexing {
			t.Errorf("expected WAITING_INDEXING, got %s", result.Status)
		}
		if result.Priority != domain.PriorityInfo {
			t.Errorf("expected INFO priority, got %s", result.Priority)
		}
	})

	t.Run("archive past limit", func(t *testing.T) {
		m := HealthMetrics{Views: 50000, VPH: 500, CTR: f64(12)}
		result := CheckVideoHealth(m, 25, domain.ProfileGrowth, cfg)
		if result.Status != domain.HealthArchived {
			t.Errorf("expected ARCHIVED even with strong metrics, got %s", result.Status)
		}
	})
}

func TestCheckTechHealth(t *testing.T) {
	cfg := domain.GetProfileConfig(domain.ProfileTech)

	tests := []struct {
		name     string
		metrics  HealthMetrics
		hours    float64
		status   domain.HealthStatus
		priority domain.Priority
	}{
		{
			name:     "healthy seo drip",
			metrics:  HealthMetrics{Views: 120, VPH: 6, CTR: f64(4.0)},
			hours:    20,
			status:   domain.HealthHealthySEODrip,
			priority: domain.PrioritySuccess,
		},
		{
			name:     "stagnant with low ctr",
			metrics:  HealthMetrics{Views: 10, VPH: 1, CTR: f64(2.0)},
			hours:    30,
			status:   domain.HealthAlertStagnant,
			priority: domain.PriorityMedium,
		},
		{
			name:     "low ctr but acceptable velocity",
			metrics:  HealthMetrics{Views: 60, VPH: 3, CTR: f64(2.0)},
			hours:    30,
			status:   domain.HealthAlertLowCTRSEO,
			priority: domain.PriorityMedium,
		},
		{
			name:     "low retention",
			metrics:  HealthMetrics{Views: 60, VPH: 3, CTR: f64(4.5), Retention: f64(20)},
			hours:    30,
			status:   domain.HealthAlertLowRetention,
			priority: domain.PriorityMedium,
		},
		{
			name:     "monitoring when nothing fires",
			metrics:  HealthMetrics{Views: 60, VPH: 3, CTR: f64(4.5), Retention: f64(50)},
			hours:    30,
			status:   domain.HealthMonitoringSEO,
			priority: domain.PriorityInfo,
		},
		{
			name:     "monitoring without ctr data",
			metrics:  HealthMetrics{Views: 60, VPH: 3},
			hours:    30,
			status:   domain.HealthMonitoringSEO,
			priority: domain.PriorityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckVideoHealth(tt.metrics, tt.hours, domain.ProfileTech, cfg)
			if result.Status != tt.status {
				t.Errorf("status = %s, want %s", result.Status, tt.status)
			}
			if result.Priority != tt.priority {
				t.Errorf("priority = %s, want %s", result.Priority, tt.priority)
			}
		})
	}
}

func TestCheckGrowthHealth(t *testing.T) {
	cfg := domain.GetProfileConfig(domain.ProfileGrowth)

	tests := []struct {
		name     string
		metrics  HealthMetrics
		hours    float64
		status   domain.HealthStatus
		priority domain.Priority
	}{
		{
			name:     "viral success",
			metrics:  HealthMetrics{Views: 600, VPH: 60, CTR: f64(9)},
			hours:    10,
			status:   domain.HealthViralSuccess,
			priority: domain.PrioritySuccess,
		},
		{
			name:     "critical ctr after grace period",
			metrics:  HealthMetrics{Views: 150, VPH: 15, CTR: f64(3.5)},
			hours:    10,
			status:   domain.HealthAlertLowCTRUrgent,
			priority: domain.PriorityHigh,
		},
		{
			name:     "low ctr inside grace period falls through",
			metrics:  HealthMetrics{Views: 60, VPH: 15, CTR: f64(3.5)},
			hours:    4,
			status:   domain.HealthMonitoringViral,
			priority: domain.PriorityInfo,
		},
		{
			name:     "clickbait mismatch",
			metrics:  HealthMetrics{Views: 150, VPH: 15, CTR: f64(6), Retention: f64(25)},
			hours:    10,
			status:   domain.HealthAlertClickbaitMismatch,
			priority: domain.PriorityHigh,
		},
		{
			name:     "stagnant without ctr data",
			metrics:  HealthMetrics{Views: 50, VPH: 5},
			hours:    10,
			status:   domain.HealthAlertStagnantViral,
			priority: domain.PriorityHigh,
		},
		{
			name:     "waiting for virality",
			metrics:  HealthMetrics{Views: 150, VPH: 15, CTR: f64(6), Retention: f64(50)},
			hours:    10,
			status:   domain.HealthMonitoringViral,
			priority: domain.PriorityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckVideoHealth(tt.metrics, tt.hours, domain.ProfileGrowth, cfg)
			if result.Status != tt.status {
				t.Errorf("status = %s, want %s", result.Status, tt.status)
			}
			if result.Priority != tt.priority {
				t.Errorf("priority = %s, want %s", result.Priority, tt.priority)
			}
		})
	}
}

func TestCheckGenericHealth(t *testing.T) {
	cfg := domain.GetProfileConfig(domain.ProfileUnknown)

	tests := []struct {
		name   string
		vph    int64
		status domain.HealthStatus
	}{
		{"stable", 25, domain.HealthMonitoringOK},
		{"low performance", 5, domain.HealthAlertLowPerformance},
		{"neutral band", 15, domain.HealthMonitoringNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckVideoHealth(HealthMetrics{VPH: tt.vph}, 30, domain.ProfileUnknown, cfg)
			if result.Status != tt.status {
				t.Errorf("status = %s, want %s", result.Status, tt.status)
			}
		})
	}
}

func TestDiagnoseRootCause(t *testing.T) {
	techCfg := domain.GetProfileConfig(domain.ProfileTech)
	growthCfg := domain.GetProfileConfig(domain.ProfileGrowth)

	t.Run("fantasma wins even with healthy ctr", func(t *testing.T) {
		d := DiagnoseRootCause(i64(400), f64(9), f64(50), 100, domain.ProfileTech, techCfg)
		if d.Syndrome != domain.SyndromeFantasma {
			t.Fatalf("syndrome = %s, want FANTASMA", d.Syndrome)
		}
		if d.Culprit != domain.CulpritTitle {
			t.Errorf("culprit = %s, want TITULO", d.Culprit)
		}
		if d.ImpressionsLevel != domain.ImpressionsLow {
			t.Errorf("impressions level = %s, want Baja", d.ImpressionsLevel)
		}
	})

	t.Run("invisible on wide reach and low ctr", func(t *testing.T) {
		d := DiagnoseRootCause(i64(3000), f64(2), f64(50), 100, domain.ProfileTech, techCfg)
		if d.Syndrome != domain.SyndromeInvisible {
			t.Fatalf("syndrome = %s, want INVISIBLE", d.Syndrome)
		}
		if d.Culprit != domain.CulpritThumbnail {
			t.Errorf("culprit = %s, want MINIATURA", d.Culprit)
		}
		if d.ImpressionsLevel != domain.ImpressionsHigh {
			t.Errorf("impressions level = %s, want Alta", d.ImpressionsLevel)
		}
	})

	t.Run("clickbait on good ctr and low retention", func(t *testing.T) {
		d := DiagnoseRootCause(i64(1000), f64(5), f64(20), 100, domain.ProfileTech, techCfg)
		if d.Syndrome != domain.SyndromeClickbait {
			t.Fatalf("syndrome = %s, want CLICKBAIT", d.Syndrome)
		}
		if d.Culprit != domain.CulpritCoherence {
			t.Errorf("culprit = %s, want COHERENCIA", d.Culprit)
		}
		if d.ImpressionsLevel != domain.ImpressionsNormal {
			t.Errorf("impressions level = %s, want Normal", d.ImpressionsLevel)
		}
	})

	t.Run("success", func(t *testing.T) {
		d := DiagnoseRootCause(i64(1500), f64(6), f64(45), 100, domain.ProfileGrowth, growthCfg)
		if d.Syndrome != domain.SyndromeSuccess {
			t.Fatalf("syndrome = %s, want SUCCESS", d.Syndrome)
		}
		if d.Culprit != domain.CulpritNone {
			t.Errorf("culprit = %s, want NINGUNO", d.Culprit)
		}
	})

	t.Run("success without retention data", func(t *testing.T) {
		d := DiagnoseRootCause(i64(1500), f64(6), nil, 100, domain.ProfileGrowth, growthCfg)
		if d.Syndrome != domain.SyndromeSuccess {
			t.Fatalf("syndrome = %s, want SUCCESS", d.Syndrome)
		}
	})

	t.Run("insufficient data without ctr", func(t *testing.T) {
		d := DiagnoseRootCause(i64(1000), nil, nil, 100, domain.ProfileTech, techCfg)
		if d.Syndrome != domain.SyndromeInsufficientData {
			t.Fatalf("syndrome = %s, want INSUFFICIENT_DATA", d.Syndrome)
		}
		if d.Culprit != domain.CulpritUnknown {
			t.Errorf("culprit = %s, want DESCONOCIDO", d.Culprit)
		}
	})

	t.Run("insufficient data without impressions", func(t *testing.T) {
		d := DiagnoseRootCause(nil, f64(2), f64(50), 100, domain.ProfileTech, techCfg)
		if d.Syndrome != domain.SyndromeInsufficientData {
			t.Fatalf("syndrome = %s, want INSUFFICIENT_DATA", d.Syndrome)
		}
		if d.ImpressionsLevel != domain.ImpressionsUnknown {
			t.Errorf("impressions level = %s, want Desconocido", d.ImpressionsLevel)
		}
	})

	t.Run("growth thresholds shift the bands", func(t *testing.T) {
		// 3000 impressions is high reach for tech but below the growth
		// normal band, so growth cannot conclude INVISIBLE.
		d := DiagnoseRootCause(i64(3000), f64(2), nil, 100, domain.ProfileGrowth, growthCfg)
		if d.Syndrome != domain.SyndromeInsufficientData {
			t.Fatalf("syndrome = %s, want INSUFFICIENT_DATA", d.Syndrome)
		}
	})
}
