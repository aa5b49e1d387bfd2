package service

import (
	"testing"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

func TestCheckpointKey(t *testing.T) {
	tests := []struct {
		hours float64
		key   string
	}{
		{3, "checkpoint_3h"},
		{24, "checkpoint_24h"},
		{48, "checkpoint_48h"},
		{72, "checkpoint_72h"},
		{168, "checkpoint_7d"},
		{360, "checkpoint_15d"},
		{720, "checkpoint_30d"},
	}

	for _, tt := range tests {
		if got := CheckpointKey(tt.hours); got != tt.key {
			t.Errorf("CheckpointKey(%v) = %q, want %q", tt.hours, got, tt.key)
		}
	}
}

func TestCheckpointLabel(t *testing.T) {
	tests := []struct {
		hours float64
		label string
	}{
		{6, "6 Horas"},
		{24, "24 Horas"},
		{48, "48 Horas"},
		{72, "72h"},
		{168, "7 Días"},
		{360, "15 Días"},
		{720, "30 Días"},
	}

	for _, tt := range tests {
		if got := CheckpointLabel(tt.hours); got != tt.label {
			t.Errorf("CheckpointLabel(%v) = %q, want %q", tt.hours, got, tt.label)
		}
	}
}

func TestEvaluationSchedule(t *testing.T) {
	techCfg := domain.GetProfileConfig(domain.ProfileTech)
	growthCfg := domain.GetProfileConfig(domain.ProfileGrowth)

	t.Run("profile checkpoint tables", func(t *testing.T) {
		tech := EvaluationSchedule(techCfg, false)
		wantTech := []float64{24, 48, 168}
		if len(tech) != len(wantTech) {
			t.Fatalf("tech schedule = %v, want %v", tech, wantTech)
		}
		for i := range wantTech {
			if tech[i] != wantTech[i] {
				t.Errorf("tech schedule[%d] = %v, want %v", i, tech[i], wantTech[i])
			}
		}

		growth := EvaluationSchedule(growthCfg, false)
		wantGrowth := []float64{3, 6, 12, 24}
		if len(growth) != len(wantGrowth) {
			t.Fatalf("growth schedule = %v, want %v", growth, wantGrowth)
		}
		for i := range wantGrowth {
			if growth[i] != wantGrowth[i] {
				t.Errorf("growth schedule[%d] = %v, want %v", i, growth[i], wantGrowth[i])
			}
		}
	})

	t.Run("long-term watch deduplicates overlapping targets", func(t *testing.T) {
		// The tech schedule already contains 168h; long-term watch must
		// not add it twice.
		got := EvaluationSchedule(techCfg, true)
		want := []float64{24, 48, 168, 360, 720}
		if len(got) != len(want) {
			t.Fatalf("schedule = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("schedule[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})
}

func TestSelectDueCheckpoint(t *testing.T) {
	targets := []float64{24, 48, 72, 168}

	t.Run("inside narrow window below 48h", func(t *testing.T) {
		cp, notified := SelectDueCheckpoint(24.4, targets, nil)
		if cp == nil {
			t.Fatal("expected a due checkpoint")
		}
		if cp.Key != "checkpoint_24h" {
			t.Errorf("key = %q, want checkpoint_24h", cp.Key)
		}
		if notified {
			t.Error("expected notified=false for an empty set")
		}
	})

	t.Run("outside narrow window below 48h", func(t *testing.T) {
		if cp, _ := SelectDueCheckpoint(24.6, targets, nil); cp != nil {
			t.Errorf("expected no checkpoint at 24.6h, got %q", cp.Key)
		}
	})

	t.Run("wide window at 48h and above", func(t *testing.T) {
		cp, _ := SelectDueCheckpoint(73.9, targets, nil)
		if cp == nil || cp.Key != "checkpoint_72h" {
			t.Fatalf("expected checkpoint_72h at 73.9h, got %+v", cp)
		}
		if cp, _ := SelectDueCheckpoint(74.1, targets, nil); cp != nil {
			t.Errorf("expected no checkpoint at 74.1h, got %q", cp.Key)
		}
	})

	t.Run("extended day targets", func(t *testing.T) {
		cp, _ := SelectDueCheckpoint(169.5, []float64{24, 48, 72, 168, 360, 720}, nil)
		if cp == nil || cp.Key != "checkpoint_7d" {
			t.Fatalf("expected checkpoint_7d at 169.5h, got %+v", cp)
		}
		if cp.Label != "7 Días" {
			t.Errorf("label = %q, want 7 Días", cp.Label)
		}
	})

	t.Run("already notified", func(t *testing.T) {
		notifiedSet := domain.NotifiedSet{}.Mark("checkpoint_48h", time.Now())
		cp, notified := SelectDueCheckpoint(48.5, targets, notifiedSet)
		if cp == nil || cp.Key != "checkpoint_48h" {
			t.Fatalf("expected checkpoint_48h, got %+v", cp)
		}
		if !notified {
			t.Error("expected notified=true for a marked checkpoint")
		}
	})

	t.Run("nothing due between windows", func(t *testing.T) {
		if cp, _ := SelectDueCheckpoint(36, targets, nil); cp != nil {
			t.Errorf("expected no checkpoint at 36h, got %q", cp.Key)
		}
	})
}

func TestIsExtendedCheckpoint(t *testing.T) {
	for _, key := range []string{"checkpoint_7d", "checkpoint_15d", "checkpoint_30d"} {
		if !IsExtendedCheckpoint(key) {
			t.Errorf("expected %q to be extended", key)
		}
	}
	for _, key := range []string{"checkpoint_24h", "checkpoint_72h", ""} {
		if IsExtendedCheckpoint(key) {
			t.Errorf("expected %q not to be extended", key)
		}
	}
}
