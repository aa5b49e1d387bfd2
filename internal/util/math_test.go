package util

import (
	"testing"
	"time"
)

func TestViewsPerHour(t *testing.T) {
	tests := []struct {
		views int64
		hours float64
		want  int64
	}{
		{0, 0, 0},
		{100, 0, 0},
		{100, -1, 0},
		{100, 4, 25},
		{150, 4, 37},
		{1, 24, 0},
	}

	for _, tt := range tests {
		if got := ViewsPerHour(tt.views, tt.hours); got != tt.want {
			t.Errorf("ViewsPerHour(%d, %v) = %d, want %d", tt.views, tt.hours, got, tt.want)
		}
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.24, 1.2},
		{1.25, 1.3},
		{-1.25, -1.3},
		{72.04, 72.0},
	}

	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHoursSince(t *testing.T) {
	published := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	now := published.Add(26*time.Hour + 30*time.Minute)
	if got := HoursSince(published, now); got != 26.5 {
		t.Errorf("HoursSince = %v, want 26.5", got)
	}
}
