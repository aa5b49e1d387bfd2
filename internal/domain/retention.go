package domain

import "time"

// RetentionPoint is one sample of the audience retention curve: how much of
// the audience is still watching at a fraction of the video's duration.
type RetentionPoint struct {
	ElapsedRatio float64 `json:"elapsed_ratio"`
	WatchRatio   float64 `json:"watch_ratio"`
}

// DropPoint marks a steep retention fall inside a short window.
type DropPoint struct {
	StartSeconds int     `json:"start_seconds"`
	EndSeconds   int     `json:"end_seconds"`
	DropPercent  float64 `json:"drop_percent"`
}

// PeakPoint marks a retention rise (rewatch or hook moment).
type PeakPoint struct {
	AtSeconds   int     `json:"at_seconds"`
	RisePercent float64 `json:"rise_percent"`
}

// RetentionAnalysis is one row of the video_retention_analysis table.
type RetentionAnalysis struct {
	VideoID          string
	Title            string
	DurationSeconds  int
	AverageRetention float64
	DropPoints       []DropPoint
	PeakPoints       []PeakPoint
	Recommendations  []string
	AnalyzedAt       time.Time
}
