package domain

import "time"

// LearningAction is the binary training label emitted for the downstream
// preference learner.
type LearningAction string

const (
	ActionApproved LearningAction = "approved"
	ActionRejected LearningAction = "rejected"
)

// ProblemSource attributes a failing metric to an asset.
type ProblemSource string

const (
	ProblemTitle     ProblemSource = "title"
	ProblemThumbnail ProblemSource = "thumbnail"
	ProblemBoth      ProblemSource = "both"
	ProblemNone      ProblemSource = "none"
	ProblemUnknown   ProblemSource = "unknown"
)

// SuccessPattern distinguishes immediate winners from sleeper hits.
type SuccessPattern string

const (
	PatternImmediate        SuccessPattern = "immediate"
	PatternDelayedExplosion SuccessPattern = "delayed_explosion"
)

// EvolutionMetrics captures growth relative to the 72-hour baseline,
// recorded only on extended checkpoints.
type EvolutionMetrics struct {
	CTRDay3             *float64 `json:"ctr_day3"`
	CTRCurrent          *float64 `json:"ctr_current"`
	VPHDay3             *int64   `json:"vph_day3"`
	VPHCurrent          int64    `json:"vph_current"`
	GrowthPercentageCTR *float64 `json:"growth_percentage_ctr"`
	GrowthPercentageVPH *float64 `json:"growth_percentage_vph"`
}

// LearningSignal is one row destined for the user_preferences table.
type LearningSignal struct {
	ContentType     string
	OriginalContent string
	Action          LearningAction
	Reason          string
	ProblemSource   ProblemSource
	SuccessPattern  SuccessPattern
	VideoID         string
	PublishedAt     time.Time
	Checkpoint      string
	CTR             *float64
	Retention       *float64
	VPH             int64
	Views           int64
	TrafficSources  map[string]TrafficShare
	Evolution       *EvolutionMetrics
	CreatedAt       time.Time
}
