package domain

import "time"

// MonitoringStatus is the lifecycle state of a tracked video.
type MonitoringStatus string

const (
	StatusMonitoring MonitoringStatus = "monitoring"
	StatusCompleted  MonitoringStatus = "completed"
)

// MetricsSnapshot is a point-in-time reading at a checkpoint. Immutable once
// recorded; keyed by checkpoint name inside the video's metrics history.
// CTR, retention and impressions come from the Analytics API and may be
// unavailable early in a video's life.
type MetricsSnapshot struct {
	Timestamp   time.Time `json:"timestamp"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Comments    int64     `json:"comments"`
	VPH         int64     `json:"vph"`
	CTR         *float64  `json:"ctr"`
	Retention   *float64  `json:"retention"`
	Impressions *int64    `json:"impressions"`
	HoursSince  float64   `json:"hours_since"`
}

// MetricsHistory maps checkpoint name to its snapshot. Merging a new
// checkpoint never discards prior checkpoints.
type MetricsHistory map[string]MetricsSnapshot

// Merge records a snapshot under its checkpoint key.
func (h MetricsHistory) Merge(checkpoint string, snapshot MetricsSnapshot) MetricsHistory {
	if h == nil {
		h = make(MetricsHistory)
	}
	h[checkpoint] = snapshot
	return h
}

// NotifiedSet tracks which checkpoints have already been evaluated for a
// video (at-most-once evaluation per checkpoint).
type NotifiedSet map[string]time.Time

// Contains reports whether a checkpoint was already notified.
func (n NotifiedSet) Contains(checkpoint string) bool {
	_, ok := n[checkpoint]
	return ok
}

// Mark records a checkpoint as notified.
func (n NotifiedSet) Mark(checkpoint string, at time.Time) NotifiedSet {
	if n == nil {
		n = make(NotifiedSet)
	}
	n[checkpoint] = at
	return n
}

// TrackedVideo is one row of the video_monitoring table.
type TrackedVideo struct {
	VideoID           string
	TitleOriginal     string
	ChannelID         string
	PublishedAt       time.Time
	Status            MonitoringStatus
	Profile           ChannelProfile
	Metrics           MetricsHistory
	NotificationsSent NotifiedSet
	LongTermWatch     bool
	LongTermReason    string
}

// VideoCounts are the public counters from the videos table (Data API).
type VideoCounts struct {
	Views    int64
	Likes    int64
	Comments int64
}

// Traffic source categories reported by the Analytics API. Search traffic
// implicates the title, browse/suggested traffic implicates the thumbnail.
const (
	TrafficSearch         = "YT_SEARCH"
	TrafficBrowse         = "BROWSE"
	TrafficBrowseFeatures = "BROWSE_FEATURES"
	TrafficRelatedVideo   = "RELATED_VIDEO"
)

// TrafficShare is one traffic-source slice of a video's views.
type TrafficShare struct {
	Views      int64   `json:"views"`
	Percentage float64 `json:"percentage"`
}

// VideoAnalytics aggregates the per-video Analytics API readings.
type VideoAnalytics struct {
	Views           *int64
	Retention       *float64
	AvgViewDuration *float64
	Impressions     *int64
	CTR             *float64
	TrafficSources  map[string]TrafficShare
}

// TopTrafficSource returns the source with the largest view share, or ""
// when no breakdown is available.
func (a *VideoAnalytics) TopTrafficSource() string {
	if a == nil || len(a.TrafficSources) == 0 {
		return ""
	}
	top := ""
	best := -1.0
	for source, share := range a.TrafficSources {
		if share.Percentage > best {
			best = share.Percentage
			top = source
		}
	}
	return top
}
