package domain

// Priority of a health evaluation; HIGH and MEDIUM drive alert emails.
type Priority string

const (
	PriorityInfo    Priority = "INFO"
	PrioritySuccess Priority = "SUCCESS"
	PriorityMedium  Priority = "MEDIUM"
	PriorityHigh    Priority = "HIGH"
)

// HealthStatus labels answer "is the video healthy"; the diagnosis engine
// separately answers "whose fault is it".
type HealthStatus string

const (
	HealthWaitingIndexing HealthStatus = "WAITING_INDEXING"
	HealthArchived        HealthStatus = "ARCHIVED"

	// tech profile
	HealthHealthySEODrip    HealthStatus = "HEALTHY_SEO_DRIP"
	HealthAlertStagnant     HealthStatus = "ALERT_STAGNANT"
	HealthAlertLowCTRSEO    HealthStatus = "ALERT_LOW_CTR_SEO"
	HealthAlertLowRetention HealthStatus = "ALERT_LOW_RETENTION"
	HealthMonitoringSEO     HealthStatus = "MONITORING_SEO"

	// growth profile
	HealthViralSuccess           HealthStatus = "VIRAL_SUCCESS"
	HealthAlertLowCTRUrgent      HealthStatus = "ALERT_LOW_CTR_URGENT"
	HealthAlertClickbaitMismatch HealthStatus = "ALERT_CLICKBAIT_MISMATCH"
	HealthAlertStagnantViral     HealthStatus = "ALERT_STAGNANT_VIRAL"
	HealthMonitoringViral        HealthStatus = "MONITORING_VIRAL"

	// unknown profile fallback
	HealthMonitoringOK        HealthStatus = "MONITORING_OK"
	HealthAlertLowPerformance HealthStatus = "ALERT_LOW_PERFORMANCE"
	HealthMonitoringNeutral   HealthStatus = "MONITORING_NEUTRAL"
)

// HealthResult is one classifier evaluation.
type HealthResult struct {
	Status   HealthStatus
	Message  string
	Priority Priority
}
