package util

import "time"

// HoursSince returns elapsed hours between published and now as a real value.
func HoursSince(published, now time.Time) float64 {
	return now.Sub(published).Hours()
}

// ViewsPerHour computes integer VPH; zero when no time has elapsed yet.
func ViewsPerHour(views int64, hoursOnline float64) int64 {
	if hoursOnline <= 0 {
		return 0
	}
	return int64(float64(views) / hoursOnline)
}

// FormatDate renders a UTC date the way the Analytics API expects.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
