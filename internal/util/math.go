package util

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	if v < 0 {
		return float64(int(v*10-0.5)) / 10
	}
	return float64(int(v*10+0.5)) / 10
}
