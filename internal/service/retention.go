package service

import (
	"fmt"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

const (
	// A fall of 10 or more retention points inside a 30-second window
	// is an editing problem, not organic decay.
	retentionDropThreshold  = 10.0
	retentionSpikeThreshold = 5.0
	retentionDropWindowSecs = 30
)

// AnalyzeRetentionCurve scans a second-by-second audience retention curve
// for drop and peak points and derives editing recommendations.
func AnalyzeRetentionCurve(videoID, title string, durationSeconds int, points []domain.RetentionPoint, now time.Time) domain.RetentionAnalysis {
	analysis := domain.RetentionAnalysis{
		VideoID:         videoID,
		Title:           title,
		DurationSeconds: durationSeconds,
		AnalyzedAt:      now,
	}

	if len(points) == 0 || durationSeconds <= 0 {
		analysis.Recommendations = []string{"Sin datos de retención suficientes para analizar."}
		return analysis
	}

	total := 0.0
	for _, p := range points {
		total += p.WatchRatio
	}
	analysis.AverageRetention = total / float64(len(points)) * 100

	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		curr := points[i]

		prevSecs := int(prev.ElapsedRatio * float64(durationSeconds))
		currSecs := int(curr.ElapsedRatio * float64(durationSeconds))
		delta := (curr.WatchRatio - prev.WatchRatio) * 100

		if -delta >= retentionDropThreshold && currSecs-prevSecs <= retentionDropWindowSecs {
			analysis.DropPoints = append(analysis.DropPoints, domain.DropPoint{
				StartSeconds: prevSecs,
				EndSeconds:   currSecs,
				DropPercent:  -delta,
			})
		} else if delta > retentionSpikeThreshold {
			analysis.PeakPoints = append(analysis.PeakPoints, domain.PeakPoint{
				AtSeconds:   currSecs,
				RisePercent: delta,
			})
		}
	}

	analysis.Recommendations = retentionRecommendations(analysis)
	return analysis
}

func retentionRecommendations(a domain.RetentionAnalysis) []string {
	var recs []string

	for _, drop := range a.DropPoints {
		if drop.StartSeconds <= 30 {
			recs = append(recs, fmt.Sprintf("Caída de %.0f%% en los primeros 30 segundos: el hook no entrega la promesa del título. Reescribir la intro.", drop.DropPercent))
			break
		}
	}

	if len(a.DropPoints) >= 3 {
		recs = append(recs, fmt.Sprintf("%d caídas bruscas detectadas: revisar el ritmo de edición (cortes más frecuentes, eliminar relleno).", len(a.DropPoints)))
	}

	if a.AverageRetention > 0 && a.AverageRetention < 35 {
		recs = append(recs, fmt.Sprintf("Retención promedio %.1f%% por debajo del 35%%: el contenido no sostiene el interés, no es un problema de título.", a.AverageRetention))
	}

	if len(a.PeakPoints) > 0 {
		recs = append(recs, fmt.Sprintf("%d picos de retención: identificar qué momentos se re-ven y replicar ese formato.", len(a.PeakPoints)))
	}

	if len(recs) == 0 {
		recs = append(recs, "Curva de retención estable. Mantener el estilo de edición actual.")
	}

	return recs
}
