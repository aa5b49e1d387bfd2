package service

import (
	"fmt"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

// DiagnoseRootCause determines which asset is failing (title, thumbnail or
// content coherence) from a checkpoint's metrics.
//
// The rules form an ordered decision table: they are evaluated strictly
// top-to-bottom and the first match wins, even when a video satisfies more
// than one real-world syndrome (low impressions AND low retention report
// FANTASMA only). The boundaries mix strict and inclusive comparisons on
// purpose; they mirror the threshold cascade this table was lifted from.
func DiagnoseRootCause(impressions *int64, ctr, retention *float64, views int64, profile domain.ChannelProfile, cfg domain.ProfileConfig) domain.Diagnosis {
	minCTR := cfg.MinCTRThreshold
	minRetention := cfg.MinRetentionThreshold
	impLow := cfg.ImpressionsLowThreshold
	impNormal := cfg.ImpressionsNormalThreshold

	level := classifyImpressions(impressions, impLow, impNormal)

	// Case A: "ghost" syndrome, YouTube is not surfacing the video at all.
	if impressions != nil && *impressions < impLow {
		return diagnoseFantasma(*impressions, impLow, level, profile)
	}

	// Case B: wide reach, nobody clicks. The thumbnail is not stopping the
	// scroll; the title already earned the impressions.
	if impressions != nil && *impressions >= impNormal && ctr != nil && *ctr < minCTR {
		return diagnoseInvisible(*impressions, *ctr, minCTR, level, profile)
	}

	// Case C: they click but leave immediately. Title and thumbnail are
	// both exonerated; the opening content breaks the promise.
	if ctr != nil && *ctr >= minCTR && retention != nil && *retention < minRetention {
		return domain.Diagnosis{
			Syndrome:         domain.SyndromeClickbait,
			Culprit:          domain.CulpritCoherence,
			ImpressionsLevel: level,
			Reason: fmt.Sprintf("La gente entra mucho (CTR %.1f%%) pero se va rápido (Retention %.1f%% < %.0f%%). El título/miniatura prometieron algo que el video NO entrega al inicio.",
				*ctr, *retention, minRetention),
			Action: "NO CAMBIES la miniatura (funciona). NO CAMBIES el título (funciona). PROBLEMA: Los primeros 30 segundos del video. Entregar la promesa EN LOS PRIMEROS 10 SEGUNDOS y fijar un comentario con el timestamp del contenido prometido.",
		}
	}

	// Case D: everything healthy.
	if ctr != nil && *ctr >= minCTR && (retention == nil || *retention >= minRetention) {
		reason := fmt.Sprintf("Video funcionando correctamente. CTR %.1f%% (>= %.1f%%)", *ctr, minCTR)
		if retention != nil {
			reason += fmt.Sprintf(", Retention %.1f%% (>= %.0f%%)", *retention, minRetention)
		}
		return domain.Diagnosis{
			Syndrome:         domain.SyndromeSuccess,
			Culprit:          domain.CulpritNone,
			ImpressionsLevel: level,
			Reason:           reason,
			Action:           "Continuar monitoreando. El título y miniatura están optimizados.",
		}
	}

	// Case E: not enough data yet (typically missing CTR or impressions).
	return domain.Diagnosis{
		Syndrome:         domain.SyndromeInsufficientData,
		Culprit:          domain.CulpritUnknown,
		ImpressionsLevel: level,
		Reason:           "Datos insuficientes para diagnóstico completo. Esperar más tiempo para acumular métricas.",
		Action:           "Continuar monitoreo en próximos checkpoints.",
	}
}

func classifyImpressions(impressions *int64, low, normal int64) domain.ImpressionsLevel {
	switch {
	case impressions == nil:
		return domain.ImpressionsUnknown
	case *impressions < low:
		return domain.ImpressionsLow
	case *impressions < normal:
		return domain.ImpressionsNormal
	default:
		return domain.ImpressionsHigh
	}
}

func diagnoseFantasma(impressions, impLow int64, level domain.ImpressionsLevel, profile domain.ChannelProfile) domain.Diagnosis {
	d := domain.Diagnosis{
		Syndrome:         domain.SyndromeFantasma,
		Culprit:          domain.CulpritTitle,
		ImpressionsLevel: level,
	}

	switch profile {
	case domain.ProfileTech:
		d.Reason = fmt.Sprintf("YouTube NO está mostrando el video (%d impresiones < %d). El algoritmo no sabe de qué trata o no encuentra audiencia.", impressions, impLow)
		d.Action = "Reescribir Título enfocándose en KEYWORDS más buscadas (nombre del software, versión, error específico, solución). Agregar números de error exactos."
	case domain.ProfileGrowth:
		d.Reason = fmt.Sprintf("YouTube NO está mostrando el video (%d impresiones < %d). El tema no interesa o el ángulo es muy aburrido.", impressions, impLow)
		d.Action = "Cambiar Título a algo más RADICAL/POLÉMICO/EMOCIONAL. Usar dolor específico + promesa clara."
	default:
		d.Reason = fmt.Sprintf("Bajas impresiones (%d < %d). Problema de visibilidad SEO.", impressions, impLow)
		d.Action = "Mejorar título con keywords más específicas y relevantes para tu audiencia."
	}
	return d
}

func diagnoseInvisible(impressions int64, ctr, minCTR float64, level domain.ImpressionsLevel, profile domain.ChannelProfile) domain.Diagnosis {
	d := domain.Diagnosis{
		Syndrome:         domain.SyndromeInvisible,
		Culprit:          domain.CulpritThumbnail,
		ImpressionsLevel: level,
	}

	switch profile {
	case domain.ProfileTech:
		d.Reason = fmt.Sprintf("YouTube muestra el video a muchas personas (%d impresiones) pero nadie hace clic (CTR %.1f%% < %.1f%%). La imagen no detiene el scroll.", impressions, ctr, minCTR)
		d.Action = "MANTÉN EL TÍTULO (está bien posicionado). Cambia la MINIATURA: simplificar texto (máx 3 palabras), zoom en el error o resultado final, colores de contraste, flecha señalando el problema."
	case domain.ProfileGrowth:
		d.Reason = fmt.Sprintf("YouTube muestra el video masivamente (%d impresiones) pero nadie entra (CTR %.1f%% < %.1f%%). La imagen es genérica/aburrida.", impressions, ctr, minCTR)
		d.Action = "MANTÉN EL TÍTULO (está funcionando). Cambia la MINIATURA: expresión facial más intensa, contraste brutal, texto emocional corto, fondo oscuro con luz dramática."
	default:
		d.Reason = fmt.Sprintf("Alto alcance (%d impresiones) pero bajo CTR (%.1f%%). Problema visual.", impressions, ctr)
		d.Action = "Mantén el título. Rediseña la miniatura con mayor contraste y simplicidad visual."
	}
	return d
}

// HealthMetrics is the classifier's input slice of a snapshot.
type HealthMetrics struct {
	Views     int64
	VPH       int64
	CTR       *float64
	Retention *float64
}

// CheckVideoHealth evaluates video health against the profile strategy.
// Distinct purpose from DiagnoseRootCause: this answers "is the video
// healthy", the diagnosis engine answers "whose fault is it". Same
// first-match-wins ordering contract.
func CheckVideoHealth(m HealthMetrics, hoursOnline float64, profile domain.ChannelProfile, cfg domain.ProfileConfig) domain.HealthResult {
	// Universal silence window: nothing fires while YouTube is still
	// indexing, regardless of how bad the metrics look.
	if hoursOnline < cfg.MinHoursBeforeAlert {
		return domain.HealthResult{
			Status:   domain.HealthWaitingIndexing,
			Message:  fmt.Sprintf("Video en indexación... Esperar %.0fh antes de evaluar (%.1fh transcurridas)", cfg.MinHoursBeforeAlert, hoursOnline),
			Priority: domain.PriorityInfo,
		}
	}

	// Universal archive limit.
	if hoursOnline > cfg.ArchiveAfterHours {
		return domain.HealthResult{
			Status:   domain.HealthArchived,
			Message:  fmt.Sprintf("Monitoreo completado (%.1fh > %.0fh)", hoursOnline, cfg.ArchiveAfterHours),
			Priority: domain.PriorityInfo,
		}
	}

	switch profile {
	case domain.ProfileTech:
		return checkTechHealth(m, cfg)
	case domain.ProfileGrowth:
		return checkGrowthHealth(m, hoursOnline, cfg)
	default:
		return checkGenericHealth(m)
	}
}

// checkTechHealth: SEO channels drip slowly, so the thresholds are patient
// and nothing escalates above MEDIUM.
func checkTechHealth(m HealthMetrics, cfg domain.ProfileConfig) domain.HealthResult {
	if m.VPH >= cfg.HealthyViewsVelocity {
		return domain.HealthResult{
			Status:   domain.HealthHealthySEODrip,
			Message:  fmt.Sprintf("Goteo SEO saludable (%d VPH >= %d VPH objetivo)", m.VPH, cfg.HealthyViewsVelocity),
			Priority: domain.PrioritySuccess,
		}
	}

	if m.VPH < cfg.StagnantViewsVelocity && m.CTR != nil && *m.CTR < cfg.MinCTRThreshold {
		return domain.HealthResult{
			Status:   domain.HealthAlertStagnant,
			Message:  fmt.Sprintf("Video estancado: VPH %d < %d, CTR %.1f%% < %.1f%%. Considera mejorar SEO (título, tags, descripción)", m.VPH, cfg.StagnantViewsVelocity, *m.CTR, cfg.MinCTRThreshold),
			Priority: domain.PriorityMedium,
		}
	}

	if m.CTR != nil && *m.CTR < cfg.MinCTRThreshold && m.VPH >= cfg.StagnantViewsVelocity {
		return domain.HealthResult{
			Status:   domain.HealthAlertLowCTRSEO,
			Message:  fmt.Sprintf("CTR bajo (%.1f%% < %.1f%%) pero VPH aceptable (%d VPH). Optimizar título/miniatura sin urgencia", *m.CTR, cfg.MinCTRThreshold, m.VPH),
			Priority: domain.PriorityMedium,
		}
	}

	if m.Retention != nil && *m.Retention < cfg.MinRetentionThreshold {
		return domain.HealthResult{
			Status:   domain.HealthAlertLowRetention,
			Message:  fmt.Sprintf("Retention baja (%.1f%% < %.0f%%). Problema: contenido del video, no título", *m.Retention, cfg.MinRetentionThreshold),
			Priority: domain.PriorityMedium,
		}
	}

	msg := fmt.Sprintf("Monitoreo SEO activo: VPH %d", m.VPH)
	if m.CTR != nil {
		msg = fmt.Sprintf("Monitoreo SEO activo: VPH %d, CTR %.1f%%", m.VPH, *m.CTR)
	}
	return domain.HealthResult{Status: domain.HealthMonitoringSEO, Message: msg, Priority: domain.PriorityInfo}
}

// checkGrowthHealth: viral channels live or die in the first hours, so CTR
// and stagnation alerts escalate to HIGH once past the 6h grace period.
func checkGrowthHealth(m HealthMetrics, hoursOnline float64, cfg domain.ProfileConfig) domain.HealthResult {
	if m.VPH >= cfg.HealthyViewsVelocity {
		return domain.HealthResult{
			Status:   domain.HealthViralSuccess,
			Message:  fmt.Sprintf("🚀 VIRAL! Video explotando: %d VPH >= %d VPH objetivo", m.VPH, cfg.HealthyViewsVelocity),
			Priority: domain.PrioritySuccess,
		}
	}

	if m.CTR != nil && *m.CTR < cfg.MinCTRThreshold && hoursOnline >= 6 {
		return domain.HealthResult{
			Status:   domain.HealthAlertLowCTRUrgent,
			Message:  fmt.Sprintf("⚠️ CTR CRÍTICO: %.1f%% < %.1f%%. CAMBIAR TÍTULO YA (ventana viral cerrándose)", *m.CTR, cfg.MinCTRThreshold),
			Priority: domain.PriorityHigh,
		}
	}

	if m.Retention != nil && *m.Retention < cfg.MinRetentionThreshold && m.CTR != nil && *m.CTR >= cfg.MinCTRThreshold {
		return domain.HealthResult{
			Status:   domain.HealthAlertClickbaitMismatch,
			Message:  fmt.Sprintf("Título bueno (CTR %.1f%%) pero video malo (Retention %.1f%% < %.0f%%). Problema: contenido, no título", *m.CTR, *m.Retention, cfg.MinRetentionThreshold),
			Priority: domain.PriorityHigh,
		}
	}

	if m.VPH < cfg.StagnantViewsVelocity && hoursOnline >= 6 {
		return domain.HealthResult{
			Status:   domain.HealthAlertStagnantViral,
			Message:  fmt.Sprintf("Video no viral: VPH %d < %d. Revisar título + miniatura URGENTE", m.VPH, cfg.StagnantViewsVelocity),
			Priority: domain.PriorityHigh,
		}
	}

	msg := fmt.Sprintf("Esperando viralidad: VPH %d", m.VPH)
	if m.CTR != nil {
		msg = fmt.Sprintf("Esperando viralidad: VPH %d, CTR %.1f%%", m.VPH, *m.CTR)
	}
	return domain.HealthResult{Status: domain.HealthMonitoringViral, Message: msg, Priority: domain.PriorityInfo}
}

// checkGenericHealth: velocity-only three-way split for unresolved profiles.
func checkGenericHealth(m HealthMetrics) domain.HealthResult {
	switch {
	case m.VPH >= 20:
		return domain.HealthResult{
			Status:   domain.HealthMonitoringOK,
			Message:  fmt.Sprintf("Video estable: %d VPH", m.VPH),
			Priority: domain.PrioritySuccess,
		}
	case m.VPH < 10:
		return domain.HealthResult{
			Status:   domain.HealthAlertLowPerformance,
			Message:  fmt.Sprintf("VPH bajo: %d. Revisar título/miniatura", m.VPH),
			Priority: domain.PriorityMedium,
		}
	default:
		return domain.HealthResult{
			Status:   domain.HealthMonitoringNeutral,
			Message:  fmt.Sprintf("Monitoreo activo: %d VPH", m.VPH),
			Priority: domain.PriorityInfo,
		}
	}
}
