package service

import (
	"fmt"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

const baselineCheckpoint = "checkpoint_72h"

var extendedCheckpointKeys = map[string]struct{}{
	"checkpoint_7d":  {},
	"checkpoint_15d": {},
	"checkpoint_30d": {},
}

// IsExtendedCheckpoint reports whether a checkpoint key belongs to the
// long-term-watch schedule.
func IsExtendedCheckpoint(key string) bool {
	_, ok := extendedCheckpointKeys[key]
	return ok
}

// BuildLearningSignal converts a checkpoint's metrics into a binary
// approved/rejected training label for the downstream preference learner.
// A nil return means no label is emitted this checkpoint.
//
// The skip rules are deliberate false-negative avoidance: when low CTR is
// attributable to the thumbnail (high retention, or traffic dominated by
// browse/suggested surfaces), the title must not be penalized.
func BuildLearningSignal(video *domain.TrackedVideo, analytics *domain.VideoAnalytics, vph, views int64, checkpoint string, now time.Time) *domain.LearningSignal {
	var ctr, retention *float64
	var traffic map[string]domain.TrafficShare
	if analytics != nil {
		ctr = analytics.CTR
		retention = analytics.Retention
		traffic = analytics.TrafficSources
	}

	var ctrDay3 *float64
	var vphDay3 *int64
	if baseline, ok := video.Metrics[baselineCheckpoint]; ok {
		ctrDay3 = baseline.CTR
		if baseline.VPH > 0 {
			v := baseline.VPH
			vphDay3 = &v
		}
	}

	problemSource := domain.ProblemUnknown

	if ctr != nil && *ctr < 5.0 {
		// High retention clears the title: the thumbnail is not earning
		// the click, but people who do click stay.
		if retention != nil && *retention > 40 {
			return nil
		}

		if top := (&domain.VideoAnalytics{TrafficSources: traffic}).TopTrafficSource(); top != "" {
			switch top {
			case domain.TrafficSearch:
				problemSource = domain.ProblemTitle
			case domain.TrafficBrowse, domain.TrafficBrowseFeatures, domain.TrafficRelatedVideo:
				// Browse-driven traffic means the thumbnail sells the
				// click; the title is not to blame.
				return nil
			}
		}

		if retention != nil && *retention < 30 {
			problemSource = domain.ProblemBoth
		}

		if problemSource == domain.ProblemUnknown && retention == nil {
			// Cannot attribute the failure, so don't teach from it.
			return nil
		}
	}

	var action domain.LearningAction
	var reason string
	pattern := domain.PatternImmediate

	// Sleeper-hit override: growth relative to the 72h baseline on the
	// extended checkpoints beats the plain CTR/VPH bands below.
	if IsExtendedCheckpoint(checkpoint) {
		switch {
		case ctrDay3 != nil && *ctrDay3 > 0 && ctr != nil && *ctr >= *ctrDay3*1.5:
			action = domain.ActionApproved
			reason = fmt.Sprintf("delayed_explosion_ctr_%.1f%%_from_%.1f%%_%s", *ctr, *ctrDay3, checkpoint)
			problemSource = domain.ProblemNone
			pattern = domain.PatternDelayedExplosion
		case vphDay3 != nil && vph >= *vphDay3*2:
			action = domain.ActionApproved
			reason = fmt.Sprintf("delayed_explosion_vph_%d_from_%d_%s", vph, *vphDay3, checkpoint)
			problemSource = domain.ProblemNone
			pattern = domain.PatternDelayedExplosion
		}
	}

	if action == "" {
		switch {
		case ctr != nil && *ctr >= 8.0:
			action = domain.ActionApproved
			reason = fmt.Sprintf("ctr_excelente_%.1f%%", *ctr)
			problemSource = domain.ProblemNone
		case ctr != nil && *ctr >= 5.0:
			action = domain.ActionApproved
			reason = fmt.Sprintf("ctr_bueno_%.1f%%", *ctr)
			problemSource = domain.ProblemNone
		case ctr != nil && *ctr < 5.0 && problemSource == domain.ProblemTitle:
			action = domain.ActionRejected
			reason = fmt.Sprintf("ctr_bajo_%.1f%%_problema_titulo", *ctr)
		case ctr != nil && *ctr < 5.0 && problemSource == domain.ProblemBoth:
			action = domain.ActionRejected
			reason = fmt.Sprintf("ctr_bajo_%.1f%%_problema_titulo_y_miniatura", *ctr)
		case vph >= 100:
			action = domain.ActionApproved
			reason = fmt.Sprintf("vph_alto_%d", vph)
			problemSource = domain.ProblemNone
		case vph < 25:
			action = domain.ActionRejected
			reason = fmt.Sprintf("vph_bajo_%d", vph)
			problemSource = domain.ProblemTitle
		default:
			// Neutral zone, nothing worth teaching.
			return nil
		}
	}

	signal := &domain.LearningSignal{
		ContentType:     "titulo",
		OriginalContent: video.TitleOriginal,
		Action:          action,
		Reason:          reason,
		ProblemSource:   problemSource,
		SuccessPattern:  pattern,
		VideoID:         video.VideoID,
		PublishedAt:     video.PublishedAt,
		Checkpoint:      checkpoint,
		CTR:             ctr,
		Retention:       retention,
		VPH:             vph,
		Views:           views,
		TrafficSources:  traffic,
		CreatedAt:       now,
	}

	if IsExtendedCheckpoint(checkpoint) {
		signal.Evolution = &domain.EvolutionMetrics{
			CTRDay3:    ctrDay3,
			CTRCurrent: ctr,
			VPHDay3:    vphDay3,
			VPHCurrent: vph,
		}
		if ctrDay3 != nil && ctr != nil && *ctrDay3 > 0 {
			growth := (*ctr / *ctrDay3 - 1) * 100
			signal.Evolution.GrowthPercentageCTR = &growth
		}
		if vphDay3 != nil && *vphDay3 > 0 {
			growth := (float64(vph)/float64(*vphDay3) - 1) * 100
			signal.Evolution.GrowthPercentageVPH = &growth
		}
	}

	return signal
}
