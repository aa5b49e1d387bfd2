package service

import (
	"fmt"
	"sort"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

// Checkpoint identifies one due evaluation slot.
type Checkpoint struct {
	TargetHours float64
	Key         string
	Label       string
}

// ExtendedCheckpoints are appended to a video's schedule once long-term
// watch is granted at the 72h decision point.
var ExtendedCheckpoints = []float64{168, 360, 720}

// CheckpointKey derives the storage key for a checkpoint. Extended targets
// use day-based keys so history rows read naturally ("checkpoint_7d").
func CheckpointKey(targetHours float64) string {
	switch targetHours {
	case 168:
		return "checkpoint_7d"
	case 360:
		return "checkpoint_15d"
	case 720:
		return "checkpoint_30d"
	default:
		return fmt.Sprintf("checkpoint_%dh", int(targetHours))
	}
}

// CheckpointLabel is the human-readable name used in report subjects.
func CheckpointLabel(targetHours float64) string {
	switch {
	case targetHours == 168:
		return "7 Días"
	case targetHours == 360:
		return "15 Días"
	case targetHours == 720:
		return "30 Días"
	case targetHours < 24:
		return fmt.Sprintf("%d Horas", int(targetHours))
	case targetHours == 24:
		return "24 Horas"
	case targetHours == 48:
		return "48 Horas"
	default:
		return fmt.Sprintf("%dh", int(targetHours))
	}
}

// checkpointTolerance is the acceptance window around a target: the monitor
// runs on an external cadence, so a checkpoint fires while elapsed time is
// within ±30min of targets below 48h, ±2h otherwise.
func checkpointTolerance(targetHours float64) float64 {
	if targetHours < 48 {
		return 0.5
	}
	return 2.0
}

// EvaluationSchedule returns the ascending checkpoint targets for a video:
// the profile's own list, plus the extended targets once long-term watch is
// active.
func EvaluationSchedule(cfg domain.ProfileConfig, longTermWatch bool) []float64 {
	targets := make([]float64, 0, len(cfg.EvaluationCheckpoints)+len(ExtendedCheckpoints))
	seen := make(map[float64]struct{})
	for _, t := range cfg.EvaluationCheckpoints {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			targets = append(targets, t)
		}
	}
	if longTermWatch {
		for _, t := range ExtendedCheckpoints {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				targets = append(targets, t)
			}
		}
	}
	sort.Float64s(targets)
	return targets
}

// SelectDueCheckpoint picks the first target whose tolerance window contains
// the elapsed time. alreadyNotified is true when that checkpoint was
// evaluated on a previous pass, in which case the caller skips the video
// (at-most-once evaluation per checkpoint per video).
func SelectDueCheckpoint(elapsedHours float64, targets []float64, notified domain.NotifiedSet) (cp *Checkpoint, alreadyNotified bool) {
	for _, target := range targets {
		tolerance := checkpointTolerance(target)
		if elapsedHours >= target-tolerance && elapsedHours <= target+tolerance {
			selected := &Checkpoint{
				TargetHours: target,
				Key:         CheckpointKey(target),
				Label:       CheckpointLabel(target),
			}
			return selected, notified.Contains(selected.Key)
		}
	}
	return nil, false
}
