package domain

// ChannelProfile selects the threshold strategy for a video. TECH channels
// live off slow search traffic, GROWTH channels off the browse/suggested
// feed, so they get very different alerting windows.
type ChannelProfile string

const (
	ProfileTech    ChannelProfile = "tech"
	ProfileGrowth  ChannelProfile = "growth"
	ProfileUnknown ChannelProfile = "unknown"
)

func (p ChannelProfile) String() string {
	return string(p)
}

// ParseProfile maps a stored/config value onto a known profile.
func ParseProfile(value string) ChannelProfile {
	switch value {
	case "tech":
		return ProfileTech
	case "growth":
		return ProfileGrowth
	default:
		return ProfileUnknown
	}
}

// ProfileConfig is the immutable threshold bundle for a profile.
type ProfileConfig struct {
	MinHoursBeforeAlert   float64
	ArchiveAfterHours     float64
	HealthyViewsVelocity  int64
	StagnantViewsVelocity int64
	MinCTRThreshold       float64
	MinRetentionThreshold float64
	AlertPriority         Priority

	// EvaluationCheckpoints are the target hours-since-publish at which a
	// video is re-evaluated, in ascending order.
	EvaluationCheckpoints []float64

	ImpressionsLowThreshold    int64
	ImpressionsNormalThreshold int64
}

var profileConfigs = map[ChannelProfile]ProfileConfig{
	ProfileTech: {
		// SEO-driven: slow but steady search traffic.
		MinHoursBeforeAlert:   12,
		ArchiveAfterHours:     168,
		HealthyViewsVelocity:  5,
		StagnantViewsVelocity: 2,
		MinCTRThreshold:       3.5,
		MinRetentionThreshold: 35,
		AlertPriority:         PriorityInfo,

		EvaluationCheckpoints: []float64{24, 48, 168},

		ImpressionsLowThreshold:    500,
		ImpressionsNormalThreshold: 2000,
	},
	ProfileGrowth: {
		// Viral-driven: immediate impact or nothing.
		MinHoursBeforeAlert:   3,
		ArchiveAfterHours:     24,
		HealthyViewsVelocity:  20,
		StagnantViewsVelocity: 10,
		MinCTRThreshold:       4.0,
		MinRetentionThreshold: 40,
		AlertPriority:         PriorityHigh,

		EvaluationCheckpoints: []float64{3, 6, 12, 24},

		ImpressionsLowThreshold:    1000,
		ImpressionsNormalThreshold: 5000,
	},
}

// GetProfileConfig returns the threshold bundle for a profile. Unknown
// profiles borrow the tech configuration, matching the generic fallback
// branches in the classifier.
func GetProfileConfig(profile ChannelProfile) ProfileConfig {
	if cfg, ok := profileConfigs[profile]; ok {
		return cfg
	}
	return profileConfigs[ProfileTech]
}

// Keyword sets used by the profile resolver when no explicit channel mapping
// exists. Matching is case-folded substring overlap against the title.
var (
	KeywordsTech = []string{
		"tutorial", "solucionar", "reparar", "instalar", "configurar",
		"windows", "linux", "android", "error", "problema", "bug",
		"pc", "software", "app", "código", "programar", "hack",
		"chatgpt", "ia", "gemini",
	}

	KeywordsGrowth = []string{
		"estoicismo", "marco aurelio", "séneca", "disciplina", "hábitos",
		"mentalidad", "motivación", "productividad", "mañana", "rutina",
		"psicología", "filosofía", "sabiduría", "autocontrol", "enfoque",
		"ansiedad", "fracaso", "éxito", "transformación", "dopamina",
	}
)
