package service

import (
	"strings"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

// ProfileResolver assigns a channel profile to a video. Resolution order:
// explicit channel-id mapping, then keyword-overlap scoring on the title,
// then the configured default. Pure and deterministic given its tables.
type ProfileResolver struct {
	channelProfiles map[string]domain.ChannelProfile
	defaultProfile  domain.ChannelProfile
}

func NewProfileResolver(channelMap map[string]string, defaultProfile string) *ProfileResolver {
	profiles := make(map[string]domain.ChannelProfile, len(channelMap))
	for channelID, name := range channelMap {
		if p := domain.ParseProfile(name); p != domain.ProfileUnknown {
			profiles[channelID] = p
		}
	}

	def := domain.ParseProfile(strings.ToLower(defaultProfile))
	if def == domain.ProfileUnknown {
		def = domain.ProfileTech
	}

	return &ProfileResolver{
		channelProfiles: profiles,
		defaultProfile:  def,
	}
}

// Resolve returns exactly one profile for a video.
func (r *ProfileResolver) Resolve(title, channelID string) domain.ChannelProfile {
	if channelID != "" {
		if profile, ok := r.channelProfiles[channelID]; ok {
			return profile
		}
	}

	lowered := strings.ToLower(title)

	techScore := keywordScore(lowered, domain.KeywordsTech)
	growthScore := keywordScore(lowered, domain.KeywordsGrowth)

	if techScore > growthScore {
		return domain.ProfileTech
	}
	if growthScore > techScore {
		return domain.ProfileGrowth
	}

	// Tie or zero matches: fall back to the configured default.
	return r.defaultProfile
}

func keywordScore(loweredTitle string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(loweredTitle, kw) {
			score++
		}
	}
	return score
}
