package prompt

import (
	"fmt"
	"strings"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

// ParseVariants extracts the A/B/C lines from a model response. The prompt
// demands exactly that format, but models sometimes wrap it in fences or
// add commentary, so everything except the labeled lines is ignored.
func ParseVariants(text string) (*domain.TitleVariants, error) {
	variants := &domain.TitleVariants{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "A:"):
			variants.VariantA = strings.TrimSpace(strings.TrimPrefix(line, "A:"))
		case strings.HasPrefix(line, "B:"):
			variants.VariantB = strings.TrimSpace(strings.TrimPrefix(line, "B:"))
		case strings.HasPrefix(line, "C:"):
			variants.VariantC = strings.TrimSpace(strings.TrimPrefix(line, "C:"))
		}
	}

	if !variants.Complete() {
		return nil, fmt.Errorf("expected 3 title variants, response was missing some")
	}

	return variants, nil
}

// ParseClassification maps the one-word classification answer to a channel
// profile. Anything unclear falls back to the tech profile.
func ParseClassification(text string) domain.ChannelProfile {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	if strings.Contains(normalized, "VIRAL") {
		return domain.ProfileGrowth
	}
	return domain.ProfileTech
}
