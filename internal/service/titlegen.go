package service

import (
	"context"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
	"github.com/kapu/youtube-growth-monitor/internal/prompt"
	"go.uber.org/zap"
)

// TitleGenerator produces the three A/B/C replacement titles for a video.
// Classification picks the prompt style; any provider failure degrades to
// deterministic template variants instead of returning an error, because
// callers always want something to put in the alert email.
type TitleGenerator struct {
	models *ModelManager
	logger *zap.Logger
}

// TitleSuggestion bundles the variants with how they were produced.
type TitleSuggestion struct {
	Variants  *domain.TitleVariants
	Profile   domain.ChannelProfile
	Generated bool
	Provider  string
}

func NewTitleGenerator(models *ModelManager, logger *zap.Logger) *TitleGenerator {
	return &TitleGenerator{
		models: models,
		logger: logger,
	}
}

// Generate classifies the title, prompts for variants and parses the
// response. The returned suggestion is never nil.
func (tg *TitleGenerator) Generate(ctx context.Context, originalTitle string) *TitleSuggestion {
	profile := tg.classify(ctx, originalTitle)

	var promptText string
	switch profile {
	case domain.ProfileGrowth:
		promptText = prompt.BuildGrowthTitles(originalTitle)
	default:
		promptText = prompt.BuildTechTitles(originalTitle)
	}

	text, metadata, err := tg.models.GenerateText(ctx, promptText)
	if err != nil {
		tg.logger.Warn("Title generation failed, using fallback templates",
			zap.String("title", originalTitle),
			zap.Error(err))
		return &TitleSuggestion{
			Variants: prompt.FallbackVariants(originalTitle, profile),
			Profile:  profile,
		}
	}

	variants, err := prompt.ParseVariants(text)
	if err != nil {
		tg.logger.Warn("Title response unparseable, using fallback templates",
			zap.String("title", originalTitle),
			zap.Error(err))
		return &TitleSuggestion{
			Variants: prompt.FallbackVariants(originalTitle, profile),
			Profile:  profile,
		}
	}

	tg.logger.Info("Title variants generated",
		zap.String("title", originalTitle),
		zap.String("profile", profile.String()),
		zap.String("provider", metadata.Provider))

	return &TitleSuggestion{
		Variants:  variants,
		Profile:   profile,
		Generated: true,
		Provider:  metadata.Provider,
	}
}

// classify asks the model whether the title is technical or viral content.
// On any failure it defaults to the tech profile, the conservative choice
// for a catalog dominated by tutorials.
func (tg *TitleGenerator) classify(ctx context.Context, originalTitle string) domain.ChannelProfile {
	text, _, err := tg.models.GenerateText(ctx, prompt.BuildClassification(originalTitle))
	if err != nil {
		tg.logger.Debug("Classification failed, defaulting to tech",
			zap.String("title", originalTitle),
			zap.Error(err))
		return domain.ProfileTech
	}
	return prompt.ParseClassification(text)
}
