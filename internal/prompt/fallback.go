package prompt

import (
	"fmt"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

// FallbackVariants returns deterministic template variants when no AI
// provider is reachable. Better a formulaic suggestion than none while a
// video is bleeding CTR.
func FallbackVariants(originalTitle string, profile domain.ChannelProfile) *domain.TitleVariants {
	switch profile {
	case domain.ProfileTech:
		return &domain.TitleVariants{
			VariantA: fmt.Sprintf("%s - Solución Definitiva %d", truncate(originalTitle, 50), titleYear),
			VariantB: fmt.Sprintf("¿%s? Repáralo Sin Formatear", truncate(originalTitle, 45)),
			VariantC: fmt.Sprintf("¡%s! Al Instante - 3 Pasos", truncate(originalTitle, 45)),
		}
	case domain.ProfileGrowth:
		return &domain.TitleVariants{
			VariantA: fmt.Sprintf("Por esto sigues %s (Cámbialo)", truncate(originalTitle, 45)),
			VariantB: fmt.Sprintf("La Regla Estoica de %s", truncate(originalTitle, 40)),
			VariantC: fmt.Sprintf("7 Cosas para %s en Silencio", truncate(originalTitle, 45)),
		}
	default:
		return &domain.TitleVariants{
			VariantA: fmt.Sprintf("El SECRETO de %s", truncate(originalTitle, 50)),
			VariantB: fmt.Sprintf("Cómo %s (Paso a Paso)", truncate(originalTitle, 55)),
			VariantC: fmt.Sprintf("🔥 %s - %d", truncate(originalTitle, 55), titleYear),
		}
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
