package service

import (
	"testing"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

func TestProfileResolver(t *testing.T) {
	resolver := NewProfileResolver(map[string]string{
		"UCtech":   "tech",
		"UCgrowth": "growth",
		"UCbogus":  "cooking",
	}, "tech")

	t.Run("explicit channel mapping wins", func(t *testing.T) {
		got := resolver.Resolve("Estoicismo para la disciplina diaria", "UCtech")
		if got != domain.ProfileTech {
			t.Errorf("Resolve = %s, want tech despite growth keywords", got)
		}
	})

	t.Run("invalid mapping falls through to keywords", func(t *testing.T) {
		got := resolver.Resolve("Marco Aurelio y la mentalidad estoica", "UCbogus")
		if got != domain.ProfileGrowth {
			t.Errorf("Resolve = %s, want growth from keywords", got)
		}
	})

	t.Run("tech keywords", func(t *testing.T) {
		got := resolver.Resolve("Cómo SOLUCIONAR el error 0x80070057 en Windows", "")
		if got != domain.ProfileTech {
			t.Errorf("Resolve = %s, want tech", got)
		}
	})

	t.Run("growth keywords", func(t *testing.T) {
		got := resolver.Resolve("La rutina de mañana que cambió mi disciplina", "")
		if got != domain.ProfileGrowth {
			t.Errorf("Resolve = %s, want growth", got)
		}
	})

	t.Run("no keyword match uses the default", func(t *testing.T) {
		got := resolver.Resolve("Vlog del fin de semana", "")
		if got != domain.ProfileTech {
			t.Errorf("Resolve = %s, want configured default tech", got)
		}
	})
}

func TestProfileResolverDefaultFallback(t *testing.T) {
	resolver := NewProfileResolver(nil, "nonsense")
	if got := resolver.Resolve("Vlog del fin de semana", ""); got != domain.ProfileTech {
		t.Errorf("Resolve = %s, want tech for an unparseable default", got)
	}

	growthDefault := NewProfileResolver(nil, "growth")
	if got := growthDefault.Resolve("Vlog del fin de semana", ""); got != domain.ProfileGrowth {
		t.Errorf("Resolve = %s, want growth default", got)
	}
}
