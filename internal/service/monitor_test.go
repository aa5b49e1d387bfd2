package service

import (
	"testing"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

func TestAttributeProblem(t *testing.T) {
	tests := []struct {
		name      string
		analytics *domain.VideoAnalytics
		want      domain.ProblemSource
	}{
		{
			name:      "no analytics",
			analytics: nil,
			want:      domain.ProblemUnknown,
		},
		{
			name:      "high retention exonerates the title",
			analytics: &domain.VideoAnalytics{Retention: f64(45)},
			want:      domain.ProblemThumbnail,
		},
		{
			name: "search traffic blames the title",
			analytics: &domain.VideoAnalytics{
				Retention:      f64(35),
				TrafficSources: trafficTopped(domain.TrafficSearch),
			},
			want: domain.ProblemTitle,
		},
		{
			name: "browse traffic blames the thumbnail",
			analytics: &domain.VideoAnalytics{
				Retention:      f64(35),
				TrafficSources: trafficTopped(domain.TrafficBrowse),
			},
			want: domain.ProblemThumbnail,
		},
		{
			name: "suggested traffic blames the thumbnail",
			analytics: &domain.VideoAnalytics{
				TrafficSources: trafficTopped(domain.TrafficRelatedVideo),
			},
			want: domain.ProblemThumbnail,
		},
		{
			name: "unrecognized top source stays unknown",
			analytics: &domain.VideoAnalytics{
				Retention:      f64(25),
				TrafficSources: trafficTopped("EXT_URL"),
			},
			want: domain.ProblemUnknown,
		},
		{
			name:      "very low retention without traffic blames both",
			analytics: &domain.VideoAnalytics{Retention: f64(25)},
			want:      domain.ProblemBoth,
		},
		{
			name:      "no evidence defaults to the title",
			analytics: &domain.VideoAnalytics{Retention: f64(35)},
			want:      domain.ProblemTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttributeProblem(tt.analytics); got != tt.want {
				t.Errorf("AttributeProblem() = %s, want %s", got, tt.want)
			}
		})
	}
}
