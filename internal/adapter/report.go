package adapter

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
)

// Email is a rendered message ready for the mailer.
type Email struct {
	Subject string
	Body    string
}

// CriticalAlertInput feeds the low-CTR alert email.
type CriticalAlertInput struct {
	VideoID       string
	Title         string
	CTR           float64
	Retention     *float64
	VPH           int64
	Views         int64
	ProblemSource domain.ProblemSource
	Variants      *domain.TitleVariants
}

type criticalAlertData struct {
	VideoID        string
	Title          string
	ProblemLabel   template.HTML
	ActionMsg      string
	HeaderColor    template.CSS
	CTRDisplay     string
	HasRetention   bool
	RetentionText  string
	RetentionBg    template.CSS
	RetentionColor template.CSS
	VPH            string
	Views          string
	Variants       *domain.TitleVariants
}

// BuildCriticalAlert renders the urgent low-CTR email. Variants may be nil
// when the diagnosis blames the thumbnail and no titles were generated.
func BuildCriticalAlert(input CriticalAlertInput) (*Email, error) {
	data := criticalAlertData{
		VideoID:    input.VideoID,
		Title:      input.Title,
		CTRDisplay: fmt.Sprintf("%.1f%% (< 5%% es CRÍTICO)", input.CTR),
		VPH:        formatThousands(input.VPH),
		Views:      formatThousands(input.Views),
		Variants:   input.Variants,
	}

	switch input.ProblemSource {
	case domain.ProblemTitle:
		data.ProblemLabel = "⚠️ PROBLEMA DETECTADO: <strong>TÍTULO</strong>"
		data.ActionMsg = "Cambia el TÍTULO del video en YouTube Studio"
		data.HeaderColor = "#dc2626"
	case domain.ProblemThumbnail:
		data.ProblemLabel = "⚠️ PROBLEMA DETECTADO: <strong>MINIATURA</strong>"
		data.ActionMsg = "Cambia la MINIATURA del video en YouTube Studio (el título está bien)"
		data.HeaderColor = "#ea580c"
	case domain.ProblemBoth:
		data.ProblemLabel = "⚠️ PROBLEMA DETECTADO: <strong>TÍTULO + MINIATURA</strong>"
		data.ActionMsg = "Cambia AMBOS: título Y miniatura en YouTube Studio"
		data.HeaderColor = "#b91c1c"
	default:
		data.ProblemLabel = "⚠️ PROBLEMA: No se pudo determinar la causa exacta"
		data.ActionMsg = "Revisa manualmente título y miniatura"
		data.HeaderColor = "#6b7280"
	}

	if input.Retention != nil {
		r := *input.Retention
		data.HasRetention = true
		data.RetentionText = fmt.Sprintf("%.1f%%", r)
		switch {
		case r > 40:
			data.RetentionBg, data.RetentionColor = "#dcfce7", "#16a34a"
		case r < 30:
			data.RetentionBg, data.RetentionColor = "#fee2e2", "#dc2626"
		default:
			data.RetentionBg, data.RetentionColor = "#f3f4f6", "#6b7280"
		}
	}

	body, err := executeReportTemplate("alert_email.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render alert email: %w", err)
	}

	return &Email{
		Subject: fmt.Sprintf("🚨 ALERTA: CTR BAJO (%.1f%%) - %s...", input.CTR, truncateRunes(input.Title, 40)),
		Body:    body,
	}, nil
}

// DiagnosisReportInput feeds the per-checkpoint diagnosis email.
type DiagnosisReportInput struct {
	VideoID         string
	Title           string
	CheckpointLabel string
	Profile         domain.ChannelProfile
	HoursOnline     float64
	Impressions     *int64
	CTR             *float64
	CTRTarget       float64
	Retention       *float64
	Views           int64
	VPH             int64
	Diagnosis       domain.Diagnosis
}

type diagnosisReportData struct {
	VideoID          string
	Title            string
	CheckpointLabel  string
	Profile          string
	HoursOnline      string
	ImpressionsText  string
	ImpressionsBg    template.CSS
	HasCTR           bool
	CTRText          string
	CTRBg            template.CSS
	CTRColor         template.CSS
	HasRetention     bool
	RetentionText    string
	Views            string
	VPH              string
	Syndrome         string
	VerdictColor     template.CSS
	VerdictBg        template.CSS
	Culprit          string
	Reason           string
	Action           string
}

// BuildDiagnosisReport renders the routine checkpoint report.
func BuildDiagnosisReport(input DiagnosisReportInput) (*Email, error) {
	data := diagnosisReportData{
		VideoID:         input.VideoID,
		Title:           input.Title,
		CheckpointLabel: input.CheckpointLabel,
		Profile:         strings.ToUpper(input.Profile.String()),
		HoursOnline:     fmt.Sprintf("%.1f", input.HoursOnline),
		Views:           formatThousands(input.Views),
		VPH:             formatThousands(input.VPH),
		Syndrome:        string(input.Diagnosis.Syndrome),
		Culprit:         string(input.Diagnosis.Culprit),
		Reason:          input.Diagnosis.Reason,
		Action:          input.Diagnosis.Action,
	}

	if input.Impressions != nil {
		data.ImpressionsText = fmt.Sprintf("%s (%s)", formatThousands(*input.Impressions), input.Diagnosis.ImpressionsLevel)
	} else {
		data.ImpressionsText = fmt.Sprintf("N/A (%s)", input.Diagnosis.ImpressionsLevel)
	}
	switch input.Diagnosis.ImpressionsLevel {
	case domain.ImpressionsHigh:
		data.ImpressionsBg = "#dcfce7"
	case domain.ImpressionsLow:
		data.ImpressionsBg = "#fee2e2"
	default:
		data.ImpressionsBg = "#f3f4f6"
	}

	if input.CTR != nil {
		ctr := *input.CTR
		data.HasCTR = true
		data.CTRText = fmt.Sprintf("%.1f%% (Meta: %.1f%%)", ctr, input.CTRTarget)
		if ctr >= input.CTRTarget {
			data.CTRBg, data.CTRColor = "#dcfce7", "#16a34a"
		} else {
			data.CTRBg, data.CTRColor = "#fee2e2", "#dc2626"
		}
	}

	if input.Retention != nil {
		data.HasRetention = true
		data.RetentionText = fmt.Sprintf("%.1f%%", *input.Retention)
	}

	if input.Diagnosis.Syndrome == domain.SyndromeSuccess {
		data.VerdictColor, data.VerdictBg = "#16a34a", "#dcfce7"
	} else {
		data.VerdictColor, data.VerdictBg = "#dc2626", "#fee2e2"
	}

	body, err := executeReportTemplate("diagnosis_email.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render diagnosis email: %w", err)
	}

	return &Email{
		Subject: fmt.Sprintf("[%s] %s - %d VPH (%s)",
			input.CheckpointLabel, truncateRunes(input.Title, 50), input.VPH, verdictLevel(input.Diagnosis.Syndrome, input.VPH)),
		Body: body,
	}, nil
}

// verdictLevel mirrors the grading used in the subject line: syndrome when
// conclusive, VPH bands otherwise.
func verdictLevel(syndrome domain.Syndrome, vph int64) string {
	switch syndrome {
	case domain.SyndromeSuccess:
		return "ÉXITO"
	case domain.SyndromeFantasma, domain.SyndromeInvisible, domain.SyndromeClickbait:
		return string(syndrome)
	}
	if vph >= 20 {
		return "BUENO"
	}
	if vph >= 10 {
		return "NORMAL"
	}
	return "BAJO"
}

func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}
	return out
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
