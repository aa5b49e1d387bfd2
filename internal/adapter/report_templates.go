package adapter

import (
	"embed"
	"html/template"
	"strings"
	"sync"
)

//go:embed templates/*.tmpl
var reportTemplateFS embed.FS

var (
	reportTemplates *template.Template
	reportOnce      sync.Once
	reportErr       error
)

func executeReportTemplate(name string, data any) (string, error) {
	reportOnce.Do(func() {
		reportTemplates, reportErr = template.ParseFS(reportTemplateFS, "templates/*.tmpl")
	})

	if reportErr != nil {
		return "", reportErr
	}

	var builder strings.Builder
	if err := reportTemplates.ExecuteTemplate(&builder, name, data); err != nil {
		return "", err
	}

	return builder.String(), nil
}
