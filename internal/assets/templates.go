package assets

import (
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"join":    strings.Join,
	"minutes": FormatMinutes,
}

func ParseReportTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, fallbackProgressReportTemplate, progressReportTemplateName)
}

// parseTemplateWithFallback prefers templatePath and falls back to the
// embedded template when the file is missing or does not parse.
func parseTemplateWithFallback(templatePath string, fallbackTemplate string, fallbackName string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

func parseHTMLTemplate(name, text string) (*htmltemplate.Template, error) {
	tmpl, err := htmltemplate.New(name).
		Funcs(htmltemplate.FuncMap(funcMap)).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// FormatMinutes renders a duration like "1h 20m" or "45 mins".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0 mins"
	}
	if h := minutes / 60; h > 0 {
		return fmt.Sprintf("%dh %dm", h, minutes%60)
	}
	return fmt.Sprintf("%d mins", minutes)
}
