package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return tmpl, nil
}
