// Package report renders the evaluation outcome as a printable HTML document.
// It is a presentation transform only; it never changes the computed values.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Meta carries the document-level fields that are not part of the
// calculation itself.
type Meta struct {
	FarmerID    string
	GeneratedAt time.Time
}

// Renderer renders evaluation results into the report template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded report template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("report.html").Funcs(template.FuncMap{
		"liters": func(v float64) string { return fmt.Sprintf("%.1f", math.Abs(v)) },
		"grams":  func(v float64) string { return fmt.Sprintf("%.0f", v) },
		"kg":     func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"mcal":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type templateData struct {
	Meta   Meta
	Result *models.EvaluationResult
}

// Render produces the HTML report for one evaluation result.
func (r *Renderer) Render(result *models.EvaluationResult, meta Meta) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("nil evaluation result")
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, templateData{Meta: meta, Result: result}); err != nil {
		return nil, fmt.Errorf("execute report template: %w", err)
	}
	return buf.Bytes(), nil
}
