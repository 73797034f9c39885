package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/stockplan"
)

//go:embed *.md
var templates embed.FS

// RenderNetValue renders a net value report to a markdown string.
func RenderNetValue(r *stockplan.NetValueReport) string {
	partials := map[string]string{
		"netvalue_grants": "netvalue_grants.md",
		"netvalue_loans":  "netvalue_loans.md",
	}
	return renderTemplate("netvalue", "netvalue.md", partials, r)
}

// RenderTaxes renders the taxable events of a year to a markdown string.
func RenderTaxes(r *Taxes) string {
	partials := map[string]string{
		"taxes_income":       "taxes_income.md",
		"taxes_capitalgains": "taxes_capitalgains.md",
		"taxes_sales":        "taxes_sales.md",
	}
	return renderTemplate("taxes", "taxes.md", partials, r)
}

// RenderInterest renders the yearly interest expenses to a markdown string.
func RenderInterest(r *Interest) string {
	return renderTemplate("interest", "interest.md", nil, r)
}

// RenderProjection renders a projection to a markdown string.
func RenderProjection(r *Projection) string {
	partials := map[string]string{
		"projection_events": "projection_events.md",
	}
	return renderTemplate("projection", "projection.md", partials, r)
}

// renderTemplate renders a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
