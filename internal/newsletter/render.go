// Package newsletter merges a newsletter document into an HTML template.
package newsletter

import (
	_ "embed"
	"log/slog"
	"os"

	"snapshot-newsletter/internal/document"
	"snapshot-newsletter/internal/newsletter/engine"
	"snapshot-newsletter/internal/report"
)

//go:embed newsletter.html.tmpl
var defaultHTMLTemplate string

//go:embed newsletter.django.html
var defaultDjangoTemplate string

// DefaultTemplate returns the built-in template for the named engine.
func DefaultTemplate(engineName string) string {
	if engineName == engine.NameDjango {
		return defaultDjangoTemplate
	}
	return defaultHTMLTemplate
}

// Renderer renders documents with a template engine. It performs no
// validation: absent fields render as empty slots.
type Renderer struct {
	engine   engine.Engine
	reporter report.Reporter
}

// NewRenderer creates a Renderer. A nil reporter discards progress output.
func NewRenderer(e engine.Engine, r report.Reporter) *Renderer {
	if r == nil {
		r = report.Nop{}
	}
	return &Renderer{engine: e, reporter: r}
}

// Engine returns the template engine in use.
func (r *Renderer) Engine() engine.Engine { return r.engine }

// Render merges data into the template source. It has no side effects.
func (r *Renderer) Render(source string, data map[string]any) (string, error) {
	return r.engine.RenderString(source, data)
}

// RenderDocument renders doc with the template source.
func (r *Renderer) RenderDocument(source string, doc *document.Document) (string, error) {
	return r.Render(source, doc.Data)
}

// RenderFile reads the document and template, renders, and writes the result
// to outputPath, replacing any existing file.
func (r *Renderer) RenderFile(jsonPath, templatePath, outputPath string) (document.Stats, error) {
	r.reporter.Progress("Reading JSON data from: " + jsonPath)
	doc, err := document.Load(jsonPath)
	if err != nil {
		return document.Stats{}, err
	}

	r.reporter.Progress("Reading HTML template from: " + templatePath)
	src, err := os.ReadFile(templatePath)
	if err != nil {
		return document.Stats{}, &document.IOError{Op: "read", Path: templatePath, Err: err}
	}

	r.reporter.Progress("Compiling template...")
	tmpl, err := r.engine.Compile(string(src))
	if err != nil {
		return document.Stats{}, err
	}

	r.reporter.Progress("Generating newsletter HTML...")
	html, err := tmpl.Execute(doc.Data)
	if err != nil {
		return document.Stats{}, err
	}

	r.reporter.Progress("Writing output to: " + outputPath)
	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return document.Stats{}, &document.IOError{Op: "write", Path: outputPath, Err: err}
	}
	slog.Debug("generate: newsletter written", "engine", r.engine.Name(), "output", outputPath, "bytes", len(html))

	stats := doc.Newsletter.Stats()
	r.reporter.Rendered(outputPath, stats)
	return stats, nil
}
