package report

import (
	"encoding/json"
	"io"
	"log/slog"

	"snapshot-newsletter/internal/document"
	"snapshot-newsletter/internal/validate"

	"gopkg.in/yaml.v3"
)

// ValidationReport is the machine-readable form of a validation run.
type ValidationReport struct {
	Outcome  validate.Outcome   `json:"outcome" yaml:"outcome"`
	Error    string             `json:"error,omitempty" yaml:"error,omitempty"`
	Errors   []validate.Finding `json:"errors" yaml:"errors"`
	Warnings []validate.Finding `json:"warnings" yaml:"warnings"`
	Summary  *document.Stats    `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// RenderReport is the machine-readable form of a generate run.
type RenderReport struct {
	Output string         `json:"output" yaml:"output"`
	Stats  document.Stats `json:"stats" yaml:"stats"`
}

// NewValidationReport converts a result into its report form.
func NewValidationReport(res validate.Result) ValidationReport {
	summary := res.Summary
	return ValidationReport{
		Outcome:  res.Outcome(),
		Errors:   nonNil(res.Errors),
		Warnings: nonNil(res.Warnings),
		Summary:  &summary,
	}
}

// Structured encodes reports as JSON or YAML documents on out. Progress
// lines go to the debug log so out stays parseable.
type Structured struct {
	out    io.Writer
	format string
}

func NewStructured(out io.Writer, format string) *Structured {
	return &Structured{out: out, format: format}
}

func (s *Structured) Progress(msg string) {
	slog.Debug(msg)
}

func (s *Structured) Rendered(outputPath string, stats document.Stats) {
	s.encode(RenderReport{Output: outputPath, Stats: stats})
}

func (s *Structured) Prerequisite(p *validate.Prerequisite) {
	s.encode(ValidationReport{
		Outcome:  p.Outcome,
		Error:    p.Err.Error(),
		Errors:   []validate.Finding{},
		Warnings: []validate.Finding{},
	})
}

func (s *Structured) Validation(res validate.Result) {
	s.encode(NewValidationReport(res))
}

func (s *Structured) encode(v any) {
	var err error
	if s.format == "yaml" {
		enc := yaml.NewEncoder(s.out)
		enc.SetIndent(2)
		err = enc.Encode(v)
		if err == nil {
			err = enc.Close()
		}
	} else {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	}
	if err != nil {
		slog.Warn("report: encode failed", "format", s.format, "err", err)
	}
}

func nonNil(fs []validate.Finding) []validate.Finding {
	if fs == nil {
		return []validate.Finding{}
	}
	return fs
}
