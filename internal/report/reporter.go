// Package report presents renderer progress and validation results.
package report

import (
	"fmt"
	"io"
	"strings"

	"snapshot-newsletter/internal/document"
	"snapshot-newsletter/internal/validate"
)

// Reporter receives everything the commands show to the user, so rendering
// and rule evaluation never write to the console themselves.
type Reporter interface {
	Progress(msg string)
	Rendered(outputPath string, stats document.Stats)
	Prerequisite(p *validate.Prerequisite)
	Validation(res validate.Result)
}

// Nop discards all output.
type Nop struct{}

func (Nop) Progress(string)                     {}
func (Nop) Rendered(string, document.Stats)     {}
func (Nop) Prerequisite(*validate.Prerequisite) {}
func (Nop) Validation(validate.Result)          {}

// New returns the reporter for format: "text" (default), "json" or "yaml".
func New(format string, out, errOut io.Writer, color bool) (Reporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return NewConsole(out, errOut, color), nil
	case "json", "yaml":
		return NewStructured(out, strings.ToLower(strings.TrimSpace(format))), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want text, json or yaml)", format)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
