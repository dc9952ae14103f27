package validate

import (
	"errors"

	"snapshot-newsletter/internal/document"
)

// ErrBlocking is returned by callers once a result with error findings has
// been reported.
var ErrBlocking = errors.New("validation failed: fix errors before generating")

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single rule violation.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Rule     string   `json:"rule" yaml:"rule"`
	Message  string   `json:"message" yaml:"message"`
}

// Outcome is the terminal state of a validation run.
type Outcome string

const (
	OutcomeInvalidJSON        Outcome = "invalid-json"
	OutcomeInvalidStructure   Outcome = "invalid-structure"
	OutcomeFailed             Outcome = "failed"
	OutcomePassedWithWarnings Outcome = "passed-with-warnings"
	OutcomePassed             Outcome = "passed"
)

// Blocking reports whether generation must not proceed.
func (o Outcome) Blocking() bool {
	switch o {
	case OutcomePassed, OutcomePassedWithWarnings:
		return false
	default:
		return true
	}
}

// Result is the output of the rule evaluation phase.
type Result struct {
	Errors   []Finding      `json:"errors" yaml:"errors"`
	Warnings []Finding      `json:"warnings" yaml:"warnings"`
	Summary  document.Stats `json:"summary" yaml:"summary"`
}

// Outcome classifies r.
func (r Result) Outcome() Outcome {
	switch {
	case len(r.Errors) > 0:
		return OutcomeFailed
	case len(r.Warnings) > 0:
		return OutcomePassedWithWarnings
	default:
		return OutcomePassed
	}
}

func (r *Result) add(f Finding) {
	if f.Severity == SeverityError {
		r.Errors = append(r.Errors, f)
		return
	}
	r.Warnings = append(r.Warnings, f)
}
