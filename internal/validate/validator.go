// Package validate checks newsletter documents against a fixed rule table.
//
// Validation runs in two phases. Prepare fails fast on documents that cannot
// be read, parsed, or lack the "newsletter" root. Check then evaluates every
// rule and collects all findings; rules never stop each other.
package validate

import (
	"log/slog"
	"strings"

	"snapshot-newsletter/internal/config"
	"snapshot-newsletter/internal/document"
)

// Validator evaluates the rule table with configurable constants.
type Validator struct {
	colors  []string
	keyword string
	markers []string
}

// New creates a Validator. Empty settings fall back to the defaults.
func New(cfg config.ValidationConfig) *Validator {
	c := config.Config{Validation: cfg}
	c.FillDefaults()
	return &Validator{
		colors:  c.Validation.ValidColors,
		keyword: c.Validation.RequiredSubsectionKeyword,
		markers: c.Validation.PlaceholderMarkers,
	}
}

// Check runs every rule against doc.
func (v *Validator) Check(doc *document.Document) Result {
	res := Result{Summary: doc.Newsletter.Stats()}
	for _, r := range rules {
		fs := r.check(v, doc)
		for _, f := range fs {
			res.add(f)
		}
		if len(fs) > 0 {
			slog.Debug("validate: rule reported findings", "rule", r.name, "count", len(fs))
		}
	}
	return res
}

// CheckFile runs both phases on the document at path.
func (v *Validator) CheckFile(path string) (Result, *Prerequisite) {
	doc, pre := Prepare(path)
	if pre != nil {
		return Result{}, pre
	}
	return v.Check(doc), nil
}

func (v *Validator) validColor(c string) bool {
	for _, vc := range v.colors {
		if c == vc {
			return true
		}
	}
	return false
}

// Colors returns the accepted snippet border colors.
func (v *Validator) Colors() string {
	return strings.Join(v.colors, ", ")
}
