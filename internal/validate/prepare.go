package validate

import (
	"errors"

	"snapshot-newsletter/internal/document"
)

// Prerequisite describes a document that failed before any rule ran.
type Prerequisite struct {
	Outcome Outcome
	Err     error
}

func (p *Prerequisite) Error() string { return p.Err.Error() }

func (p *Prerequisite) Unwrap() error { return p.Err }

// Prepare loads the document at path. A non-nil Prerequisite means the
// document is unreadable, not valid JSON, or lacks the newsletter root.
func Prepare(path string) (*document.Document, *Prerequisite) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, classify(err)
	}
	return doc, nil
}

// PrepareBytes is Prepare for an in-memory document.
func PrepareBytes(raw []byte, format document.Format) (*document.Document, *Prerequisite) {
	doc, err := document.Parse(raw, format)
	if err != nil {
		return nil, classify(err)
	}
	return doc, nil
}

func classify(err error) *Prerequisite {
	var se *document.StructureError
	if errors.As(err, &se) {
		return &Prerequisite{Outcome: OutcomeInvalidStructure, Err: err}
	}
	return &Prerequisite{Outcome: OutcomeInvalidJSON, Err: err}
}
