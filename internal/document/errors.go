package document

import "fmt"

// ParseError reports a document that is not valid JSON (or YAML).
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse document: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a file that could not be read or written.
type IOError struct {
	Op   string // read or write
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// StructureError reports a parsed document without a "newsletter" root object.
type StructureError struct {
	Path   string
	Reason string
	Err    error
}

func (e *StructureError) Error() string {
	if e.Path == "" {
		return "invalid structure: " + e.Reason
	}
	return fmt.Sprintf("invalid structure in %s: %s", e.Path, e.Reason)
}

func (e *StructureError) Unwrap() error { return e.Err }
