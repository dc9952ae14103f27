package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// RootKey is the top-level key every document must carry.
const RootKey = "newsletter"

// Format identifies the encoding of a document file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor infers the document format from a file name; anything that is
// not .yaml or .yml is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is a loaded newsletter file.
type Document struct {
	Path       string
	Newsletter Newsletter
	// Data is the raw "newsletter" subtree, passed to templates untouched.
	Data map[string]any
	// Root is the whole decoded file.
	Root map[string]any
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	doc, err := Parse(raw, FormatFor(path))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		var se *StructureError
		if errors.As(err, &se) {
			se.Path = path
		}
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes raw in the given format and checks the root structure. Only
// a missing or non-object "newsletter" root is a StructureError; values of an
// unexpected type inside it are left for the validator to judge.
func Parse(raw []byte, format Format) (*Document, error) {
	jsonRaw := raw
	if format == FormatYAML {
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, &ParseError{Err: err}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, &ParseError{Err: fmt.Errorf("convert yaml: %w", err)}
		}
		jsonRaw = b
	}

	root, err := decodeJSON(jsonRaw)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &StructureError{Reason: "document root must be an object"}
	}
	data, ok := obj[RootKey].(map[string]any)
	if !ok {
		return nil, &StructureError{Reason: `Missing "newsletter" root object`}
	}

	return &Document{Newsletter: newsletterFrom(data), Data: data, Root: obj}, nil
}

func decodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

// Strings calls fn for every object key and string value in v, depth first.
// Object keys are visited in sorted order.
func Strings(v any, fn func(s string)) {
	switch t := v.(type) {
	case string:
		fn(t)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fn(k)
			Strings(t[k], fn)
		}
	case []any:
		for _, e := range t {
			Strings(e, fn)
		}
	}
}
