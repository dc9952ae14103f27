// Package engine adapts template libraries to the newsletter renderer.
package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Engine compiles and executes a template source against document data.
type Engine interface {
	Name() string
	Compile(source string) (Template, error)
	RenderString(source string, data map[string]any, out ...io.Writer) (string, error)
}

// Template is a compiled template, reusable across documents.
type Template interface {
	Execute(data map[string]any, out ...io.Writer) (string, error)
}

const (
	NameHTML   = "html"
	NameDjango = "django"
)

// New returns the engine registered under name, sanitizing rich content
// with the named HTML policy.
func New(name, policy string) (Engine, error) {
	sanitize, err := NewSanitizer(policy)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameHTML:
		return NewHTML(sanitize), nil
	case NameDjango, "pongo2":
		return NewDjango(sanitize), nil
	default:
		return nil, fmt.Errorf("unknown template engine %q (want %s or %s)", name, NameHTML, NameDjango)
	}
}

// Equal is the two-argument equality helper exposed to templates as "eq".
// Values must have the same dynamic type; JSON numbers compare by their text.
func Equal(a, b any) bool {
	if an, ok := a.(json.Number); ok {
		return an.String() == fmt.Sprint(b)
	}
	if bn, ok := b.(json.Number); ok {
		return bn.String() == fmt.Sprint(a)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func writeAll(rendered string, out []io.Writer) error {
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return err
		}
	}
	return nil
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	default:
		return 0
	}
}

func toText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
