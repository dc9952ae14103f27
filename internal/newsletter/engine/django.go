package engine

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var registerFilters sync.Once

// Django renders pongo2 (Django syntax) sources. Snippet colors are picked
// with the eq filter: {% if snippet.border_color|eq:"green" %}.
type Django struct {
	set      *pongo2.TemplateSet
	sanitize Sanitizer
}

// NewDjango creates a pongo2 engine. Template inheritance and includes are
// resolved relative to the working directory.
func NewDjango(sanitize Sanitizer) *Django {
	registerFilters.Do(func() {
		// pongo2 filters are process-wide; eq and inc do not depend on the policy.
		if !pongo2.FilterExists("eq") {
			_ = pongo2.RegisterFilter("eq", func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
				return pongo2.AsValue(Equal(in.Interface(), param.Interface())), nil
			})
		}
		if !pongo2.FilterExists("inc") {
			_ = pongo2.RegisterFilter("inc", func(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
				return pongo2.AsValue(toInt(in.Interface()) + 1), nil
			})
		}
	})
	return &Django{
		set:      pongo2.NewSet("newsletter", pongo2.MustNewLocalFileSystemLoader("")),
		sanitize: sanitize,
	}
}

func (e *Django) Name() string { return NameDjango }

func (e *Django) Compile(source string) (Template, error) {
	tmpl, err := e.set.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("django: parse template: %w", err)
	}
	return djangoTemplate{tmpl: tmpl, sanitize: e.sanitize}, nil
}

func (e *Django) RenderString(source string, data map[string]any, out ...io.Writer) (string, error) {
	tmpl, err := e.Compile(source)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(data, out...)
}

type djangoTemplate struct {
	tmpl     *pongo2.Template
	sanitize Sanitizer
}

func (t djangoTemplate) Execute(data map[string]any, out ...io.Writer) (string, error) {
	ctx := make(pongo2.Context, len(data)+1)
	for k, v := range data {
		ctx[k] = v
	}
	// rich is a context function so each engine keeps its own policy.
	ctx["rich"] = func(v any) *pongo2.Value {
		return pongo2.AsSafeValue(t.sanitize(toText(v)))
	}
	var buf bytes.Buffer
	if err := t.tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("django: execute template: %w", err)
	}
	rendered := buf.String()
	if err := writeAll(rendered, out); err != nil {
		return "", err
	}
	return rendered, nil
}
