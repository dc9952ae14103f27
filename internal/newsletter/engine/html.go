package engine

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// HTML renders Go html/template sources. Interpolated values are escaped for
// their context; only the rich helper emits markup.
type HTML struct {
	funcs template.FuncMap
}

// NewHTML creates an html/template engine.
func NewHTML(sanitize Sanitizer) *HTML {
	return &HTML{funcs: template.FuncMap{
		"eq":  Equal,
		"inc": func(i any) int { return toInt(i) + 1 },
		"rich": func(v any) template.HTML {
			return template.HTML(sanitize(toText(v)))
		},
	}}
}

func (e *HTML) Name() string { return NameHTML }

func (e *HTML) Compile(source string) (Template, error) {
	tmpl, err := template.New("newsletter").Funcs(e.funcs).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("html: parse template: %w", err)
	}
	return htmlTemplate{tmpl}, nil
}

func (e *HTML) RenderString(source string, data map[string]any, out ...io.Writer) (string, error) {
	tmpl, err := e.Compile(source)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(data, out...)
}

type htmlTemplate struct {
	tmpl *template.Template
}

func (t htmlTemplate) Execute(data map[string]any, out ...io.Writer) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("html: execute template: %w", err)
	}
	rendered := buf.String()
	if err := writeAll(rendered, out); err != nil {
		return "", err
	}
	return rendered, nil
}
