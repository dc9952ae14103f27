package engine

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b any
		want bool
	}{
		{"green", "green", true},
		{"green", "blue", false},
		{nil, "green", false},
		{nil, nil, true},
		{1, 1, true},
		{1, "1", false},
		{json.Number("3"), 3, true},
		{"3", json.Number("3"), true},
		{map[string]any{}, map[string]any{}, false},
		{[]any{"a"}, []any{"a"}, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Equal(tc.a, tc.b), "Equal(%#v, %#v)", tc.a, tc.b)
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("mustache", "ugc")
	require.Error(t, err)
	_, err = New("html", "loose")
	require.Error(t, err)
}

func TestNewNames(t *testing.T) {
	for name, want := range map[string]string{"": NameHTML, "HTML": NameHTML, "django": NameDjango, "pongo2": NameDjango} {
		e, err := New(name, "")
		require.NoError(t, err)
		require.Equal(t, want, e.Name())
	}
}

func TestSanitizer(t *testing.T) {
	ugc, err := NewSanitizer("ugc")
	require.NoError(t, err)
	got := ugc(`<a href="https://example.com">link</a><script>alert(1)</script>`)
	require.Contains(t, got, `href="https://example.com"`)
	require.Contains(t, got, ">link</a>")
	require.NotContains(t, got, "script")

	strict, err := NewSanitizer("strict")
	require.NoError(t, err)
	require.Equal(t, "link", strict(`<a href="https://example.com">link</a>`))

	none, err := NewSanitizer("none")
	require.NoError(t, err)
	require.Equal(t, "<b>x</b>", none("<b>x</b>"))
}

func engines(t *testing.T) map[string]Engine {
	t.Helper()
	out := map[string]Engine{}
	for _, name := range []string{NameHTML, NameDjango} {
		e, err := New(name, "ugc")
		require.NoError(t, err)
		out[name] = e
	}
	return out
}

var colorTemplates = map[string]string{
	NameHTML:   `{{range .snippets}}[{{if eq .border_color "green"}}g{{else if eq .border_color "red"}}r{{else}}-{{end}}]{{end}}`,
	NameDjango: `{% for s in snippets %}[{% if s.border_color|eq:"green" %}g{% elif s.border_color|eq:"red" %}r{% else %}-{% endif %}]{% endfor %}`,
}

func TestColorSelection(t *testing.T) {
	data := map[string]any{"snippets": []any{
		map[string]any{"border_color": "green"},
		map[string]any{"border_color": "red"},
		map[string]any{"border_color": "orange"},
		map[string]any{},
	}}
	for name, e := range engines(t) {
		got, err := e.RenderString(colorTemplates[name], data)
		require.NoError(t, err, name)
		require.Equal(t, "[g][r][-][-]", got, name)
	}
}

var richTemplates = map[string]string{
	NameHTML:   `<p>{{.title}}</p><div>{{rich .content}}</div><i>{{.missing}}</i>`,
	NameDjango: `<p>{{ title }}</p><div>{{ rich(content) }}</div><i>{{ missing }}</i>`,
}

func TestEscapingAndRich(t *testing.T) {
	data := map[string]any{
		"title":   "Fish & <Chips>",
		"content": `<b>bold</b><script>alert(1)</script>`,
	}
	for name, e := range engines(t) {
		got, err := e.RenderString(richTemplates[name], data)
		require.NoError(t, err, name)
		require.Contains(t, got, "Fish &amp; &lt;Chips&gt;", name)
		require.Contains(t, got, "<b>bold</b>", name)
		require.NotContains(t, got, "<script>", name)
		require.Contains(t, got, "<i></i>", name)
	}
}

func TestIncAndConditionals(t *testing.T) {
	templates := map[string]string{
		NameHTML:   `{{range $i, $e := .events}}{{inc $i}}{{end}}|{{if .sponsor.enabled}}on{{else}}off{{end}}`,
		NameDjango: `{% for e in events %}{{ forloop.Counter0|inc }}{% endfor %}|{% if sponsor.enabled %}on{% else %}off{% endif %}`,
	}
	for name, e := range engines(t) {
		got, err := e.RenderString(templates[name], map[string]any{
			"events":  []any{"a", "b", "c"},
			"sponsor": map[string]any{"enabled": true},
		})
		require.NoError(t, err, name)
		require.Equal(t, "123|on", got, name)

		got, err = e.RenderString(templates[name], map[string]any{})
		require.NoError(t, err, name)
		require.Equal(t, "|off", got, name)
	}
}

func TestRenderStringWritesOut(t *testing.T) {
	e := NewHTML(func(s string) string { return s })
	var buf bytes.Buffer
	got, err := e.RenderString(`hi {{.name}}`, map[string]any{"name": "ed"}, &buf)
	require.NoError(t, err)
	require.Equal(t, "hi ed", got)
	require.Equal(t, got, buf.String())
}

func TestParseErrors(t *testing.T) {
	for name, e := range engines(t) {
		src := `{{if .x}}`
		if name == NameDjango {
			src = `{% if x %}`
		}
		_, err := e.RenderString(src, nil)
		require.Error(t, err, name)
		require.True(t, strings.HasPrefix(err.Error(), name+":"), err.Error())
	}
}

func TestCompileOnceExecuteMany(t *testing.T) {
	sources := map[string]string{
		NameHTML:   `<p>{{.name}}</p>`,
		NameDjango: `<p>{{ name }}</p>`,
	}
	for name, e := range engines(t) {
		tmpl, err := e.Compile(sources[name])
		require.NoError(t, err, name)
		for _, who := range []string{"Ada", "Grace"} {
			got, err := tmpl.Execute(map[string]any{"name": who})
			require.NoError(t, err, name)
			require.Equal(t, "<p>"+who+"</p>", got, name)
		}

		_, err = e.Compile(map[string]string{NameHTML: `{{end}}`, NameDjango: `{% endif %}`}[name])
		require.Error(t, err, name)
		require.True(t, strings.HasPrefix(err.Error(), name+": parse template"), err.Error())
	}
}
