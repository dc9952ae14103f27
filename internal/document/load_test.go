package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "issue.json", `{
  "newsletter": {
    "intro": {"message": "Hello"},
    "stories": [{"headline": "H", "lead_paragraph": "L", "subsections": [{"title": "Why it matters"}]}],
    "sponsor": {"enabled": true},
    "snippets": [{"title": "S", "content": "C", "border_color": "green"}],
    "issue_number": 42
  }
}`)
	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, doc.Path)
	require.Equal(t, "Hello", doc.Newsletter.Intro.Message)
	require.Len(t, doc.Newsletter.Stories, 1)
	require.Equal(t, "Why it matters", doc.Newsletter.Stories[0].Subsections[0].Title)
	require.True(t, doc.Newsletter.Sponsor.Enabled)
	// fields outside the typed model survive in Data for templates
	require.Contains(t, doc.Data, "issue_number")
	require.Equal(t, "42", doc.Data["issue_number"].(interface{ String() string }).String())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "issue.yaml", `newsletter:
  intro:
    message: Hello
  stories:
    - headline: H
      lead_paragraph: L
`)
	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Hello", doc.Newsletter.Intro.Message)
	require.Equal(t, "H", doc.Newsletter.Stories[0].Headline)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	require.Equal(t, "read", ioErr.Op)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeFile(t, "bad.json", `{"newsletter": {`)
	_, err := Load(path)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, path, pe.Path)
}

func TestParseTrailingData(t *testing.T) {
	_, err := Parse([]byte(`{"newsletter": {}} {}`), FormatJSON)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]byte("  "), FormatJSON)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestParseMissingRoot(t *testing.T) {
	for _, raw := range []string{`{}`, `{"newsletter": null}`, `{"newsletter": []}`, `[]`} {
		_, err := Parse([]byte(raw), FormatJSON)
		var se *StructureError
		require.True(t, errors.As(err, &se), "input %s", raw)
	}
}

func TestParseMistypedFieldsAreLenient(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Newsletter
	}{
		{
			name: "numeric date counts as present",
			raw:  `{"newsletter": {"tour_operator": [{"location": "Rome", "date": 20250101}]}}`,
			want: Newsletter{TourOperator: []Event{{Location: "Rome", Date: "20250101"}}},
		},
		{
			name: "string enabled is not true",
			raw:  `{"newsletter": {"sponsor": {"enabled": "true", "section": {"sponsor_name": "Acme"}}}}`,
			want: Newsletter{Sponsor: Sponsor{Section: SponsorSection{SponsorName: "Acme"}}},
		},
		{
			name: "falsy scalars are absent",
			raw:  `{"newsletter": {"intro": {"message": 0}, "snippets": [{"title": false, "content": "c"}]}}`,
			want: Newsletter{Snippets: []Snippet{{Content: "c"}}},
		},
		{
			name: "null sections and items",
			raw:  `{"newsletter": {"intro": null, "sponsor": null, "stories": [null, {"headline": "h", "subsections": null}]}}`,
			want: Newsletter{Stories: []Story{{}, {Headline: "h"}}},
		},
		{
			name: "non-array lists are empty",
			raw:  `{"newsletter": {"stories": {"headline": "x"}, "snippets": "none"}}`,
			want: Newsletter{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse([]byte(tc.raw), FormatJSON)
			require.NoError(t, err)
			require.Equal(t, tc.want, doc.Newsletter)
		})
	}
}

func TestLoadMistypedFieldKeepsRawData(t *testing.T) {
	path := writeFile(t, "issue.json", `{"newsletter": {"tour_operator": [{"date": 20250101}], "sponsor": {"enabled": "yes"}}}`)
	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "yes", doc.Data["sponsor"].(map[string]any)["enabled"])
	require.False(t, doc.Newsletter.Stats().Sponsor)
	require.Equal(t, 1, doc.Newsletter.Stats().Events)
}

func TestFormatFor(t *testing.T) {
	require.Equal(t, FormatYAML, FormatFor("a.YML"))
	require.Equal(t, FormatYAML, FormatFor("dir/a.yaml"))
	require.Equal(t, FormatJSON, FormatFor("a.json"))
	require.Equal(t, FormatJSON, FormatFor("a"))
}

func TestStats(t *testing.T) {
	n := Newsletter{
		Stories:      []Story{{}, {}},
		Sponsor:      Sponsor{Enabled: true},
		Snippets:     []Snippet{{}, {}, {}},
		TourOperator: []Event{{}},
	}
	require.Equal(t, Stats{Sponsor: true, Stories: 2, Snippets: 3, Events: 1, SecondStory: true}, n.Stats())
}

func TestStrings(t *testing.T) {
	var got []string
	Strings(map[string]any{
		"b": []any{"x", map[string]any{"c": "y"}},
		"a": 1,
	}, func(s string) { got = append(got, s) })
	require.Equal(t, []string{"a", "b", "x", "c", "y"}, got)
}
