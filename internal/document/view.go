package document

import (
	"encoding/json"
	"fmt"
)

// newsletterFrom builds the typed view of the raw subtree. It never fails:
// a value of the wrong type degrades the way a truthiness check would see it.
func newsletterFrom(data map[string]any) Newsletter {
	var n Newsletter
	n.Intro.Message = text(object(data["intro"])["message"])

	for _, s := range objects(data["stories"]) {
		st := Story{
			Headline:      text(s["headline"]),
			LeadParagraph: text(s["lead_paragraph"]),
		}
		for _, sub := range objects(s["subsections"]) {
			st.Subsections = append(st.Subsections, Subsection{Title: text(sub["title"])})
		}
		n.Stories = append(n.Stories, st)
	}

	sp := object(data["sponsor"])
	// only a literal true enables the sponsor block
	n.Sponsor.Enabled, _ = sp["enabled"].(bool)
	n.Sponsor.Banner.ImageURL = text(object(sp["banner"])["image_url"])
	section := object(sp["section"])
	n.Sponsor.Section.SponsorName = text(section["sponsor_name"])
	n.Sponsor.Section.Headline = text(section["headline"])

	for _, s := range objects(data["snippets"]) {
		n.Snippets = append(n.Snippets, Snippet{
			Title:       text(s["title"]),
			Content:     text(s["content"]),
			BorderColor: text(s["border_color"]),
		})
	}
	for _, s := range objects(data["speed_read"]) {
		n.SpeedRead = append(n.SpeedRead, SpeedReadItem{
			CompanyName: text(s["company_name"]),
			Content:     text(s["content"]),
		})
	}
	for _, e := range objects(data["tour_operator"]) {
		n.TourOperator = append(n.TourOperator, Event{
			Location:  text(e["location"]),
			Date:      text(e["date"]),
			EventName: text(e["event_name"]),
			EventURL:  text(e["event_url"]),
		})
	}
	return n
}

// object returns v as an object, or nil (which reads as empty) otherwise.
func object(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// objects returns the elements of the array v as objects. Elements that are
// not objects become empty ones so item numbering stays aligned. A non-array
// value yields no elements.
func objects(v any) []map[string]any {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, e := range arr {
		out = append(out, object(e))
	}
	return out
}

// text renders a scalar as the string the rules inspect. Falsy values (null,
// false, 0 and "") become "", so they count as absent.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return ""
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return ""
		}
		return t.String()
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}
