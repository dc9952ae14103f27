package validate

import (
	"fmt"
	"regexp"
	"strings"

	"snapshot-newsletter/internal/document"
)

// hrefWithoutProtocol flags href attributes whose value does not start with
// "h". It is a heuristic, not URL validation.
var hrefWithoutProtocol = regexp.MustCompile(`href="[^h"]`)

type rule struct {
	name  string
	check func(v *Validator, doc *document.Document) []Finding
}

// rules run in order, unconditionally, on every prepared document.
var rules = []rule{
	{"intro", checkIntro},
	{"stories", checkStories},
	{"snapshot", checkSnapshot},
	{"snap-again", checkSnapAgain},
	{"sponsor", checkSponsor},
	{"snippets", checkSnippets},
	{"speed-read", checkSpeedRead},
	{"tour-operator", checkTourOperator},
	{"placeholders", checkPlaceholders},
	{"href-protocol", checkHrefProtocol},
}

func errorf(rule, format string, args ...any) Finding {
	return Finding{Severity: SeverityError, Rule: rule, Message: fmt.Sprintf(format, args...)}
}

func warnf(rule, format string, args ...any) Finding {
	return Finding{Severity: SeverityWarning, Rule: rule, Message: fmt.Sprintf(format, args...)}
}

func checkIntro(_ *Validator, doc *document.Document) []Finding {
	if doc.Newsletter.Intro.Message == "" {
		return []Finding{errorf("intro", "Missing intro message")}
	}
	return nil
}

func checkStories(_ *Validator, doc *document.Document) []Finding {
	if len(doc.Newsletter.Stories) == 0 {
		return []Finding{errorf("stories", "Missing stories array - need at least one story")}
	}
	return nil
}

func checkSnapshot(v *Validator, doc *document.Document) []Finding {
	if len(doc.Newsletter.Stories) == 0 {
		return nil
	}
	s := doc.Newsletter.Stories[0]
	var out []Finding
	if s.Headline == "" {
		out = append(out, errorf("snapshot", "First story (SNAPSHOT) missing headline"))
	}
	if s.LeadParagraph == "" {
		out = append(out, errorf("snapshot", "First story (SNAPSHOT) missing lead_paragraph"))
	}
	if len(s.Subsections) == 0 {
		return append(out, errorf("snapshot", "First story (SNAPSHOT) missing subsections"))
	}
	keyword := strings.ToLower(v.keyword)
	for _, sub := range s.Subsections {
		if strings.Contains(strings.ToLower(sub.Title), keyword) {
			return out
		}
	}
	return append(out, warnf("snapshot", "First story missing %q subsection", "Why it matters"))
}

func checkSnapAgain(_ *Validator, doc *document.Document) []Finding {
	if len(doc.Newsletter.Stories) < 2 {
		return nil
	}
	s := doc.Newsletter.Stories[1]
	var out []Finding
	if s.Headline == "" {
		out = append(out, warnf("snap-again", "Second story (SNAP AGAIN) missing headline"))
	}
	if s.LeadParagraph == "" {
		out = append(out, warnf("snap-again", "Second story (SNAP AGAIN) missing lead_paragraph"))
	}
	return out
}

func checkSponsor(_ *Validator, doc *document.Document) []Finding {
	sp := doc.Newsletter.Sponsor
	if !sp.Enabled {
		return nil
	}
	var out []Finding
	if sp.Banner.ImageURL == "" {
		out = append(out, warnf("sponsor", "Sponsor enabled but missing banner image_url"))
	}
	if sp.Section.SponsorName == "" {
		out = append(out, warnf("sponsor", "Sponsor enabled but missing sponsor_name"))
	}
	if sp.Section.Headline == "" {
		out = append(out, warnf("sponsor", "Sponsor enabled but missing sponsor headline"))
	}
	return out
}

func checkSnippets(v *Validator, doc *document.Document) []Finding {
	snippets := doc.Newsletter.Snippets
	if len(snippets) == 0 {
		return []Finding{warnf("snippets", "No snippets found - newsletter will look incomplete")}
	}
	var out []Finding
	for i, s := range snippets {
		n := i + 1
		if s.Title == "" {
			out = append(out, warnf("snippets", "Snippet %d missing title", n))
		}
		if s.Content == "" {
			out = append(out, warnf("snippets", "Snippet %d missing content", n))
		}
		if s.BorderColor != "" && !v.validColor(s.BorderColor) {
			out = append(out, warnf("snippets", "Snippet %d has invalid border_color: %s (valid: %s)",
				n, s.BorderColor, v.Colors()))
		}
	}
	return out
}

func checkSpeedRead(_ *Validator, doc *document.Document) []Finding {
	items := doc.Newsletter.SpeedRead
	if len(items) == 0 {
		return []Finding{warnf("speed-read", "No speed read items found")}
	}
	var out []Finding
	for i, it := range items {
		if it.CompanyName == "" {
			out = append(out, warnf("speed-read", "Speed read item %d missing company_name", i+1))
		}
		if it.Content == "" {
			out = append(out, warnf("speed-read", "Speed read item %d missing content", i+1))
		}
	}
	return out
}

func checkTourOperator(_ *Validator, doc *document.Document) []Finding {
	events := doc.Newsletter.TourOperator
	if len(events) == 0 {
		return []Finding{warnf("tour-operator", "No events found in tour operator")}
	}
	var out []Finding
	for i, ev := range events {
		fields := []struct{ name, value string }{
			{"location", ev.Location},
			{"date", ev.Date},
			{"event_name", ev.EventName},
			{"event_url", ev.EventURL},
		}
		for _, f := range fields {
			if f.value == "" {
				out = append(out, warnf("tour-operator", "Event %d missing %s", i+1, f.name))
			}
		}
	}
	return out
}

func checkPlaceholders(v *Validator, doc *document.Document) []Finding {
	found := false
	document.Strings(doc.Root, func(s string) {
		if found {
			return
		}
		for _, m := range v.markers {
			if strings.Contains(s, m) {
				found = true
				return
			}
		}
	})
	if found {
		return []Finding{errorf("placeholders", "Found placeholder text that needs to be replaced")}
	}
	return nil
}

func checkHrefProtocol(_ *Validator, doc *document.Document) []Finding {
	found := false
	document.Strings(doc.Root, func(s string) {
		if !found && hrefWithoutProtocol.MatchString(s) {
			found = true
		}
	})
	if found {
		return []Finding{warnf("href-protocol", "Some URLs might be missing http:// or https://")}
	}
	return nil
}
