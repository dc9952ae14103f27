package engine

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans HTML-bearing content before it is emitted unescaped.
type Sanitizer func(string) string

// NewSanitizer maps a policy name to a Sanitizer: "ugc" keeps links and
// basic formatting, "strict" strips every tag, "none" trusts the content.
func NewSanitizer(policy string) (Sanitizer, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", "ugc":
		p := bluemonday.UGCPolicy()
		p.AddTargetBlankToFullyQualifiedLinks(true)
		return p.Sanitize, nil
	case "strict":
		return bluemonday.StrictPolicy().Sanitize, nil
	case "none":
		return func(s string) string { return s }, nil
	default:
		return nil, fmt.Errorf("unknown html policy %q (want ugc, strict or none)", policy)
	}
}
