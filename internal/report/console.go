package report

import (
	"fmt"
	"io"
	"strings"

	"snapshot-newsletter/internal/document"
	"snapshot-newsletter/internal/validate"

	"github.com/charmbracelet/lipgloss"
)

const rule = 60

// Console writes human-readable lines. Styling degrades to plain text when
// the writer is not a terminal.
type Console struct {
	out    io.Writer
	errOut io.Writer
	color  bool

	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	heading lipgloss.Style
}

// NewConsole creates a Console writing reports to out and fatal messages to errOut.
func NewConsole(out, errOut io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:     out,
		errOut:  errOut,
		color:   color,
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000")),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#D69E2E")),
		heading: r.NewStyle().Bold(true),
	}
}

func (c *Console) paint(s lipgloss.Style, text string) string {
	if !c.color {
		return text
	}
	return s.Render(text)
}

func (c *Console) Progress(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) Rendered(outputPath string, s document.Stats) {
	fmt.Fprintln(c.out, c.paint(c.success, "✓ Newsletter generated successfully!"))
	fmt.Fprintf(c.out, "Output saved to: %s\n", outputPath)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.paint(c.heading, "Newsletter contents:"))
	fmt.Fprintf(c.out, "- Sponsor sections: %s\n", yesNo(s.Sponsor))
	fmt.Fprintf(c.out, "- Snippets: %d\n", s.Snippets)
	fmt.Fprintf(c.out, "- Speed read items: %d\n", s.SpeedRead)
	fmt.Fprintf(c.out, "- Events: %d\n", s.Events)
	fmt.Fprintf(c.out, "- Snap Again section: %s\n", yesNo(s.SecondStory))
}

func (c *Console) Prerequisite(p *validate.Prerequisite) {
	label := "Invalid JSON file:"
	if p.Outcome == validate.OutcomeInvalidStructure {
		label = "Invalid structure:"
	}
	fmt.Fprintf(c.errOut, "%s %v\n", c.paint(c.failure, "❌ "+label), p.Err)
}

func (c *Console) Validation(res validate.Result) {
	line := strings.Repeat("=", rule)
	fmt.Fprintln(c.out, line)

	if res.Outcome() == validate.OutcomePassed {
		fmt.Fprintln(c.out, c.paint(c.success, "✅ Validation passed! No issues found."))
		fmt.Fprintln(c.out)
		s := res.Summary
		fmt.Fprintln(c.out, c.paint(c.heading, "Newsletter structure:"))
		fmt.Fprintf(c.out, "  - Sponsor: %s\n", yesNo(s.Sponsor))
		fmt.Fprintf(c.out, "  - Stories: %d\n", s.Stories)
		fmt.Fprintf(c.out, "  - Snippets: %d\n", s.Snippets)
		fmt.Fprintf(c.out, "  - Speed read: %d\n", s.SpeedRead)
		fmt.Fprintf(c.out, "  - Events: %d\n", s.Events)
		return
	}

	if len(res.Errors) > 0 {
		fmt.Fprintln(c.out, c.paint(c.failure, "❌ ERRORS (must fix):"))
		for _, f := range res.Errors {
			fmt.Fprintf(c.out, "   - %s\n", f.Message)
		}
		fmt.Fprintln(c.out)
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintln(c.out, c.paint(c.warning, "⚠️  WARNINGS (recommended to fix):"))
		for _, f := range res.Warnings {
			fmt.Fprintf(c.out, "   - %s\n", f.Message)
		}
		fmt.Fprintln(c.out)
	}
	fmt.Fprintln(c.out, line)
	fmt.Fprintln(c.out)

	if res.Outcome().Blocking() {
		fmt.Fprintln(c.out, c.paint(c.failure, "❌ Validation failed. Please fix errors before generating."))
		return
	}
	fmt.Fprintln(c.out, c.paint(c.warning, "⚠️  Validation passed with warnings. Newsletter can be generated."))
}
