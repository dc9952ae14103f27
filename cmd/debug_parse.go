package cmd

import (
	"fmt"
	"sort"
	"strings"

	"snapshot-newsletter/internal/document"

	"github.com/spf13/cobra"
)

var debugParseCmd = &cobra.Command{
	Use:   "debug-parse <json-file>",
	Short: "Debug: parse a newsletter document and print its sections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.Load(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		keys := make([]string, 0, len(doc.Data))
		for k := range doc.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(out, "format: %s\n", document.FormatFor(args[0]))
		fmt.Fprintf(out, "newsletter keys: %s\n", strings.Join(keys, ", "))

		s := doc.Newsletter.Stats()
		fmt.Fprintf(out, "stories: %d, snippets: %d, speed read: %d, events: %d, sponsor: %t\n",
			s.Stories, s.Snippets, s.SpeedRead, s.Events, s.Sponsor)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugParseCmd)
}
