package cmd

import (
	"fmt"

	"snapshot-newsletter/internal/newsletter"
	"snapshot-newsletter/internal/newsletter/engine"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <json-file> <template-file> <output-file>",
	Short: "Render a newsletter document into an HTML template",
	Example: "  snapshot-newsletter generate newsletter-data.json newsletter-template.html output.html\n" +
		"  snapshot-newsletter generate --engine django issue.yaml issue.django.html out.html",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		e, err := engine.New(cfg.Render.Engine, cfg.Render.HTMLPolicy)
		if err != nil {
			return err
		}
		rep, err := newReporter(cmd)
		if err != nil {
			return err
		}
		r := newsletter.NewRenderer(e, rep)
		if _, err := r.RenderFile(args[0], args[1], args[2]); err != nil {
			return fmt.Errorf("generating newsletter: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
