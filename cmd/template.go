package cmd

import (
	"fmt"
	"os"

	"snapshot-newsletter/internal/newsletter"
	"snapshot-newsletter/internal/newsletter/engine"

	"github.com/spf13/cobra"
)

var templateOut string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Template helpers",
}

var templateDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in template for the configured engine",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		e, err := engine.New(cfg.Render.Engine, cfg.Render.HTMLPolicy)
		if err != nil {
			return err
		}
		src := newsletter.DefaultTemplate(e.Name())
		if templateOut == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), src)
			return err
		}
		if err := os.WriteFile(templateOut, []byte(src), 0o644); err != nil {
			return fmt.Errorf("write template: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Template written to: %s\n", templateOut)
		return nil
	},
}

func init() {
	templateDefaultCmd.Flags().StringVarP(&templateOut, "output", "o", "", "write the template to a file instead of stdout")
	templateCmd.AddCommand(templateDefaultCmd)
	rootCmd.AddCommand(templateCmd)
}
