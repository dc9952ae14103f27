package cmd

import (
	"log/slog"

	"snapshot-newsletter/internal/validate"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <json-file>",
	Short: "Check a newsletter document against the editorial checklist",
	Long: "Validate parses the document, then reports every error and warning.\n" +
		"Exits non-zero when the document cannot be parsed or has errors;\n" +
		"warnings alone do not fail the command.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := newReporter(cmd)
		if err != nil {
			return err
		}
		v := validate.New(GetConfig().Validation)

		rep.Progress("Validating newsletter data...\n")
		doc, pre := validate.Prepare(args[0])
		if pre != nil {
			rep.Prerequisite(pre)
			return reported(cmd, pre)
		}

		res := v.Check(doc)
		rep.Validation(res)
		slog.Debug("validation finished", "document", args[0], "outcome", res.Outcome(),
			"errors", len(res.Errors), "warnings", len(res.Warnings))
		if res.Outcome().Blocking() {
			return reported(cmd, validate.ErrBlocking)
		}
		return nil
	},
}

// reported returns err for the exit status without cobra printing it again.
func reported(cmd *cobra.Command, err error) error {
	cmd.SilenceErrors = true
	return err
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
