package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snapshot-newsletter/internal/newsletter"
	"snapshot-newsletter/internal/newsletter/engine"
	"snapshot-newsletter/internal/validate"
	"snapshot-newsletter/worker"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve <json-file> [template-file]",
	Short: "Preview the rendered newsletter while editing",
	Long: "Serve renders the document on every request and re-validates it in the\n" +
		"background whenever the file changes. Without a template file the\n" +
		"built-in template for the configured engine is used.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		e, err := engine.New(cfg.Render.Engine, cfg.Render.HTMLPolicy)
		if err != nil {
			return err
		}
		interval, err := time.ParseDuration(cfg.Preview.PollInterval)
		if err != nil {
			return fmt.Errorf("invalid preview.poll_interval: %w", err)
		}
		v := validate.New(cfg.Validation)

		preview := &worker.Preview{
			Addr:         cfg.Preview.Addr,
			DocumentPath: args[0],
			Renderer:     newsletter.NewRenderer(e, nil),
			Validator:    v,
		}
		if len(args) == 2 {
			preview.TemplatePath = args[1]
		}
		watcher := &worker.Watcher{
			DocumentPath: args[0],
			Validator:    v,
			Interval:     interval,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Fprintf(cmd.OutOrStdout(), "Previewing %s at http://%s/ (Ctrl+C to stop)\n", args[0], cfg.Preview.Addr)
		return worker.NewManager(preview, watcher).Start(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from preview.addr)")
	_ = viper.BindPFlag("preview.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
