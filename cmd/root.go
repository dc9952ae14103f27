package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"snapshot-newsletter/internal/config"
	"snapshot-newsletter/internal/logger"
	"snapshot-newsletter/internal/report"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	reportFormat string
	noColor      bool
	appCfg       config.Config
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "snapshot-newsletter",
	Short: "Validate and render the Snapshot newsletter",
	Long: "Validate a newsletter JSON document against the editorial checklist,\n" +
		"then merge it into an HTML template.",
	// Argument errors print usage; runtime failures only print the error.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("engine", "", "template engine: html or django")
	pf.String("html-policy", "", "sanitizing policy for rich content: ugc, strict or none")
	pf.StringVar(&reportFormat, "format", "text", "report format: text, json or yaml")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")

	v := viper.GetViper()
	_ = v.BindPFlag("app.log_level", pf.Lookup("log-level"))
	_ = v.BindPFlag("render.engine", pf.Lookup("engine"))
	_ = v.BindPFlag("render.html_policy", pf.Lookup("html-policy"))
}

func initConfig() {
	// .env is optional
	_ = godotenv.Load()

	v := viper.GetViper()
	setDefaults(v)
	v.SetEnvPrefix("SNAPSHOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/snapshot-newsletter")
		v.AddConfigPath("configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
	}

	appCfg = config.Config{}
	if err := v.Unmarshal(&appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing config: %v\n", err)
		os.Exit(1)
	}

	appCfg.FillDefaults()
	slog.SetDefault(logger.New(appCfg.App.LogLevel, os.Stderr))
	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("using config file", "path", used)
	}
}

// setDefaults registers every key so environment variables can override it.
func setDefaults(v *viper.Viper) {
	d := config.Default()
	v.SetDefault("app.log_level", d.App.LogLevel)
	v.SetDefault("render.engine", d.Render.Engine)
	v.SetDefault("render.html_policy", d.Render.HTMLPolicy)
	v.SetDefault("validation.valid_colors", d.Validation.ValidColors)
	v.SetDefault("validation.required_subsection_keyword", d.Validation.RequiredSubsectionKeyword)
	v.SetDefault("validation.placeholder_markers", d.Validation.PlaceholderMarkers)
	v.SetDefault("preview.addr", d.Preview.Addr)
	v.SetDefault("preview.poll_interval", d.Preview.PollInterval)
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}

// newReporter builds the reporter selected by --format for cmd's streams.
func newReporter(cmd *cobra.Command) (report.Reporter, error) {
	return report.New(reportFormat, cmd.OutOrStdout(), cmd.ErrOrStderr(), !noColor)
}
