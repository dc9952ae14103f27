package config

import "strings"

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RenderConfig controls how templates are compiled and executed.
type RenderConfig struct {
	Engine     string `mapstructure:"engine"`      // html or django
	HTMLPolicy string `mapstructure:"html_policy"` // ugc, strict or none
}

// ValidationConfig holds the constants the validation rules are parameterized by.
type ValidationConfig struct {
	ValidColors               []string `mapstructure:"valid_colors"`
	RequiredSubsectionKeyword string   `mapstructure:"required_subsection_keyword"`
	PlaceholderMarkers        []string `mapstructure:"placeholder_markers"`
}

// PreviewConfig controls the local preview server.
type PreviewConfig struct {
	Addr         string `mapstructure:"addr"`
	PollInterval string `mapstructure:"poll_interval"` // duration string, e.g., "2s"
}

// Config is the top-level configuration structure.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Render     RenderConfig     `mapstructure:"render"`
	Validation ValidationConfig `mapstructure:"validation"`
	Preview    PreviewConfig    `mapstructure:"preview"`
}

// DefaultValidColors is the snippet border palette.
var DefaultValidColors = []string{"green", "blue", "red", "yellow", "purple"}

// DefaultPlaceholderMarkers are the instructional markers editors must replace.
var DefaultPlaceholderMarkers = []string{"[IMAGE_URL]", "[Insert", "[Enter "}

// Default returns a Config with every default applied.
func Default() Config {
	var c Config
	c.FillDefaults()
	return c
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	c.Render.Engine = strings.ToLower(strings.TrimSpace(c.Render.Engine))
	if c.Render.Engine == "" {
		c.Render.Engine = "html"
	}
	c.Render.HTMLPolicy = strings.ToLower(strings.TrimSpace(c.Render.HTMLPolicy))
	if c.Render.HTMLPolicy == "" {
		c.Render.HTMLPolicy = "ugc"
	}
	if len(c.Validation.ValidColors) == 0 {
		c.Validation.ValidColors = append([]string(nil), DefaultValidColors...)
	}
	if c.Validation.RequiredSubsectionKeyword == "" {
		c.Validation.RequiredSubsectionKeyword = "matter"
	}
	if len(c.Validation.PlaceholderMarkers) == 0 {
		c.Validation.PlaceholderMarkers = append([]string(nil), DefaultPlaceholderMarkers...)
	}
	if c.Preview.Addr == "" {
		c.Preview.Addr = "127.0.0.1:8080"
	}
	if c.Preview.PollInterval == "" {
		c.Preview.PollInterval = "2s"
	}
}
