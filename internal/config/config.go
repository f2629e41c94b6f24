package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for nessreport.
type Config struct {
	// Default template document path, used when --template is not given
	Template string `mapstructure:"template"`

	// Default output path for the generated report
	Output string `mapstructure:"output"`

	// Report title on the statistics page
	Title string `mapstructure:"title"`

	// Chart image dimensions in pixels
	ChartWidth  int `mapstructure:"chart_width"`
	ChartHeight int `mapstructure:"chart_height"`

	// Verbose output
	Verbose bool `mapstructure:"verbose"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Template:    "REPORT_TEMPLATE.pdf",
		Output:      "vuln_report.pdf",
		Title:       "Vulnerability Assessment Report",
		ChartWidth:  512,
		ChartHeight: 320,
		Verbose:     false,
		Debug:       false,
	}
}

// Load loads configuration with the following precedence (lowest to
// highest): defaults, config file (~/.nessreport.yaml or
// ./nessreport.yaml), environment variables (NESSREPORT_*), CLI flags
// (handled by caller).
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile loads configuration from a specific file path. If path
// is empty, it searches the standard locations.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("template", defaults.Template)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("title", defaults.Title)
	v.SetDefault("chart_width", defaults.ChartWidth)
	v.SetDefault("chart_height", defaults.ChartHeight)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("debug", defaults.Debug)

	v.SetConfigName("nessreport")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, "nessreport"))
		}
	}

	v.SetEnvPrefix("NESSREPORT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine, defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Template == "" {
		return fmt.Errorf("template cannot be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("chart dimensions must be positive (got %dx%d)", c.ChartWidth, c.ChartHeight)
	}
	return nil
}

// GenerateSampleConfig generates a sample configuration file content.
func GenerateSampleConfig() string {
	return `# nessreport configuration
# Save this file as ~/.nessreport.yaml or ./nessreport.yaml

# Default template document (cover page + blank TOC page)
template: REPORT_TEMPLATE.pdf

# Default output path for the generated report
output: vuln_report.pdf

# Report title shown on the statistics page
title: Vulnerability Assessment Report

# Chart image size in pixels
chart_width: 512
chart_height: 320

# Enable verbose output
verbose: false

# Enable debug mode
debug: false
`
}
