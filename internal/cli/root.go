package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raznan-ahamed/nessreport/internal/config"
	"github.com/raznan-ahamed/nessreport/internal/models"
)

const (
	ExitOK           = 0 // Success
	ExitInvalidInput = 2 // Parse error, missing column, unknown severity
	ExitRuntimeError = 3 // I/O, template contract, or runtime error
)

var (
	// Global config instance
	cfg *config.Config

	// Global flags
	configFile string
	verbose    bool
	debug      bool

	// version is injected from main via SetVersion
	version = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nessreport",
	Short: "nessreport - vulnerability scan CSV to PDF report generator",
	Long: `nessreport turns a vulnerability-scanner CSV export (Nessus-style) into
a client-ready PDF report built on your own template document.

The pipeline groups findings by host and severity, renders bar charts,
and assembles severity-ordered sections with per-finding detail tables
onto the template (cover page + reserved table-of-contents page).

Quick start:
  nessreport generate scan.csv --template REPORT_TEMPLATE.pdf --output report.pdf
  nessreport check scan.csv --template REPORT_TEMPLATE.pdf
  nessreport inspect scan.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if verbose {
			cfg.Verbose = true
		}
		if debug {
			cfg.Debug = true
		}
		return nil
	},
}

// SetVersion records the build version injected by main.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(HandleError(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ~/.nessreport.yaml or ./nessreport.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"debug mode (very verbose)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nessreport %s\n", version)
		fmt.Println("Vulnerability scan CSV to PDF report generator")
	},
}

// HandleError determines the appropriate exit code for an error
func HandleError(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		parseErr    *models.ParseError
		columnErr   *models.MissingColumnError
		severityErr *models.UnknownSeverityError
	)
	if errors.As(err, &parseErr) || errors.As(err, &columnErr) || errors.As(err, &severityErr) {
		return ExitInvalidInput
	}
	return ExitRuntimeError
}

// logVerbose prints a message if verbose mode is enabled
func logVerbose(format string, args ...interface{}) {
	if cfg != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
	}
}

// logDebug prints a message if debug mode is enabled
func logDebug(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// logError prints an error message
func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
