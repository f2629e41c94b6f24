package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raznan-ahamed/nessreport/internal/aggregator"
	"github.com/raznan-ahamed/nessreport/internal/loader"
	"github.com/raznan-ahamed/nessreport/internal/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <scan.csv>",
	Short: "Browse scan findings in an interactive terminal UI",
	Long: `Inspect loads the CSV and opens an interactive findings browser:
filter by host or severity, search across every field, and review
descriptions and remediations before generating the report.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	input := args[0]

	logVerbose("Loading %s", input)
	result, err := loader.Load(input)
	if err != nil {
		return err
	}
	if result.SkippedRows > 0 {
		logVerbose("Skipped %d rows without a severity value", result.SkippedRows)
	}

	agg := aggregator.Aggregate(result.Findings)
	logDebug("Aggregated %d findings across %d hosts", agg.Stats.Total, len(agg.Hosts))

	if err := tui.Run(input, agg); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
