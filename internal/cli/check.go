package cli

import (
	"github.com/spf13/cobra"
)

var (
	checkTemplate string
	checkJSON     bool
)

var checkCmd = &cobra.Command{
	Use:   "check <scan.csv>",
	Short: "Validate the input and template without writing a report",
	Long: `Check dry-runs the pipeline: it parses the CSV, aggregates findings,
renders charts in memory, and verifies the template contract (cover
page plus reserved TOC page), but writes nothing. Use it to shake out
input problems before generating the real report.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkTemplate, "template", "t", "",
		"template document (default from config)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"print the run summary as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pcfg := PipelineConfig{
		Input:       args[0],
		Template:    firstNonEmpty(checkTemplate, cfg.Template),
		Title:       cfg.Title,
		ChartWidth:  cfg.ChartWidth,
		ChartHeight: cfg.ChartHeight,
		CheckOnly:   true,
	}

	summary, err := RunPipeline(pcfg)
	if err != nil {
		return err
	}
	return printSummary(summary, checkJSON)
}
