package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/raznan-ahamed/nessreport/internal/reporter"
)

var (
	generateTemplate   string
	generateOutput     string
	generateTitle      string
	generateKeepCharts string
	generateJSON       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <scan.csv>",
	Short: "Generate the PDF report from a scanner CSV export",
	Long: `Generate runs the full pipeline:

  1. Load      — parse the CSV export into findings
  2. Aggregate — group by host and severity, compute counts
  3. Charts    — render the overall and per-host bar charts
  4. Compose   — build severity-ordered, color-coded sections
  5. Assemble  — merge sections into the template and write the report

The template document must carry a cover page and a blank page 2
reserved for the table of contents; the content pages are appended
after the reserved pages.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "",
		"template document (default from config)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "",
		"output file (default from config)")
	generateCmd.Flags().StringVar(&generateTitle, "title", "",
		"report title (default from config)")
	generateCmd.Flags().StringVar(&generateKeepCharts, "keep-charts", "",
		"also write chart PNGs into this directory")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false,
		"print the run summary as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	pcfg := PipelineConfig{
		Input:       args[0],
		Template:    firstNonEmpty(generateTemplate, cfg.Template),
		Output:      firstNonEmpty(generateOutput, cfg.Output),
		Title:       firstNonEmpty(generateTitle, cfg.Title),
		KeepCharts:  generateKeepCharts,
		ChartWidth:  cfg.ChartWidth,
		ChartHeight: cfg.ChartHeight,
	}

	summary, err := RunPipeline(pcfg)
	if err != nil {
		return err
	}
	return printSummary(summary, generateJSON)
}

// printSummary writes the run summary to stdout, styled when attached
// to a terminal.
func printSummary(summary *reporter.Summary, asJSON bool) error {
	if asJSON {
		return reporter.NewJSONReporter(os.Stdout, true).Generate(summary)
	}
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	return reporter.NewTextReporter(os.Stdout, styled).Generate(summary)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
