package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/raznan-ahamed/nessreport/internal/aggregator"
	"github.com/raznan-ahamed/nessreport/internal/assemble"
	"github.com/raznan-ahamed/nessreport/internal/chart"
	"github.com/raznan-ahamed/nessreport/internal/compose"
	"github.com/raznan-ahamed/nessreport/internal/loader"
	"github.com/raznan-ahamed/nessreport/internal/models"
	"github.com/raznan-ahamed/nessreport/internal/reporter"
)

// PipelineConfig holds options for one report generation run.
type PipelineConfig struct {
	Input       string
	Template    string
	Output      string
	Title       string
	KeepCharts  string // directory for chart PNGs, empty = don't persist
	ChartWidth  int
	ChartHeight int
	CheckOnly   bool // validate inputs and dry-run the pipeline, write nothing
}

// RunPipeline executes the report pipeline: validate paths → load →
// aggregate → render charts → compose sections → assemble. It returns
// the run summary even alongside warnings; fatal errors abort before
// any output file exists.
func RunPipeline(pcfg PipelineConfig) (*reporter.Summary, error) {
	if err := validatePaths(pcfg); err != nil {
		return nil, err
	}

	summary := &reporter.Summary{
		RunID:     uuid.New().String()[:8],
		Input:     pcfg.Input,
		Template:  pcfg.Template,
		Output:    pcfg.Output,
		CheckOnly: pcfg.CheckOnly,
	}

	// Step 1: Load
	res, err := loader.Load(pcfg.Input)
	if err != nil {
		logError("Failed to load input: %v", err)
		return nil, err
	}
	summary.TotalRows = res.TotalRows
	summary.SkippedRows = res.SkippedRows
	if res.SkippedRows > 0 {
		summary.Warnings = append(summary.Warnings,
			fmt.Sprintf("%d row(s) skipped: blank severity", res.SkippedRows))
	}
	logVerbose("loaded %d findings from %d rows", len(res.Findings), res.TotalRows)

	// Step 2: Aggregate
	agg := aggregator.Aggregate(res.Findings)
	summary.FromAggregate(agg)
	logVerbose("grouped into %d host(s)", len(agg.Hosts))

	// Step 3: Render charts. An empty dataset is a warning, not an
	// error: the report is still produced without charts.
	charts, err := chart.New(pcfg.ChartWidth, pcfg.ChartHeight).Render(agg)
	if err != nil {
		if _, ok := err.(*models.EmptyDatasetWarning); !ok {
			logError("Failed to render charts: %v", err)
			return nil, err
		}
		summary.Warnings = append(summary.Warnings, err.Error())
	}
	if charts.Overall != nil {
		summary.Charts = 1 + len(charts.PerHost)
	}
	logVerbose("rendered %d chart(s)", summary.Charts)

	if pcfg.KeepCharts != "" && summary.Charts > 0 {
		if err := persistCharts(pcfg.KeepCharts, charts); err != nil {
			logError("Failed to persist charts: %v", err)
			return nil, err
		}
		logVerbose("chart images kept in %s", pcfg.KeepCharts)
	}

	// Step 4: Compose sections
	sections := compose.Sections(agg, charts)

	// Step 5: Assemble
	asm := assemble.New(assemble.Options{Title: pcfg.Title, RunID: summary.RunID})
	if pcfg.CheckOnly {
		if err := asm.CheckTemplate(pcfg.Template); err != nil {
			logError("Template check failed: %v", err)
			return nil, err
		}
		logVerbose("template contract satisfied, skipping write")
		return summary, nil
	}

	if err := asm.Assemble(sections, pcfg.Template, pcfg.Output); err != nil {
		logError("Failed to assemble report: %v", err)
		return nil, err
	}
	logVerbose("report written to %s", pcfg.Output)

	return summary, nil
}

// validatePaths fails fast with a path-specific error before any
// aggregation work begins.
func validatePaths(pcfg PipelineConfig) error {
	if _, err := os.Stat(pcfg.Input); err != nil {
		return fmt.Errorf("input file %s: %w", pcfg.Input, err)
	}
	if _, err := os.Stat(pcfg.Template); err != nil {
		return fmt.Errorf("template file %s: %w", pcfg.Template, err)
	}
	if !pcfg.CheckOnly {
		outDir := filepath.Dir(pcfg.Output)
		if info, err := os.Stat(outDir); err != nil {
			return fmt.Errorf("output directory %s: %w", outDir, err)
		} else if !info.IsDir() {
			return fmt.Errorf("output directory %s: not a directory", outDir)
		}
	}
	return nil
}

// persistCharts writes the chart PNGs next to the report for reuse in
// other documents.
func persistCharts(dir string, charts *chart.Charts) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create charts directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "overall.png"), charts.Overall, 0644); err != nil {
		return fmt.Errorf("failed to write overall chart: %w", err)
	}
	for host, png := range charts.PerHost {
		name := chartFileName(host)
		if err := os.WriteFile(filepath.Join(dir, name), png, 0644); err != nil {
			return fmt.Errorf("failed to write chart for %s: %w", host, err)
		}
	}
	return nil
}

// chartFileName derives a safe file name from a host key.
func chartFileName(host string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, host)
	return safe + "_chart.png"
}
