// Package chart renders summary counts as PNG bar charts, one bar per
// severity level in fixed rank order. Rendering is deterministic:
// identical stats produce byte-identical images, so repeated runs on
// the same input yield the same report.
package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/raznan-ahamed/nessreport/internal/models"
)

// Renderer turns SummaryStats into chart images. The zero value is not
// usable; construct with New.
type Renderer struct {
	width  int
	height int
}

// New creates a renderer with the given image dimensions in pixels.
func New(width, height int) *Renderer {
	if width <= 0 {
		width = 512
	}
	if height <= 0 {
		height = 320
	}
	return &Renderer{width: width, height: height}
}

// Charts holds the rendered images for one run. PerHost is keyed by
// normalized host key and only contains hosts with at least one
// finding.
type Charts struct {
	Overall []byte
	PerHost map[string][]byte
}

// Render produces the overall chart plus one chart per host. When the
// dataset is empty it renders nothing and returns EmptyDatasetWarning;
// callers treat that as non-fatal and assemble the report without
// charts.
func (r *Renderer) Render(agg *models.Aggregate) (*Charts, error) {
	if agg.Stats.Empty() {
		return &Charts{PerHost: map[string][]byte{}}, &models.EmptyDatasetWarning{}
	}

	overall, err := r.renderCounts("Vulnerabilities by Severity", agg.Stats.Overall)
	if err != nil {
		return nil, fmt.Errorf("failed to render overall chart: %w", err)
	}

	charts := &Charts{
		Overall: overall,
		PerHost: make(map[string][]byte, len(agg.Hosts)),
	}
	for _, g := range agg.Hosts {
		png, err := r.renderCounts(g.Display+" - Vulnerabilities by Severity", agg.Stats.PerHost[g.Key])
		if err != nil {
			return nil, fmt.Errorf("failed to render chart for host %s: %w", g.Display, err)
		}
		charts.PerHost[g.Key] = png
	}
	return charts, nil
}

// renderCounts draws one bar per severity level in fixed rank order,
// filled with the severity's display color. Zero-count levels still
// get a bar slot so every chart has the same axis layout.
func (r *Renderer) renderCounts(title string, counts map[models.Severity]int) ([]byte, error) {
	bars := make([]chart.Value, 0, len(models.Severities()))
	max := 0
	for _, s := range models.Severities() {
		n := counts[s]
		if n > max {
			max = n
		}
		fill := drawing.ColorFromHex(s.Hex())
		bars = append(bars, chart.Value{
			Label: s.Label(),
			Value: float64(n),
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
				StrokeWidth: 0,
			},
		})
	}

	bc := chart.BarChart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		TitleStyle: chart.Style{
			FontSize: 11,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 32, Left: 12, Right: 12, Bottom: 8},
		},
		BarWidth:     52,
		UseBaseValue: true,
		BaseValue:    0,
		XAxis: chart.Style{
			FontSize: 8,
		},
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(max) + 1,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
