// Package termchart draws a graph.Chart as text for terminals.
package termchart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/iafilius/WorkoutGraph/src/graph"
)

var (
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(graph.DefaultStyle.AverageColor.Hex())).
			Padding(0, 1)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(graph.DefaultStyle.AxisLabel.Color.Hex())).Bold(true)
)

// Render plots c inside a width x height character box. The average band and
// the metric line are resampled to one column per visible second; seconds with
// no sample become gaps.
func Render(c graph.Chart, width, height int, caption string) string {
	if width < 10 {
		width = 10
	}
	if height < 5 {
		height = 5
	}
	if c.Empty() {
		return frameStyle.Render(caption + "\n\nNo data")
	}

	win := c.XAxis.Domain
	avg := densify(c.Average.Points, win)
	metric := densify(c.Metric.Points, win)

	data := [][]float64{}
	colors := []asciigraph.AnsiColor{}
	if hasValue(avg) {
		data = append(data, avg)
		colors = append(colors, asciigraph.Orange)
	}
	if hasValue(metric) {
		data = append(data, metric)
		colors = append(colors, asciigraph.White)
	}
	if len(data) == 0 {
		// every point sits outside the window
		return frameStyle.Render(caption + "\n\nNo data in window")
	}

	plot := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(c.YAxis.Domain.Min),
		asciigraph.UpperBound(c.YAxis.Domain.Max),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption),
	)
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, plot, legendStyle.Render(Legend(c.YAxis))))
}

// Legend lists the configured marker labels, e.g. "markers: 3.0%, 6.0%".
func Legend(y graph.YAxis) string {
	if len(y.Ticks) == 0 {
		return "markers: none"
	}
	labels := make([]string, len(y.Ticks))
	for i, t := range y.Ticks {
		labels[i] = t.Label
	}
	return "markers: " + strings.Join(labels, ", ")
}

// densify maps pts onto one slot per second of win. The first point for a
// second wins; slots without a point hold NaN.
func densify(pts []graph.Point, win graph.Window) []float64 {
	n := win.Span() + 1
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	for _, p := range pts {
		if !win.Contains(p.X) {
			continue
		}
		i := p.X - win.Min
		if math.IsNaN(out[i]) {
			out[i] = p.Y
		}
	}
	return out
}

func hasValue(vs []float64) bool {
	for _, v := range vs {
		if !math.IsNaN(v) {
			return true
		}
	}
	return false
}
