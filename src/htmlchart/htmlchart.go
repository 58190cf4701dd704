// Package htmlchart writes a graph.Chart as a standalone ECharts HTML page.
package htmlchart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/iafilius/WorkoutGraph/src/graph"
)

// Height matches the fixed frame height of the workout screen.
const Height = "400px"

// Write renders c to w. It returns graph.ErrNoData for an empty chart.
func Write(w io.Writer, c graph.Chart, title string) error {
	if c.Empty() {
		return graph.ErrNoData
	}
	if err := NewLine(c, title).Render(w); err != nil {
		return fmt.Errorf("render html chart: %w", err)
	}
	return nil
}

// NewLine builds the ECharts line chart for c. Y-axis markers become mark
// lines on the top-most series, so the built-in labels and split lines are off.
func NewLine(c graph.Chart, title string) *charts.Line {
	line := charts.NewLine()
	bg := graph.DefaultStyle.Background.Hex()
	position := "right"
	if c.YAxis.Position == graph.AxisLeading {
		position = "left"
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       title,
			Width:           "100%",
			Height:          Height,
			BackgroundColor: bg,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Show: opts.Bool(!c.XAxis.Hidden),
			Min:  c.XAxis.Domain.Min,
			Max:  c.XAxis.Domain.Max,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			Position:  position,
			Min:       c.YAxis.Domain.Min,
			Max:       c.YAxis.Domain.Max,
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(false)},
		}),
	)

	noSymbol := charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)})
	markers := markerOpts(c.YAxis)

	if len(c.Average.Points) > 0 {
		avgOpts := []charts.SeriesOpts{
			noSymbol,
			charts.WithLineStyleOpts(opts.LineStyle{Color: c.Average.Color.Hex(), Width: float32(c.Average.StrokeWidth)}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Color: c.Area.Fill.Top.Hex(), Opacity: float32(c.Area.Fill.Top.Opacity() / 2)}),
		}
		if len(c.Metric.Points) == 0 {
			// no metric line to hang the markers on
			avgOpts = append(avgOpts, markers...)
		}
		line.AddSeries(c.Average.Name, lineData(c.Average.Points), avgOpts...)
	}
	if len(c.Metric.Points) > 0 {
		metricOpts := []charts.SeriesOpts{
			noSymbol,
			charts.WithLineStyleOpts(opts.LineStyle{Color: c.Metric.Color.Hex(), Width: float32(c.Metric.StrokeWidth)}),
		}
		line.AddSeries(c.Metric.Name, lineData(c.Metric.Points), append(metricOpts, markers...)...)
	}
	return line
}

func markerOpts(y graph.YAxis) []charts.SeriesOpts {
	if len(y.Ticks) == 0 {
		return nil
	}
	items := make([]opts.MarkLineNameYAxisItem, 0, len(y.Ticks))
	for _, t := range y.Ticks {
		items = append(items, opts.MarkLineNameYAxisItem{Name: t.Label, YAxis: t.Value})
	}
	return []charts.SeriesOpts{
		charts.WithMarkLineNameYAxisItemOpts(items...),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol:    []string{"none"},
			LineStyle: &opts.LineStyle{Color: y.GridColor.Hex(), Width: float32(y.GridWidth), Type: "solid"},
			Label: &opts.Label{
				Show:      opts.Bool(true),
				Position:  "end",
				Formatter: "{b}",
				Color:     y.LabelStyle.Color.Hex(),
			},
		}),
	}
}

func lineData(pts []graph.Point) []opts.LineData {
	out := make([]opts.LineData, len(pts))
	for i, p := range pts {
		out[i] = opts.LineData{Value: []interface{}{p.X, p.Y}}
	}
	return out
}
