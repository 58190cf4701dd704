// Package render draws a graph.Chart with go-chart, to PNG/SVG bytes or to an
// in-memory image for the desktop viewer.
package render

import (
	"bytes"
	"fmt"
	"image"
	png "image/png"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/WorkoutGraph/src/graph"
)

// Format selects the go-chart renderer.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat accepts "png" or "svg" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unsupported render format %q", s)
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// ErrNoData is returned by Render when the chart has no drawable points.
var ErrNoData = graph.ErrNoData

// Render writes c in format f at width x height.
func Render(w io.Writer, c graph.Chart, f Format, width, height int) error {
	if c.Empty() {
		return ErrNoData
	}
	width, height = ComputeChartDimensions(width, height)
	ch := toGoChart(c, width, height)
	if err := ch.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render %s: %w", f, err)
	}
	return nil
}

// Image renders c to an image. It never fails: an empty chart or a backend
// error yields a blank frame with a short caption so the UI still refreshes.
func Image(c graph.Chart, width, height int) image.Image {
	width, height = ComputeChartDimensions(width, height)
	if c.Empty() {
		return drawHint(blank(width, height), "Waiting for data...")
	}
	var buf bytes.Buffer
	if err := Render(&buf, c, FormatPNG, width, height); err != nil {
		return drawHint(blank(width, height), "Chart unavailable: "+err.Error())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return drawHint(blank(width, height), "Chart unavailable: "+err.Error())
	}
	return img
}

func toGoChart(c graph.Chart, width, height int) chart.Chart {
	bg := toColor(graph.DefaultStyle.Background)

	xr := paddedXRange(c.XAxis.Domain)
	yr := paddedYRange(c.YAxis.Domain)

	series := []chart.Series{}
	if len(c.Area.Points) > 0 {
		fill := c.Area.Fill.Top
		// go-chart has no gradient fill; a translucent top colour is the closest match
		fill.A = fill.A / 2
		xs, ys := split(c.Area.Points)
		series = append(series, chart.ContinuousSeries{
			Name: "Average band",
			Style: chart.Style{
				StrokeColor: toColor(fill),
				StrokeWidth: 1,
				FillColor:   toColor(fill),
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(c.Average.Points) > 0 {
		series = append(series, lineSeries(c.Average))
	}
	if len(c.Metric.Points) > 0 {
		series = append(series, lineSeries(c.Metric))
	}

	labelStyle := chart.Style{
		FontSize:  c.YAxis.LabelStyle.FontSize,
		FontColor: toColor(c.YAxis.LabelStyle.Color),
	}
	gridStyle := chart.Style{
		StrokeColor: toColor(c.YAxis.GridColor),
		StrokeWidth: c.YAxis.GridWidth,
	}

	var ticks []chart.Tick
	var grid []chart.GridLine
	for _, t := range c.YAxis.Ticks {
		// clipped charts never draw outside the frame, so out-of-domain markers are dropped
		if c.Clipped && (t.Value < yr.Min || t.Value > yr.Max) {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: t.Value, Label: t.Label})
		grid = append(grid, chart.GridLine{Value: t.Value, Style: gridStyle})
	}

	return chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{FillColor: bg, Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 14}},
		Canvas:     chart.Style{FillColor: bg},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: c.XAxis.Hidden},
			Range: xr,
		},
		YAxis: chart.YAxis{
			AxisType:       chart.YAxisPrimary, // go-chart draws the primary axis on the right
			Style:          chart.Style{Hidden: len(ticks) == 0, FontSize: labelStyle.FontSize, FontColor: labelStyle.FontColor, StrokeColor: gridStyle.StrokeColor},
			Range:          yr,
			Ticks:          ticks,
			GridLines:      grid,
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
}

func lineSeries(l graph.LineLayer) chart.ContinuousSeries {
	xs, ys := split(l.Points)
	return chart.ContinuousSeries{
		Name: l.Name,
		Style: chart.Style{
			StrokeColor: toColor(l.Color),
			StrokeWidth: l.StrokeWidth,
		},
		XValues: xs,
		YValues: ys,
	}
}

// paddedXRange widens a single-second window so go-chart gets a non-zero delta.
func paddedXRange(w graph.Window) *chart.ContinuousRange {
	min, max := float64(w.Min), float64(w.Max)
	if max <= min {
		max = min + 1
	}
	return &chart.ContinuousRange{Min: min, Max: max}
}

func paddedYRange(s graph.Scale) *chart.ContinuousRange {
	min, max := s.Min, s.Max
	if max <= min {
		max = min + 1
	}
	return &chart.ContinuousRange{Min: min, Max: max}
}

func split(pts []graph.Point) ([]float64, []float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = float64(p.X)
		ys[i] = p.Y
	}
	return xs, ys
}

func toColor(c graph.Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
