package graph

import "time"

// BuildOptions changes Build behaviour that is otherwise fixed.
type BuildOptions struct {
	// ClipMetricToWindow drops raw metric samples outside the visible window.
	// Off by default: historically only the average band is window-filtered,
	// so a metric line can start left of the frame and be cut by clipping.
	ClipMetricToWindow bool
}

// Build produces the chart description for one refresh. chartWidth is the
// visible span of time; it replaces the host app's ambient setting.
func Build(metric, average TimeSeries, cfg Configuration, chartWidth time.Duration) Chart {
	return BuildWithOptions(metric, average, cfg, chartWidth, BuildOptions{})
}

// BuildWithOptions is Build with explicit BuildOptions.
func BuildWithOptions(metric, average TimeSeries, cfg Configuration, chartWidth time.Duration, opts BuildOptions) Chart {
	st := DefaultStyle
	win := ComputeWindow(average, chartWidth)

	band := averagePoints(average, win)
	metricPts := make([]Point, 0, len(metric))
	for _, s := range metric {
		if opts.ClipMetricToWindow && !win.Contains(s.Second) {
			continue
		}
		metricPts = append(metricPts, Point{X: s.Second, Y: s.Value})
	}

	return Chart{
		Area: AreaLayer{Points: band, Fill: st.AreaFill},
		Average: LineLayer{
			Name:        st.AverageSeriesID,
			Points:      band,
			Color:       st.AverageColor,
			StrokeWidth: st.AverageWidth,
		},
		Metric: LineLayer{
			Name:        "Metric",
			Points:      metricPts,
			Color:       st.MetricColor,
			StrokeWidth: st.MetricWidth,
		},
		XAxis: XAxis{Hidden: true, Domain: win},
		YAxis: YAxis{
			Position:   AxisTrailing,
			Domain:     cfg.Scale,
			Ticks:      YTicks(cfg),
			LabelStyle: st.AxisLabel,
			GridColor:  st.GridColor,
			GridWidth:  st.GridWidth,
		},
		Clipped: true,
	}
}

// averagePoints visits each distinct second of the average series once, in
// first-seen order, and keeps those inside win. The value is the first sample
// recorded for that second, the same answer ValueAt gives, without rescanning.
func averagePoints(average TimeSeries, win Window) []Point {
	first := make(map[int]float64, len(average))
	order := make([]int, 0, len(average))
	for _, s := range average {
		if _, seen := first[s.Second]; seen {
			continue
		}
		first[s.Second] = s.Value
		order = append(order, s.Second)
	}
	out := make([]Point, 0, len(order))
	for _, sec := range order {
		if !win.Contains(sec) {
			continue
		}
		out = append(out, Point{X: sec, Y: first[sec]})
	}
	return out
}

// YTicks returns one labelled tick per configured marker, in marker order.
func YTicks(cfg Configuration) []Tick {
	ticks := make([]Tick, 0, len(cfg.YMarkers))
	for _, m := range cfg.YMarkers {
		ticks = append(ticks, Tick{Value: m, Label: FormatYLabel(m, cfg.FormatAsPercentage)})
	}
	return ticks
}
