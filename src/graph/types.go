// Package graph turns a workout metric history and its rolling average into a
// backend-neutral description of a scrolling chart: a shaded average band, an
// average line, a raw metric line and a Y axis drawn only at configured markers.
//
// Everything here is a pure function of its inputs. Nothing is cached between
// calls; callers rebuild the chart on every refresh.
package graph

import "errors"

// ErrNoData is what backends return when asked to draw an empty Chart.
var ErrNoData = errors.New("chart has no data to draw")

// Sample is one per-second reading. Second counts from the start of the workout.
type Sample struct {
	Second int
	Value  float64
}

// TimeSeries is a chronological list of samples. Gaps are allowed and simply
// produce missing points; duplicate seconds are allowed but only the first is
// observed by ValueAt.
type TimeSeries []Sample

// Scale is the closed Y-axis domain [Min, Max].
type Scale struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the closed range.
func (s Scale) Contains(v float64) bool { return v >= s.Min && v <= s.Max }

// Configuration is the display policy for a single chart.
type Configuration struct {
	Scale    Scale
	YMarkers []float64
	// A general formatter would be overkill for two cases; the flag picks
	// percentage labels (one decimal) over plain numbers.
	FormatAsPercentage bool
}

// Window is the closed range of seconds visible on the X axis.
type Window struct {
	Min int
	Max int
}

// Contains reports whether second falls inside the window (bounds inclusive).
func (w Window) Contains(second int) bool { return second >= w.Min && second <= w.Max }

// Span returns Max-Min.
func (w Window) Span() int { return w.Max - w.Min }

// Point is a resolved (second, value) pair ready to be drawn.
type Point struct {
	X int
	Y float64
}

// AxisPosition is where Y-axis labels sit relative to the plot.
type AxisPosition int

const (
	AxisLeading AxisPosition = iota
	AxisTrailing
)

// Chart is the full drawable description produced by Build. Backends in
// src/render, src/htmlchart and src/termchart consume it.
type Chart struct {
	Area    AreaLayer
	Average LineLayer
	Metric  LineLayer
	XAxis   XAxis
	YAxis   YAxis
	// Clipped means nothing may be drawn outside the chart frame.
	Clipped bool
}

// Empty reports whether no layer has anything to draw.
func (c Chart) Empty() bool {
	return len(c.Area.Points) == 0 && len(c.Average.Points) == 0 && len(c.Metric.Points) == 0
}

// AreaLayer is a filled band from the axis baseline up to each point.
type AreaLayer struct {
	Points []Point
	Fill   Gradient
}

// LineLayer is a polyline connecting consecutive points.
type LineLayer struct {
	Name        string
	Points      []Point
	Color       Color
	StrokeWidth float64
}

// XAxis describes the horizontal axis. Domain is fixed; it is never auto-fitted.
type XAxis struct {
	Hidden bool
	Domain Window
}

// YAxis describes the vertical axis.
type YAxis struct {
	Position   AxisPosition
	Domain     Scale
	Ticks      []Tick
	LabelStyle TextStyle
	GridColor  Color
	GridWidth  float64
}

// Tick is a labelled gridline position.
type Tick struct {
	Value float64
	Label string
}
