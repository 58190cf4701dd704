package render

// DefaultHeight is the fixed frame height the workout screen gives the chart.
const DefaultHeight = 400

const (
	minWidth     = 320
	minHeight    = 120
	defaultWidth = 1100
)

// ComputeChartDimensions applies the clamp rules for a requested canvas size.
// Zero or negative values fall back to the defaults; anything smaller than the
// minimum readable size is raised to it.
func ComputeChartDimensions(rawW, rawH int) (int, int) {
	w, h := rawW, rawH
	if w <= 0 {
		w = defaultWidth
	}
	if w < minWidth {
		w = minWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	if h < minHeight {
		h = minHeight
	}
	return w, h
}
