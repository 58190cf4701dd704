package graph

// Color is a straight (non-premultiplied) RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Gradient is a vertical fill from Top to Bottom.
type Gradient struct {
	Top    Color
	Bottom Color
}

// TextStyle is the label treatment used by axis labels.
type TextStyle struct {
	Color    Color
	FontSize float64
	Bold     bool
}

// Style collects the fixed visual treatment of the chart.
type Style struct {
	AreaFill        Gradient
	AverageColor    Color
	AverageWidth    float64
	MetricColor     Color
	MetricWidth     float64
	AxisLabel       TextStyle
	GridColor       Color
	GridWidth       float64
	Background      Color
	AverageSeriesID string
}

var (
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 255}
	// chart foreground / secondary / accent follow the app's orange-on-dark theme
	ColorChartForeground = Color{R: 255, G: 122, B: 26, A: 230}
	ColorChartSecondary  = Color{R: 255, G: 122, B: 26, A: 20}
	ColorAccent          = Color{R: 255, G: 94, B: 0, A: 255}
	ColorBackground      = Color{R: 18, G: 18, B: 18, A: 255}
)

// DefaultStyle is the only style the chart uses; it is exported so backends
// can read the background colour.
var DefaultStyle = Style{
	AreaFill:     Gradient{Top: ColorChartForeground, Bottom: ColorChartSecondary},
	AverageColor: ColorAccent,
	AverageWidth: 10,
	MetricColor:  ColorWhite,
	MetricWidth:  7,
	AxisLabel:    TextStyle{Color: ColorWhite, FontSize: 15, Bold: true},
	GridColor:    ColorWhite,
	GridWidth:    1,
	Background:   ColorBackground,

	AverageSeriesID: "A",
}

// Hex returns the colour as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0f]
	}
	return string(b)
}

// Opacity returns alpha as a fraction in [0,1].
func (c Color) Opacity() float64 { return float64(c.A) / 255 }
