package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/iafilius/WorkoutGraph/src/graph"
)

// blank returns a frame filled with the chart background colour.
func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(toNRGBA(graph.DefaultStyle.Background)), image.Point{}, draw.Src)
	return img
}

// drawHint writes text in a band along the bottom edge. The band uses the
// translucent area colour and the text uses the axis label colour, so the hint
// reads as part of the chart.
func drawHint(img *image.RGBA, text string) *image.RGBA {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	st := graph.DefaultStyle
	face := basicfont.Face7x13
	const inset = 5
	b := img.Bounds()
	band := image.Rect(b.Min.X, b.Max.Y-face.Height-2*inset, b.Max.X, b.Max.Y).Intersect(b)
	draw.Draw(img, band, image.NewUniform(toNRGBA(st.AreaFill.Top)), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toNRGBA(st.AxisLabel.Color)),
		Face: face,
		Dot:  fixed.P(band.Min.X+inset+1, band.Max.Y-inset-face.Descent),
	}
	d.DrawString(text)
	return img
}

func toNRGBA(c graph.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
