package render

import (
	"image/color"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		w, h         int
		wantW, wantH int
	}{
		{0, 0, defaultWidth, DefaultHeight},
		{100, 50, minWidth, minHeight},
		{800, 0, 800, DefaultHeight},
		{1600, 600, 1600, 600},
		{-5, -5, defaultWidth, DefaultHeight},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.w, c.h)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("input %dx%d => %dx%d want %dx%d", c.w, c.h, w, h, c.wantW, c.wantH)
		}
	}
}

func TestDrawHint_WritesText(t *testing.T) {
	img := blank(200, 60)
	before := img.RGBAAt(10, 50)
	drawHint(img, "Waiting for data...")
	changed := false
	for x := 0; x < 200 && !changed; x++ {
		for y := 30; y < 60; y++ {
			if img.RGBAAt(x, y) != before {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Fatalf("expected hint to modify pixels")
	}
	// empty text is a no-op
	clean := blank(50, 20)
	drawHint(clean, "  ")
	if clean.RGBAAt(5, 15) != (color.RGBA{R: 18, G: 18, B: 18, A: 255}) {
		t.Fatalf("blank background changed")
	}
}

func TestDrawHint_BandUsesChartTheme(t *testing.T) {
	img := drawHint(blank(200, 60), "Waiting for data...")
	// right edge of the band, clear of the text
	px := img.RGBAAt(199, 58)
	if px.R <= px.G || px.G <= px.B {
		t.Fatalf("band should be tinted with the orange area colour, got %+v", px)
	}
	if top := img.RGBAAt(199, 5); top != (color.RGBA{R: 18, G: 18, B: 18, A: 255}) {
		t.Fatalf("area above the band changed: %+v", top)
	}
}
