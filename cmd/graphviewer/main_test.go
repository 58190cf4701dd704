package main

import (
	"testing"
	"time"

	"github.com/iafilius/WorkoutGraph/src/graph"
	"github.com/iafilius/WorkoutGraph/src/preview"
	"github.com/iafilius/WorkoutGraph/src/render"
)

func TestStatusText(t *testing.T) {
	if got := statusText(graph.SpeedConfiguration(), nil, nil); got != "waiting for data" {
		t.Fatalf("empty status got %q", got)
	}
	metric := graph.TimeSeries{{Second: 754, Value: 6.2}}
	avg := graph.TimeSeries{{Second: 754, Value: 5.9}}
	if got := statusText(graph.SpeedConfiguration(), metric, avg); got != "t=12:34  now 6.2  avg 5.9" {
		t.Fatalf("speed status got %q", got)
	}
	if got := statusText(graph.InclineConfiguration(), metric, nil); got != "t=12:34  now 6.2%" {
		t.Fatalf("incline status got %q", got)
	}
}

func TestFrame_GrowsWithProvider(t *testing.T) {
	st := &viewerState{
		cfg:        graph.SpeedConfiguration(),
		chartWidth: time.Minute,
		provider:   preview.NewProvider(preview.KindSpeed, 1),
		width:      640,
	}
	img, text := st.frame()
	if text != "waiting for data" {
		t.Fatalf("fresh provider status got %q", text)
	}
	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != render.DefaultHeight {
		t.Fatalf("frame size got %v", img.Bounds())
	}
	for i := 0; i < 5; i++ {
		st.provider.Next()
	}
	if _, text = st.frame(); text == "waiting for data" {
		t.Fatalf("expected live status after samples")
	}
}

func TestWindowTitle_ASCII(t *testing.T) {
	got := windowTitle("incline")
	if got != "Workout Graph - incline" {
		t.Fatalf("title got %q", got)
	}
	for _, r := range got {
		if r > 0x7f {
			t.Fatalf("title has non-ASCII rune %q", r)
		}
	}
}
