package graph

import (
	"testing"
	"time"
)

func series(secs ...int) TimeSeries {
	out := make(TimeSeries, len(secs))
	for i, s := range secs {
		out[i] = Sample{Second: s, Value: float64(s)}
	}
	return out
}

func TestComputeWindow(t *testing.T) {
	cases := []struct {
		name  string
		avg   TimeSeries
		width time.Duration
		want  Window
	}{
		{"empty", nil, 10 * time.Minute, Window{0, 0}},
		{"empty zero width", TimeSeries{}, 0, Window{0, 0}},
		{"full window", series(100, 400, 700), 600 * time.Second, Window{100, 700}},
		{"clamps to zero", series(10, 50), 10 * time.Minute, Window{0, 50}},
		{"exact fit", series(600), 600 * time.Second, Window{0, 600}},
		{"zero width", series(5, 9), 0, Window{9, 9}},
		{"negative width treated as zero", series(40), -time.Minute, Window{40, 40}},
		{"sub-second truncated", series(100), 1500 * time.Millisecond, Window{99, 100}},
		{"max not last", series(700, 300), 600 * time.Second, Window{100, 700}},
	}
	for _, c := range cases {
		got := ComputeWindow(c.avg, c.width)
		if got != c.want {
			t.Fatalf("%s: got %+v want %+v", c.name, got, c.want)
		}
	}
}

func TestComputeWindow_EmptyIgnoresWidth(t *testing.T) {
	for _, w := range []time.Duration{0, time.Second, time.Hour, 24 * time.Hour} {
		if got := ComputeWindow(nil, w); got != (Window{}) {
			t.Fatalf("width %s: expected [0,0], got %+v", w, got)
		}
	}
}

func TestValueAt_FirstMatchWins(t *testing.T) {
	s := TimeSeries{{1, 2.0}, {1, 3.0}, {2, 4.0}}
	v, ok := ValueAt(s, 1)
	if !ok || v != 2.0 {
		t.Fatalf("ValueAt(1) = %v,%v want 2.0,true", v, ok)
	}
	v, ok = ValueAt(s, 2)
	if !ok || v != 4.0 {
		t.Fatalf("ValueAt(2) = %v,%v want 4.0,true", v, ok)
	}
	if _, ok := ValueAt(s, 3); ok {
		t.Fatalf("ValueAt(3) should be absent")
	}
	if _, ok := ValueAt(nil, 0); ok {
		t.Fatalf("ValueAt on empty series should be absent")
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{Min: 100, Max: 700}
	for _, s := range []int{100, 400, 700} {
		if !w.Contains(s) {
			t.Fatalf("expected %d inside %+v", s, w)
		}
	}
	for _, s := range []int{99, 701, -1} {
		if w.Contains(s) {
			t.Fatalf("expected %d outside %+v", s, w)
		}
	}
	if w.Span() != 600 {
		t.Fatalf("span got %d", w.Span())
	}
}
