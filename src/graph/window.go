package graph

import "time"

// ComputeWindow returns the visible X range [max(0, last-width), last] where
// last is the latest second in the average series (0 when empty). Width is
// truncated to whole seconds; a negative width counts as zero.
func ComputeWindow(average TimeSeries, width time.Duration) Window {
	maxSecond := 0
	for i, s := range average {
		if i == 0 || s.Second > maxSecond {
			maxSecond = s.Second
		}
	}
	w := wholeSeconds(width)
	minSecond := maxSecond - w
	if minSecond < 0 {
		minSecond = 0
	}
	return Window{Min: minSecond, Max: maxSecond}
}

// ValueAt returns the value of the first sample at second.
func ValueAt(series TimeSeries, second int) (float64, bool) {
	for _, s := range series {
		if s.Second == second {
			return s.Value, true
		}
	}
	return 0, false
}

func wholeSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}
