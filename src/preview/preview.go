// Package preview fabricates treadmill histories for previews, screenshots and
// the desktop viewer. It stands in for the app's data provider: it owns the
// rolling-average calculation that the chart itself never performs.
package preview

import (
	"math"
	"math/rand"

	"github.com/iafilius/WorkoutGraph/src/graph"
)

// DefaultAverageWindow is the rolling-average span in seconds.
const DefaultAverageWindow = 30

// Kind selects which metric a history describes.
type Kind string

const (
	KindSpeed   Kind = "speed"
	KindIncline Kind = "incline"
)

type segment struct {
	level  float64
	jitter float64
}

// Interval levels roughly follow a walk/jog/run/push class block.
var profiles = map[Kind][]segment{
	KindSpeed: {
		{level: 3.0, jitter: 0.05},
		{level: 5.5, jitter: 0.1},
		{level: 7.5, jitter: 0.1},
		{level: 9.0, jitter: 0.15},
		{level: 5.0, jitter: 0.1},
	},
	KindIncline: {
		{level: 1.0, jitter: 0},
		{level: 2.0, jitter: 0},
		{level: 4.0, jitter: 0},
		{level: 6.0, jitter: 0},
		{level: 8.0, jitter: 0},
		{level: 1.5, jitter: 0},
	},
}

// History returns seconds samples (0..seconds-1) of kind, deterministic for a
// given seed. Unknown kinds fall back to speed.
func History(kind Kind, seconds int, seed int64) graph.TimeSeries {
	p := NewProvider(kind, seed)
	out := make(graph.TimeSeries, 0, max(seconds, 0))
	for i := 0; i < seconds; i++ {
		out = append(out, p.Next())
	}
	return out
}

// SpeedHistory is History(KindSpeed, ...).
func SpeedHistory(seconds int, seed int64) graph.TimeSeries {
	return History(KindSpeed, seconds, seed)
}

// InclineHistory is History(KindIncline, ...).
func InclineHistory(seconds int, seed int64) graph.TimeSeries {
	return History(KindIncline, seconds, seed)
}

// RollingAverage returns, for every sample, the mean of all samples whose
// second lies in (s-window, s]. The input must be chronological. A window of
// 1 or less copies the series.
func RollingAverage(series graph.TimeSeries, window int) graph.TimeSeries {
	out := make(graph.TimeSeries, len(series))
	if window <= 1 {
		copy(out, series)
		return out
	}
	sum := 0.0
	lo := 0
	for i, s := range series {
		sum += s.Value
		for series[lo].Second <= s.Second-window {
			sum -= series[lo].Value
			lo++
		}
		out[i] = graph.Sample{Second: s.Second, Value: round2(sum / float64(i-lo+1))}
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Provider emits one sample per Next call, switching interval every 60-120
// seconds. It is not safe for concurrent use.
type Provider struct {
	kind      Kind
	rng       *rand.Rand
	second    int
	segIdx    int
	segEnd    int
	history   graph.TimeSeries
	AvgWindow int
}

// NewProvider starts a fresh workout at second 0.
func NewProvider(kind Kind, seed int64) *Provider {
	if _, ok := profiles[kind]; !ok {
		kind = KindSpeed
	}
	p := &Provider{kind: kind, rng: rand.New(rand.NewSource(seed)), AvgWindow: DefaultAverageWindow}
	p.segEnd = p.nextSegmentLength()
	return p
}

// Next produces the sample for the current second and advances the clock.
func (p *Provider) Next() graph.Sample {
	prof := profiles[p.kind]
	if p.second >= p.segEnd {
		p.segIdx = (p.segIdx + 1) % len(prof)
		p.segEnd = p.second + p.nextSegmentLength()
	}
	seg := prof[p.segIdx]
	v := seg.level
	if seg.jitter > 0 {
		v += (p.rng.Float64()*2 - 1) * seg.jitter
	}
	s := graph.Sample{Second: p.second, Value: round2(v)}
	p.history = append(p.history, s)
	p.second++
	return s
}

// Series returns the metric history so far and its rolling average.
func (p *Provider) Series() (metric, average graph.TimeSeries) {
	metric = append(graph.TimeSeries(nil), p.history...)
	return metric, RollingAverage(metric, p.AvgWindow)
}

func (p *Provider) nextSegmentLength() int { return 60 + p.rng.Intn(61) }
