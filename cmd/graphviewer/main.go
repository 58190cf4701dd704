// graphviewer shows a live workout chart in a desktop window. A synthetic
// treadmill feeds one sample per tick and the chart is rebuilt from scratch on
// every refresh, the same way the phone screen redraws it.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/WorkoutGraph/src/config"
	"github.com/iafilius/WorkoutGraph/src/graph"
	"github.com/iafilius/WorkoutGraph/src/logging"
	"github.com/iafilius/WorkoutGraph/src/preview"
	"github.com/iafilius/WorkoutGraph/src/render"
)

type viewerState struct {
	name       string
	cfg        graph.Configuration
	chartWidth time.Duration
	clipMetric bool
	provider   *preview.Provider
	width      int

	chartImg *canvas.Image
	status   *widget.Label
}

func main() {
	configPath := flag.String("config", "", "Optional YAML/JSON/TOML file with chart_width and graphs")
	name := flag.String("graph", "speed", "Graph to show")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the synthetic workout")
	interval := flag.Duration("interval", time.Second, "Time between samples")
	warmup := flag.Int("warmup", 300, "Seconds of history generated before the window opens")
	avgWindow := flag.Int("avg-window", preview.DefaultAverageWindow, "Rolling average window in seconds")
	width := flag.Int("width", 900, "Chart width in pixels")
	chartWidth := flag.String("chart-width", "", "Visible span, ISO-8601 (PT10M) or Go duration (10m); overrides config")
	clipMetric := flag.Bool("clip-metric", false, "Also drop raw metric samples that fall before the visible window")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	if err := logging.SetLogLevel(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Errorf("config: %v", err)
		os.Exit(1)
	}
	if *chartWidth != "" {
		if cfg.ChartWidth, err = config.ParseChartWidth(*chartWidth); err != nil {
			logging.Errorf("flag -chart-width: %v", err)
			os.Exit(2)
		}
	}
	gc, err := cfg.Graph(*name)
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(2)
	}

	kind := preview.KindSpeed
	if *name == string(preview.KindIncline) {
		kind = preview.KindIncline
	}
	p := preview.NewProvider(kind, *seed)
	p.AvgWindow = *avgWindow
	for i := 0; i < *warmup; i++ {
		p.Next()
	}

	st := &viewerState{
		name:       *name,
		cfg:        gc,
		chartWidth: cfg.ChartWidth,
		clipMetric: *clipMetric,
		provider:   p,
		width:      *width,
	}

	a := app.New()
	w := a.NewWindow(windowTitle(*name))
	img, text := st.frame()
	st.chartImg = canvas.NewImageFromImage(img)
	st.chartImg.FillMode = canvas.ImageFillContain
	st.chartImg.SetMinSize(fyne.NewSize(float32(st.width), float32(render.DefaultHeight)))
	st.status = widget.NewLabel(text)
	w.SetContent(container.NewBorder(nil, st.status, nil, nil, st.chartImg))

	stop := make(chan struct{})
	w.SetOnClosed(func() { close(stop) })
	go st.run(*interval, stop)

	logging.Infof("graphviewer: %s chart, window %s, sample every %s", *name, cfg.ChartWidth, *interval)
	w.ShowAndRun()
}

func windowTitle(name string) string {
	return "Workout Graph - " + name
}

// run advances the workout on every tick and swaps the rendered frame in on
// the UI goroutine.
func (st *viewerState) run(interval time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			st.provider.Next()
			img, text := st.frame()
			fyne.Do(func() {
				st.chartImg.Image = img
				st.chartImg.Refresh()
				st.status.SetText(text)
			})
		}
	}
}

// frame rebuilds the chart from the provider's current history.
func (st *viewerState) frame() (image.Image, string) {
	metric, average := st.provider.Series()
	ch := graph.BuildWithOptions(metric, average, st.cfg, st.chartWidth, graph.BuildOptions{ClipMetricToWindow: st.clipMetric})
	return render.Image(ch, st.width, render.DefaultHeight), statusText(st.cfg, metric, average)
}

// statusText summarises the latest sample, e.g. "t=12:34  now 6.2  avg 5.9".
func statusText(cfg graph.Configuration, metric, average graph.TimeSeries) string {
	if len(metric) == 0 {
		return "waiting for data"
	}
	last := metric[len(metric)-1]
	elapsed := time.Duration(last.Second) * time.Second
	out := fmt.Sprintf("t=%02d:%02d  now %s", int(elapsed.Minutes()), int(elapsed.Seconds())%60, graph.FormatYLabel(last.Value, cfg.FormatAsPercentage))
	if v, ok := graph.ValueAt(average, last.Second); ok {
		out += "  avg " + graph.FormatYLabel(v, cfg.FormatAsPercentage)
	}
	return out
}
