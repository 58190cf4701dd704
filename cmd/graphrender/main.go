// graphrender writes workout charts built from synthetic treadmill data to
// PNG, SVG, HTML or plain text files. Useful for previews and docs screenshots.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iafilius/WorkoutGraph/src/config"
	"github.com/iafilius/WorkoutGraph/src/logging"
	"github.com/iafilius/WorkoutGraph/src/preview"
	"github.com/iafilius/WorkoutGraph/src/render"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML/JSON/TOML file with chart_width and graphs")
	outDir := flag.String("out", "charts", "Output directory")
	graphs := flag.String("graph", "all", "Comma separated graph names, or 'all'")
	formats := flag.String("formats", "png", "Comma separated output formats (png,svg,html,txt)")
	seconds := flag.Int("seconds", 1200, "Length of the synthetic workout in seconds")
	avgWindow := flag.Int("avg-window", preview.DefaultAverageWindow, "Rolling average window in seconds")
	seed := flag.Int64("seed", 1, "Seed for the synthetic workout")
	width := flag.Int("width", 1100, "Image width in pixels")
	height := flag.Int("height", render.DefaultHeight, "Image height in pixels")
	chartWidth := flag.String("chart-width", "", "Visible span, ISO-8601 (PT10M) or Go duration (10m); overrides config")
	clipMetric := flag.Bool("clip-metric", false, "Also drop raw metric samples that fall before the visible window")
	termWidth := flag.Int("term-width", 72, "Plot width in columns for txt output")
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
		w, err := config.ParseChartWidth(*chartWidth)
		if err != nil {
			logging.Errorf("flag -chart-width: %v", err)
			os.Exit(2)
		}
		cfg.ChartWidth = w
	}

	names := splitList(*graphs)
	if len(names) == 0 || (len(names) == 1 && names[0] == "all") {
		names = cfg.Names()
	}

	written, err := RunRenderMode(cfg, renderOptions{
		OutDir:        *outDir,
		Graphs:        names,
		Formats:       splitList(*formats),
		Seconds:       *seconds,
		AvgWindow:     *avgWindow,
		Seed:          *seed,
		Width:         *width,
		Height:        *height,
		ChartWidth:    cfg.ChartWidth,
		ClipMetric:    *clipMetric,
		TerminalWidth: *termWidth,
	})
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	for _, p := range written {
		fmt.Println(p)
	}
}
