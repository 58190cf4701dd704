package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iafilius/WorkoutGraph/src/config"
	"github.com/iafilius/WorkoutGraph/src/graph"
	"github.com/iafilius/WorkoutGraph/src/htmlchart"
	"github.com/iafilius/WorkoutGraph/src/logging"
	"github.com/iafilius/WorkoutGraph/src/preview"
	"github.com/iafilius/WorkoutGraph/src/render"
	"github.com/iafilius/WorkoutGraph/src/termchart"
)

// renderOptions is everything RunRenderMode needs; main fills it from flags.
type renderOptions struct {
	OutDir        string
	Graphs        []string
	Formats       []string
	Seconds       int
	AvgWindow     int
	Seed          int64
	Width         int
	Height        int
	ChartWidth    time.Duration
	ClipMetric    bool
	TerminalWidth int
}

// knownFormats doubles as the file extension for each format.
var knownFormats = map[string]bool{"png": true, "svg": true, "html": true, "txt": true}

// RunRenderMode builds each requested graph from preview data and writes one
// file per format under OutDir. It runs headlessly.
func RunRenderMode(cfg *config.Config, o renderOptions) ([]string, error) {
	defer logging.TimeTrack(time.Now(), "render mode")
	if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	for _, f := range o.Formats {
		if !knownFormats[f] {
			return nil, fmt.Errorf("unknown format %q (want png, svg, html or txt)", f)
		}
	}

	var written []string
	for _, name := range o.Graphs {
		gc, err := cfg.Graph(name)
		if err != nil {
			return written, err
		}
		metric := preview.History(kindFor(name), o.Seconds, o.Seed)
		average := preview.RollingAverage(metric, o.AvgWindow)
		ch := graph.BuildWithOptions(metric, average, gc, o.ChartWidth, graph.BuildOptions{ClipMetricToWindow: o.ClipMetric})
		logging.Infof("%s: window=[%d,%d] band=%d metric=%d markers=%s", name,
			ch.XAxis.Domain.Min, ch.XAxis.Domain.Max, len(ch.Average.Points), len(ch.Metric.Points), termchart.Legend(ch.YAxis))

		for _, f := range o.Formats {
			var buf bytes.Buffer
			if err := encode(&buf, ch, f, title(name), o); err != nil {
				return written, fmt.Errorf("%s %s: %w", name, f, err)
			}
			outPath := filepath.Join(o.OutDir, name+"."+f)
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", outPath, err)
			}
			logging.Debugf("wrote %s (%d bytes)", outPath, buf.Len())
			written = append(written, outPath)
		}
	}
	return written, nil
}

func encode(buf *bytes.Buffer, ch graph.Chart, format, name string, o renderOptions) error {
	switch format {
	case "png", "svg":
		f, err := render.ParseFormat(format)
		if err != nil {
			return err
		}
		return render.Render(buf, ch, f, o.Width, o.Height)
	case "html":
		return htmlchart.Write(buf, ch, name)
	case "txt":
		buf.WriteString(termchart.Render(ch, o.TerminalWidth, 12, name))
		buf.WriteByte('\n')
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// kindFor picks the synthetic data shape; percentage-style graphs look like incline.
func kindFor(name string) preview.Kind {
	if name == string(preview.KindIncline) {
		return preview.KindIncline
	}
	return preview.KindSpeed
}

func title(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
