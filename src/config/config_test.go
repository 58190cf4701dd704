package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/iafilius/WorkoutGraph/src/graph"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ChartWidth != 10*time.Minute {
		t.Fatalf("chart width got %s", cfg.ChartWidth)
	}
	if !reflect.DeepEqual(cfg.Names(), []string{"incline", "speed"}) {
		t.Fatalf("names got %v", cfg.Names())
	}
	sp, err := cfg.Graph("speed")
	if err != nil || !reflect.DeepEqual(sp, graph.SpeedConfiguration()) {
		t.Fatalf("speed preset got %+v err=%v", sp, err)
	}
}

func TestLoad_YAMLOverrides(t *testing.T) {
	p := writeConfig(t, "graphs.yaml", `
chart_width: PT5M
graphs:
  speed:
    scale: [0, 12]
    y_markers: [2, 4, 6, 8, 10]
  heart_rate:
    scale: [40, 200]
    y_markers: [60, 120, 180]
    format_as_percentage: false
  grade:
    scale: [0, 15]
    y_markers: [5, 10]
    format_as_percentage: true
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ChartWidth != 5*time.Minute {
		t.Fatalf("chart width got %s", cfg.ChartWidth)
	}
	sp, _ := cfg.Graph("speed")
	if sp.Scale != (graph.Scale{Min: 0, Max: 12}) || len(sp.YMarkers) != 5 {
		t.Fatalf("speed override got %+v", sp)
	}
	hr, err := cfg.Graph("heart_rate")
	if err != nil || hr.Scale.Min != 40 || hr.FormatAsPercentage {
		t.Fatalf("heart_rate got %+v err=%v", hr, err)
	}
	gr, _ := cfg.Graph("grade")
	if !gr.FormatAsPercentage {
		t.Fatalf("grade should format as percentage")
	}
	// untouched preset survives
	if _, err := cfg.Graph("incline"); err != nil {
		t.Fatalf("incline preset lost: %v", err)
	}
}

func TestLoad_EnvOverridesChartWidth(t *testing.T) {
	t.Setenv(EnvPrefix+"_CHART_WIDTH", "90s")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ChartWidth != 90*time.Second {
		t.Fatalf("chart width got %s", cfg.ChartWidth)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"bad_scale.yaml":     "graphs:\n  speed:\n    scale: [10, 2]\n",
		"short_scale.yaml":   "graphs:\n  speed:\n    scale: [10]\n",
		"bad_width.yaml":     "chart_width: soon\n",
		"negative.yaml":      "chart_width: -5m\n",
		"bad_iso_width.yaml": "chart_width: PTXM\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, name, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseChartWidth(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"PT10M", 10 * time.Minute},
		{"pt30s", 30 * time.Second},
		{"PT1H", time.Hour},
		{"10m", 10 * time.Minute},
		{" 45s ", 45 * time.Second},
		{"0s", 0},
	}
	for _, c := range cases {
		got, err := ParseChartWidth(c.in)
		if err != nil || got != c.want {
			t.Fatalf("ParseChartWidth(%q) = %s,%v want %s", c.in, got, err, c.want)
		}
	}
	if _, err := ParseChartWidth(""); err == nil {
		t.Fatalf("expected error for empty width")
	}
}

func TestGraph_Unknown(t *testing.T) {
	if _, err := Default().Graph("cadence"); err == nil {
		t.Fatalf("expected error for unknown graph")
	}
}
