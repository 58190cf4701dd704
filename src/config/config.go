// Package config loads chart settings from an optional YAML/JSON/TOML file and
// the environment. Flags in cmd/ override what is loaded here.
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sosodev/duration"
	"github.com/spf13/viper"

	"github.com/iafilius/WorkoutGraph/src/graph"
	"github.com/iafilius/WorkoutGraph/src/logging"
)

// EnvPrefix is prepended to upper-cased keys, e.g. WORKOUTGRAPH_CHART_WIDTH.
const EnvPrefix = "WORKOUTGRAPH"

const (
	keyChartWidth = "chart_width"
	keyGraphs     = "graphs"
)

// Config is the resolved chart configuration.
type Config struct {
	// ChartWidth is the visible time span of every chart.
	ChartWidth time.Duration
	Graphs     map[string]graph.Configuration
}

type rawGraph struct {
	Scale              []float64 `mapstructure:"scale"`
	YMarkers           []float64 `mapstructure:"y_markers"`
	FormatAsPercentage bool      `mapstructure:"format_as_percentage"`
}

// Default returns the built-in speed and incline charts with a 10 minute window.
func Default() *Config {
	return &Config{
		ChartWidth: graph.DefaultChartWidth,
		Graphs: map[string]graph.Configuration{
			"speed":   graph.SpeedConfiguration(),
			"incline": graph.InclineConfiguration(),
		},
	}
}

// Load reads path (if non-empty) on top of Default. Graphs named in the file
// replace the built-in entry of the same name.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyChartWidth, duration.Format(cfg.ChartWidth))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		logging.Debugf("loaded config from %s", v.ConfigFileUsed())
	}

	w, err := ParseChartWidth(v.GetString(keyChartWidth))
	if err != nil {
		return nil, err
	}
	cfg.ChartWidth = w

	raw := map[string]rawGraph{}
	if err := v.UnmarshalKey(keyGraphs, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyGraphs, err)
	}
	for name, rg := range raw {
		gc, err := rg.toGraph()
		if err != nil {
			return nil, fmt.Errorf("graph %q: %w", name, err)
		}
		warnMarkersOutsideScale(name, gc)
		cfg.Graphs[name] = gc
	}
	return cfg, nil
}

// ParseChartWidth accepts an ISO-8601 duration ("PT10M") or a Go duration
// string ("10m"). Negative widths are rejected.
func ParseChartWidth(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s is empty", keyChartWidth)
	}
	var d time.Duration
	if strings.HasPrefix(strings.ToUpper(strings.TrimPrefix(s, "-")), "P") {
		iso, err := duration.Parse(strings.ToUpper(s))
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", keyChartWidth, s, err)
		}
		d = iso.ToTimeDuration()
	} else {
		var err error
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", keyChartWidth, s, err)
		}
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %s", keyChartWidth, s)
	}
	return d, nil
}

// Graph returns the named chart configuration.
func (c *Config) Graph(name string) (graph.Configuration, error) {
	gc, ok := c.Graphs[name]
	if !ok {
		return graph.Configuration{}, fmt.Errorf("unknown graph %q (have %s)", name, strings.Join(c.Names(), ", "))
	}
	return gc, nil
}

// Names lists configured graphs in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Graphs))
	for n := range c.Graphs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r rawGraph) toGraph() (graph.Configuration, error) {
	if len(r.Scale) != 2 {
		return graph.Configuration{}, fmt.Errorf("scale must be [min, max], got %v", r.Scale)
	}
	if r.Scale[0] > r.Scale[1] {
		return graph.Configuration{}, fmt.Errorf("scale min %v exceeds max %v", r.Scale[0], r.Scale[1])
	}
	return graph.Configuration{
		Scale:              graph.Scale{Min: r.Scale[0], Max: r.Scale[1]},
		YMarkers:           append([]float64(nil), r.YMarkers...),
		FormatAsPercentage: r.FormatAsPercentage,
	}, nil
}

// Markers outside the scale are allowed but clipped backends drop them.
func warnMarkersOutsideScale(name string, gc graph.Configuration) {
	for _, m := range gc.YMarkers {
		if !gc.Scale.Contains(m) {
			logging.Warnf("graph %q: y marker %v outside scale [%v, %v]", name, m, gc.Scale.Min, gc.Scale.Max)
		}
	}
}
