package graph

import "time"

// DefaultChartWidth is the visible span used when nothing else is configured.
const DefaultChartWidth = 10 * time.Minute

// SpeedConfiguration is the treadmill speed chart (mph, plain labels).
func SpeedConfiguration() Configuration {
	return Configuration{
		Scale:    Scale{Min: 0, Max: 15},
		YMarkers: []float64{3, 6, 9, 12},
	}
}

// InclineConfiguration is the treadmill incline chart (grade in percent).
func InclineConfiguration() Configuration {
	return Configuration{
		Scale:              Scale{Min: 0, Max: 15},
		YMarkers:           []float64{3, 6, 9, 12},
		FormatAsPercentage: true,
	}
}

// Preset looks up a named configuration ("speed" or "incline").
func Preset(name string) (Configuration, bool) {
	switch name {
	case "speed":
		return SpeedConfiguration(), true
	case "incline":
		return InclineConfiguration(), true
	}
	return Configuration{}, false
}
