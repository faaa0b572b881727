package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		ViewportWidth: 400, CellSize: 5, MaxGenerations: 500, LiveProbability: 0.71,
		Theme: "ember", Palette: PaletteConfig{Name: "Spectral", Gamma: 6, Mode: "lrgb"},
	},
	"dense": {
		Size: 64, MaxGenerations: 1000, LiveProbability: 0.85, Tick: 30 * time.Millisecond,
		Theme: "dusk", Palette: PaletteConfig{Name: "RdPu", Gamma: 6, Mode: "lrgb"},
	},
	"sparse": {
		Size: 64, MaxGenerations: 1000, LiveProbability: 0.2, Tick: 30 * time.Millisecond,
		Theme: "deep", Palette: PaletteConfig{Name: "YlGnBu", Gamma: 5, Mode: "lab"},
	},
	"trail": {
		Size: 48, MaxGenerations: 300, LiveProbability: 0.5, Tick: 50 * time.Millisecond, PersistHue: true,
		Theme: "paper", Palette: PaletteConfig{Name: "BuPu", Gamma: 6, Mode: "lrgb"},
	},
	"glider": {
		Size: 32, MaxGenerations: 120, LiveProbability: 0, Pattern: "glider", Tick: 80 * time.Millisecond,
		Theme: "phosphor", Palette: PaletteConfig{Name: "Spectral", Gamma: 1, Mode: "lrgb"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
