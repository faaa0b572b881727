package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the panel chrome. Cells always use the simulation palette.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
	Done    lipgloss.Color
}

var (
	ThemeEmber = Theme{
		Name:    "ember",
		Title:   lipgloss.Color("#f46d43"),
		Accent:  lipgloss.Color("#fee08b"),
		Text:    lipgloss.Color("#f5f0e8"),
		Muted:   lipgloss.Color("#7a6a5f"),
		Border:  lipgloss.Color("#4a3b33"),
		Running: lipgloss.Color("#abdda4"),
		Paused:  lipgloss.Color("#fdae61"),
		Done:    lipgloss.Color("#d53e4f"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Title:   lipgloss.Color("#33ff66"),
		Accent:  lipgloss.Color("#aaffaa"),
		Text:    lipgloss.Color("#33ff66"),
		Muted:   lipgloss.Color("#1a6630"),
		Border:  lipgloss.Color("#0d3318"),
		Running: lipgloss.Color("#aaffaa"),
		Paused:  lipgloss.Color("#ffff66"),
		Done:    lipgloss.Color("#ff5555"),
	}

	ThemePaper = Theme{
		Name:    "paper",
		Title:   lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#3288bd"),
		Text:    lipgloss.Color("#dddddd"),
		Muted:   lipgloss.Color("#888888"),
		Border:  lipgloss.Color("#444444"),
		Running: lipgloss.Color("#66c2a5"),
		Paused:  lipgloss.Color("#fdae61"),
		Done:    lipgloss.Color("#d53e4f"),
	}

	ThemeDeep = Theme{
		Name:    "deep",
		Title:   lipgloss.Color("#41b6c4"),
		Accent:  lipgloss.Color("#edf8b1"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Border:  lipgloss.Color("#253494"),
		Running: lipgloss.Color("#7fcdbb"),
		Paused:  lipgloss.Color("#ffcc00"),
		Done:    lipgloss.Color("#ff4444"),
	}

	ThemeDusk = Theme{
		Name:    "dusk",
		Title:   lipgloss.Color("#f768a1"),
		Accent:  lipgloss.Color("#fcc5c0"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Border:  lipgloss.Color("#49006a"),
		Running: lipgloss.Color("#5fd068"),
		Paused:  lipgloss.Color("#ffc048"),
		Done:    lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeEmber, ThemePhosphor, ThemePaper, ThemeDeep, ThemeDusk}
)

// GetTheme returns a theme by name, falling back to ember.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEmber
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
