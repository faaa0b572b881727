package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/heatlife/internal/config"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f46d43")).Bold(true)
	subStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7a6a5f"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fee08b")).Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	descStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fdae61"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#abdda4")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d53e4f"))
	separatorStr = "─────────────────────────"
)

var presetInfo = map[string]string{
	"classic": "full viewport heat trail",
	"dense":   "crowded start",
	"sparse":  "slow burn",
	"trail":   "hue carried forward",
	"glider":  "single glider",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

type param struct {
	name string
	step float64
	get  func(*config.Config) float64
	set  func(*config.Config, float64)
}

var params = []param{
	{"size", 8,
		func(c *config.Config) float64 { return float64(c.GridSize()) },
		func(c *config.Config, v float64) { c.Size = max(int(v), 1) }},
	{"max_gens", 50,
		func(c *config.Config) float64 { return float64(c.MaxGenerations) },
		func(c *config.Config, v float64) { c.MaxGenerations = max(int(v), 1) }},
	{"live_prob", 0.05,
		func(c *config.Config) float64 { return c.LiveProbability },
		func(c *config.Config, v float64) { c.LiveProbability = min(max(v, 0), 1) }},
	{"gamma", 0.5,
		func(c *config.Config) float64 { return c.Palette.Gamma },
		func(c *config.Config, v float64) { c.Palette.Gamma = max(v, 0.5) }},
}

type menuModel struct {
	state       int
	cursor      int
	presets     []string
	selected    string
	cfg         *config.Config
	paramCursor int
	err         error
	live        Model
	launches    int
	seed        func() int64
}

// NewInteractiveApp returns the preset picker that launches live views.
func NewInteractiveApp() tea.Model {
	return menuModel{
		state:   stateMenu,
		presets: config.ListPresets(),
		seed:    func() int64 { return time.Now().UnixNano() },
	}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateConfig:
			return m.configKey(msg)
		case stateSim:
			switch msg.String() {
			case "q", "esc":
				m.state = stateConfig
				m.live.sim.Pause()
				return m, nil
			}
			next, cmd := m.live.Update(msg)
			m.live = next.(Model)
			return m, cmd
		}
	default:
		if m.state == stateSim {
			next, cmd := m.live.Update(msg)
			m.live = next.(Model)
			return m, cmd
		}
	}
	return m, nil
}

func (m menuModel) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.presets[m.cursor]
		m.cfg = config.GetPreset(m.selected)
		m.state, m.paramCursor, m.err = stateConfig, 0, nil
	}
	return m, nil
}

func (m menuModel) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(params)-1 {
			m.paramCursor++
		}
	case "left", "h":
		p := params[m.paramCursor]
		p.set(m.cfg, p.get(m.cfg)-p.step)
	case "right", "l":
		p := params[m.paramCursor]
		p.set(m.cfg, p.get(m.cfg)+p.step)
	case "enter", "s":
		return m.start()
	}
	return m, nil
}

func (m menuModel) start() (tea.Model, tea.Cmd) {
	cfg := *m.cfg
	if cfg.Seed == 0 && cfg.Pattern == "" {
		cfg.Seed = m.seed()
	}
	s, err := cfg.NewSimulation()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.launches++
	m.live = NewModel(s, cfg.Tick, m.selected, cfg.Theme)
	m.live.id = m.launches
	m.state, m.err = stateSim, nil
	return m, m.live.Init()
}

func (m menuModel) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.live.View()
	}
	return ""
}

func hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(keyStyle.Render(pairs[i]) + idleStyle.Render(" "+pairs[i+1]+"  "))
	}
	return b.String()
}

func (m menuModel) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render("HEATLIFE") + "\n    " + subStyle.Render("game of life with a heat trail") + "\n    " + subStyle.Render(separatorStr) + "\n\n")
	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursorStyle.Render("▸"), activeStyle.Render(fmt.Sprintf("%-10s", name)), descStyle.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", idleStyle.Render(fmt.Sprintf("  %-10s", name)), idleStyle.Render(desc)))
		}
	}
	b.WriteString("\n    " + hints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m menuModel) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render(strings.ToUpper(m.selected)) + "\n    " + subStyle.Render(presetInfo[m.selected]) + "\n    " + subStyle.Render(separatorStr) + "\n\n")
	for i, p := range params {
		val := fmt.Sprintf("%8.2f", p.get(m.cfg))
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cursorStyle.Render("▸"), activeStyle.Render(fmt.Sprintf("%-10s", p.name)), descStyle.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", idleStyle.Render(fmt.Sprintf("  %-10s", p.name)), idleStyle.Render(val)))
		}
	}
	b.WriteString("\n    " + subStyle.Render(fmt.Sprintf("palette %s  mode %s  theme %s", m.cfg.Palette.Name, m.cfg.Palette.Mode, m.cfg.Theme)) + "\n")
	if m.err != nil {
		b.WriteString("\n    " + errorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + hints("j/k", "select", "h/l", "adjust", "s", "start", "esc", "back") + "\n")
	return b.String()
}

func RunInteractive() error {
	_, err := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen()).Run()
	return err
}
