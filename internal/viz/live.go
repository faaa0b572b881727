package viz

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/heatlife/internal/life"
	"github.com/san-kum/heatlife/internal/metrics"
	"github.com/san-kum/heatlife/internal/sim"
	"github.com/san-kum/heatlife/internal/tui"
)

// MinTick caps the redraw rate of the terminal view.
const MinTick = 16 * time.Millisecond

const graphWidth = 30

// TickMsg drives one step. Ticks from an earlier model are ignored.
type TickMsg struct {
	ID   int
	Time time.Time
}

// Model is the live view of one simulation.
type Model struct {
	id       int
	sim      *sim.Simulation
	pop      *metrics.Population
	loading  *tui.ProgressRenderer
	frame    sim.Frame
	frames   sim.FrameHolder
	tick     time.Duration
	ticking  bool
	title    string
	theme    Theme
	styles   Styles
	showHelp bool
	err      error
}

// NewModel wraps s. Ticks faster than MinTick are slowed down to it.
func NewModel(s *sim.Simulation, tick time.Duration, title, theme string) Model {
	if tick < MinTick {
		tick = MinTick
	}
	pop := metrics.NewPopulation()
	s.AddMetric(pop)

	t := GetTheme(theme)
	m := Model{
		sim:     s,
		pop:     pop,
		loading: tui.NewProgressRenderer(io.Discard, s.MaxGenerations(), 0),
		tick:    tick,
		ticking: !s.Done(),
		title:   title,
		theme:   t,
		styles:  NewStyles(t),
	}
	m.frame = m.frames.Show(s.Frame())
	return m
}

func (m Model) tickCmd() tea.Cmd {
	id := m.id
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg{ID: id, Time: t} })
}

func (m Model) Init() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return m.tickCmd()
}

func (m Model) Simulation() *sim.Simulation { return m.sim }
func (m Model) Frame() sim.Frame            { return m.frame }
func (m Model) Ticking() bool               { return m.ticking }
func (m Model) Theme() Theme                { return m.theme }

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		if !m.sim.Running() {
			if m.sim.Done() {
				m.ticking = false
				return m, nil
			}
			return m, m.tickCmd()
		}
		if !m.step() {
			m.ticking = false
			return m, nil
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.sim.Toggle()
	case "s":
		if !m.sim.Running() {
			m.step()
		}
	case "r":
		m.sim.Reset()
		m.frames.Reset()
		m.frame = m.frames.Show(m.sim.Frame())
		m.err = nil
		if !m.ticking {
			m.ticking = true
			return m, m.tickCmd()
		}
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = NewStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// step advances one generation and reports whether more remain.
func (m *Model) step() bool {
	err := m.sim.Step()
	m.frame = m.frames.Show(m.sim.Frame())
	if err != nil {
		if !errors.Is(err, life.ErrMaxGenerations) {
			m.err = err
		}
		return false
	}
	return true
}

func (m Model) status() string {
	switch {
	case m.sim.Done():
		return m.styles.Done.Render("FINISHED")
	case m.sim.Running():
		return m.styles.Running.Render("RUNNING")
	default:
		return m.styles.Paused.Render("PAUSED")
	}
}

func (m Model) row(label, value string) string {
	return m.styles.Label.Render(label) + m.styles.Value.Render(value) + "\n"
}

// View renders the grid next to the stats panel.
func (m Model) View() string {
	canvas := m.styles.Canvas.Render(RenderGrid(m.frame))

	var s strings.Builder
	s.WriteString(m.styles.Header.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.status() + "\n\n")

	maxGen := m.sim.MaxGenerations()
	s.WriteString(m.row("Generation", fmt.Sprintf("%d / %d", m.frame.Generation, maxGen)))
	s.WriteString(m.row("Alive", fmt.Sprintf("%d", m.frame.Alive)))
	s.WriteString(m.row("Colors", fmt.Sprintf("gen %d", m.frame.Sampled)))
	s.WriteString(m.row("Grid", fmt.Sprintf("%d x %d", m.frame.Size, m.frame.Size)))
	s.WriteString(m.row("Tick", m.tick.String()))
	s.WriteString("\n" + m.styles.Bar.Render(ProgressBar(float64(m.frame.Generation)/float64(maxGen), graphWidth)) + "\n")
	s.WriteString(m.styles.Label.UnsetWidth().Render(m.loading.Line(m.frame.Generation, m.frame.Size)) + "\n")

	if hist := m.pop.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(5), asciigraph.Width(graphWidth), asciigraph.Precision(0), asciigraph.Caption("Population"))
		s.WriteString(m.styles.Graph.Render(chart) + "\n")
	}
	if m.err != nil {
		s.WriteString(m.styles.Done.Render(m.err.Error()) + "\n")
	}
	s.WriteString(m.styles.Help.Render("SP:Pause S:Step R:Reset\nT:Theme ?:Help Q:Quit"))

	view := lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.styles.Panel.Render(s.String()))
	if m.showHelp {
		return m.styles.Overlay.Render(helpText) + "\n\n" + view
	}
	return view
}

const helpText = `KEYBOARD SHORTCUTS

Space  Pause/Resume
S      Step one generation while paused
R      Reseed and restart
T      Cycle themes
?      Toggle this help
Q      Quit`

// RunLive runs a single simulation full screen until the user quits.
func RunLive(s *sim.Simulation, tick time.Duration, title, theme string) error {
	_, err := tea.NewProgram(NewModel(s, tick, title, theme), tea.WithAltScreen()).Run()
	return err
}
