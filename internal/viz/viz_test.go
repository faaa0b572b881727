package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/heatlife/internal/palette"
	"github.com/san-kum/heatlife/internal/sim"
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, maxGen int) Model {
	t.Helper()
	s, err := sim.New(sim.Config{Size: 6, MaxGenerations: maxGen, LiveProbability: 0.5, Seed: 1}, palette.Default())
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	return NewModel(s, 0, "test", "ember")
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestRenderGrid(t *testing.T) {
	c := palette.NoData
	f := sim.Frame{Size: 3, Colors: [][]palette.Color{{c, c, c}, {c, c, c}, {c, c, c}}}

	got := RenderGrid(f)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines for 3 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, halfBlock); n != 3 {
			t.Errorf("line %d: %d half blocks", i, n)
		}
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "ember" {
		t.Error("unknown theme should fall back to ember")
	}
	if GetTheme("deep").Name != "deep" {
		t.Error("expected deep theme")
	}
	if NextTheme("dusk").Name != "ember" {
		t.Error("NextTheme should wrap around")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct    float64
		filled int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{2, 10},
		{-1, 0},
	}
	for _, tt := range tests {
		bar := ProgressBar(tt.pct, 10)
		if n := strings.Count(bar, "█"); n != tt.filled {
			t.Errorf("ProgressBar(%v): %d filled, want %d", tt.pct, n, tt.filled)
		}
		if n := strings.Count(bar, "░") + strings.Count(bar, "█"); n != 10 {
			t.Errorf("ProgressBar(%v): width %d", tt.pct, n)
		}
	}
}

func TestModelTicksUntilCeiling(t *testing.T) {
	m := newTestModel(t, 3)
	if m.tick != MinTick {
		t.Errorf("tick should be clamped to %v, got %v", MinTick, m.tick)
	}
	if m.Init() == nil {
		t.Fatal("expected an initial tick")
	}

	var cmd tea.Cmd
	for want := 2; want <= 3; want++ {
		m, cmd = update(m, TickMsg{})
		if cmd == nil {
			t.Fatalf("expected another tick after generation %d", want)
		}
		if m.Frame().Generation != want {
			t.Errorf("expected generation %d, got %d", want, m.Frame().Generation)
		}
	}

	m, cmd = update(m, TickMsg{})
	if cmd != nil || m.Ticking() {
		t.Error("ticks should stop at the ceiling")
	}
	if !m.Simulation().Done() {
		t.Error("simulation should be done")
	}
	if !strings.Contains(m.View(), "FINISHED") {
		t.Error("view should report the finished state")
	}

	m, cmd = update(m, key('r'))
	if cmd == nil || !m.Ticking() {
		t.Error("reset should restart the tick loop")
	}
	if m.Frame().Generation != 1 {
		t.Errorf("reset should restart at generation 1, got %d", m.Frame().Generation)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, 10)
	m, cmd := update(m, TickMsg{ID: 42})
	if cmd != nil {
		t.Error("stale tick should not schedule another")
	}
	if m.Frame().Generation != 1 {
		t.Error("stale tick should not step")
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m := newTestModel(t, 10)

	m, _ = update(m, key(' '))
	if m.Simulation().Running() {
		t.Fatal("space should pause")
	}
	m, cmd := update(m, TickMsg{})
	if cmd == nil {
		t.Error("paused model should keep ticking")
	}
	if m.Frame().Generation != 1 {
		t.Error("paused tick should not step")
	}

	m, _ = update(m, key('s'))
	if m.Frame().Generation != 2 {
		t.Errorf("s should step once, got generation %d", m.Frame().Generation)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should report the paused state")
	}
}

func TestModelThemeAndHelp(t *testing.T) {
	m := newTestModel(t, 10)
	m, _ = update(m, key('t'))
	if m.Theme().Name != "phosphor" {
		t.Errorf("expected phosphor, got %s", m.Theme().Name)
	}
	m, _ = update(m, key('?'))
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay should be shown")
	}
	if _, cmd := update(m, key('q')); cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, 10)
	m, _ = update(m, TickMsg{})
	m, _ = update(m, TickMsg{})
	view := m.View()
	for _, want := range []string{"TEST", "3 / 10", "108 / 360 cells loaded", "Population"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestInteractiveMenu(t *testing.T) {
	var app tea.Model = NewInteractiveApp()
	send := func(msg tea.Msg) tea.Cmd {
		var cmd tea.Cmd
		app, cmd = app.Update(msg)
		return cmd
	}

	send(key('j'))
	send(tea.KeyMsg{Type: tea.KeyEnter})
	m := app.(menuModel)
	if m.state != stateConfig || m.selected != m.presets[1] {
		t.Fatalf("expected config for %s, got state %d (%s)", m.presets[1], m.state, m.selected)
	}

	before := m.cfg.MaxGenerations
	send(key('j'))
	send(key('l'))
	if got := app.(menuModel).cfg.MaxGenerations; got != before+50 {
		t.Errorf("expected max generations %d, got %d", before+50, got)
	}

	if cmd := send(key('s')); cmd == nil {
		t.Error("starting a simulation should schedule a tick")
	}
	m = app.(menuModel)
	if m.state != stateSim || m.err != nil {
		t.Fatalf("expected live view, got state %d err %v", m.state, m.err)
	}
	if m.live.Simulation().MaxGenerations() != before+50 {
		t.Error("live view should use the edited config")
	}

	send(key('q'))
	if app.(menuModel).state != stateConfig {
		t.Error("q should leave the live view")
	}
	send(tea.KeyMsg{Type: tea.KeyEsc})
	if app.(menuModel).state != stateMenu {
		t.Error("esc should return to the menu")
	}
	if cmd := send(key('q')); cmd == nil {
		t.Error("q on the menu should quit")
	}
}

func TestModelKeepsColorsBetweenResamples(t *testing.T) {
	m := newTestModel(t, 20)
	for i := 0; i < 5; i++ {
		m, _ = update(m, TickMsg{})
	}

	f := m.Frame()
	if f.Generation != 6 {
		t.Fatalf("expected generation 6, got %d", f.Generation)
	}
	if f.NoData() {
		t.Error("generation 6 should still show the generation 5 colors")
	}
	if f.Sampled != 5 {
		t.Errorf("expected colors from generation 5, got %d", f.Sampled)
	}

	m, _ = update(m, key('r'))
	if !m.Frame().NoData() || m.Frame().Sampled != 1 {
		t.Error("reset should drop the held colors")
	}
}
