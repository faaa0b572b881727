package sim

import (
	"github.com/san-kum/heatlife/internal/life"
	"github.com/san-kum/heatlife/internal/palette"
)

// Metric accumulates a scalar over the generations of a run.
type Metric interface {
	Name() string
	Observe(generation int, g life.Grid)
	Value() float64
	Reset()
}

// Observer is notified after every successful step.
type Observer interface {
	OnStep(generation int, g life.Grid)
}

type Config struct {
	Size            int
	MaxGenerations  int
	LiveProbability float64
	Seed            int64
	// Pattern, when non-nil, is stamped in the middle of the initial grid.
	Pattern *life.Pattern
	// PersistHue writes each rendered hue back into the grid so the next
	// frame blends against it.
	PersistHue bool
}

// Frame is a renderable snapshot of one generation.
type Frame struct {
	Generation int
	Size       int
	Alive      int
	Colors     [][]palette.Color
	// Sampled is the generation Colors were mapped at. It trails
	// Generation when a FrameHolder reuses older colors.
	Sampled int
}

// At returns the color at (x, y).
func (f Frame) At(x, y int) palette.Color { return f.Colors[y][x] }

// Summary is the outcome of a finished run.
type Summary struct {
	Seed        int64
	Generations int
	Alive       int
	Metrics     map[string]float64
}
