package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/san-kum/heatlife/internal/life"
	"github.com/san-kum/heatlife/internal/palette"
)

// Simulation owns one run: the current grid, the generation clock and the
// running flag. It is not safe for concurrent use; a single driver calls
// Step and Frame in turn.
type Simulation struct {
	cfg        Config
	mapper     palette.Mapper
	rng        *rand.Rand
	grid       life.Grid
	generation int
	running    bool
	done       bool
	metrics    []Metric
	observers  []Observer
	logger     *log.Logger
}

func New(cfg Config, space palette.Space) (*Simulation, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:       cfg,
		mapper:    palette.NewMapper(space),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    log.New(io.Discard),
	}
	s.Reset()
	return s, nil
}

func validateConfig(cfg Config) error {
	if cfg.Size < 0 {
		return fmt.Errorf("%w, got %d", life.ErrInvalidSize, cfg.Size)
	}
	if cfg.MaxGenerations < 1 {
		return fmt.Errorf("max generations must be at least 1, got %d", cfg.MaxGenerations)
	}
	if cfg.LiveProbability < 0 || cfg.LiveProbability > 1 {
		return fmt.Errorf("live probability must be within [0, 1], got %f", cfg.LiveProbability)
	}
	return nil
}

func (s *Simulation) AddMetric(m Metric)      { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o Observer)  { s.observers = append(s.observers, o) }
func (s *Simulation) SetLogger(l *log.Logger) { s.logger = l }
func (s *Simulation) Config() Config          { return s.cfg }
func (s *Simulation) Grid() life.Grid         { return s.grid }
func (s *Simulation) Generation() int         { return s.generation }
func (s *Simulation) Size() int               { return s.grid.Size() }
func (s *Simulation) Running() bool           { return s.running }
func (s *Simulation) Done() bool              { return s.done }
func (s *Simulation) Mapper() palette.Mapper  { return s.mapper }
func (s *Simulation) MaxGenerations() int     { return s.cfg.MaxGenerations }

// Reset reseeds the grid and restarts the clock at generation 1.
func (s *Simulation) Reset() {
	s.rng = rand.New(rand.NewPCG(uint64(s.cfg.Seed), 0))
	s.grid = life.NewGrid(s.cfg.Size, s.rng, s.cfg.LiveProbability)
	if s.cfg.Pattern != nil {
		s.grid.PlaceCentered(*s.cfg.Pattern)
	}
	s.generation = 1
	s.running = true
	s.done = false
	for _, m := range s.metrics {
		m.Reset()
	}
}

func (s *Simulation) Pause()  { s.running = false }
func (s *Simulation) Toggle() { s.running = !s.running && !s.done }

// Resume restarts ticking. It has no effect once the ceiling is reached.
func (s *Simulation) Resume() {
	if !s.done {
		s.running = true
	}
}

// Step advances one generation. At the ceiling it returns
// life.ErrMaxGenerations and the simulation stops for good.
func (s *Simulation) Step() error {
	if s.done || s.generation >= s.cfg.MaxGenerations {
		if !s.done {
			s.logger.Info("max generations reached", "generation", s.generation)
		}
		s.running = false
		s.done = true
		return life.ErrMaxGenerations
	}

	s.grid = life.Step(s.grid)
	s.generation++

	for _, m := range s.metrics {
		m.Observe(s.generation, s.grid)
	}
	for _, obs := range s.observers {
		obs.OnStep(s.generation, s.grid)
	}
	return nil
}

// Frame maps every cell of the current generation to a color.
func (s *Simulation) Frame() Frame {
	n := s.grid.Size()
	f := Frame{
		Generation: s.generation,
		Size:       n,
		Colors:     make([][]palette.Color, n),
		Sampled:    s.generation,
	}
	for y := range f.Colors {
		f.Colors[y] = make([]palette.Color, n)
	}

	s.grid.Each(func(x, y int, c life.Cell) {
		hue := c.Color(s.mapper, s.generation)
		f.Colors[y][x] = hue.Color
		if c.Alive {
			f.Alive++
		}
		if s.cfg.PersistHue {
			c.LastHue = &hue
			s.grid.Set(x, y, c)
		}
	})
	return f
}

// Progress reports cells computed so far against the total for a full run.
func (s *Simulation) Progress() (loaded, total int) {
	cells := s.grid.Size() * s.grid.Size()
	return cells * s.generation, cells * s.cfg.MaxGenerations
}

// Advance steps until the ceiling without waiting on a ticker.
func (s *Simulation) Advance(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.Step(); err != nil {
			if errors.Is(err, life.ErrMaxGenerations) {
				return nil
			}
			return err
		}
	}
}

// Run drives the simulation from ticker. Each tick performs one step and
// renders the result through a FrameHolder, or does nothing while paused.
// When the ceiling is reached a final frame is rendered, the ticker is
// stopped and Run returns nil. render may be nil.
func (s *Simulation) Run(ctx context.Context, ticker Ticker, render func(Frame)) error {
	defer ticker.Stop()
	if s.done {
		return life.ErrMaxGenerations
	}

	s.logger.Debug("simulation started", "size", s.grid.Size(), "max", s.cfg.MaxGenerations, "seed", s.cfg.Seed)
	var frames FrameHolder
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("simulation canceled", "generation", s.generation)
			return ctx.Err()
		case <-ticker.C():
		}

		if !s.running {
			// An immediate ticker never blocks, so a paused run waits for
			// cancellation instead of spinning on it.
			if _, ok := ticker.(immediateTicker); ok {
				<-ctx.Done()
				s.logger.Debug("simulation canceled", "generation", s.generation)
				return ctx.Err()
			}
			continue
		}

		err := s.Step()
		if errors.Is(err, life.ErrMaxGenerations) {
			if render != nil {
				render(frames.Show(s.Frame()))
			}
			return nil
		}
		if err != nil {
			return err
		}
		if render != nil {
			render(frames.Show(s.Frame()))
		}
	}
}

// Summary collects the final state and metric values.
func (s *Simulation) Summary() Summary {
	sum := Summary{
		Seed:        s.cfg.Seed,
		Generations: s.generation,
		Alive:       s.grid.Alive(),
		Metrics:     make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		sum.Metrics[m.Name()] = m.Value()
	}
	return sum
}
