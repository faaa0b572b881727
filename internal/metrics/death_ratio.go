package metrics

import "github.com/san-kum/heatlife/internal/life"

// DeathRatio is the mean over all cells of deaths / generation at the last
// observed generation.
type DeathRatio struct {
	value float64
}

func NewDeathRatio() *DeathRatio { return &DeathRatio{} }

func (d *DeathRatio) Name() string { return "death_ratio" }

func (d *DeathRatio) Observe(generation int, g life.Grid) {
	n := g.Size() * g.Size()
	if n == 0 || generation <= 0 {
		d.value = 0
		return
	}
	total := 0
	g.Each(func(_, _ int, c life.Cell) { total += c.Deaths })
	d.value = float64(total) / float64(n) / float64(generation)
}

func (d *DeathRatio) Value() float64 { return d.value }
func (d *DeathRatio) Reset()         { d.value = 0 }
