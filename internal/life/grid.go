package life

import (
	"math/rand/v2"
	"strings"

	"github.com/san-kum/heatlife/internal/palette"
)

// DefaultLiveProbability is the chance a cell starts alive in a random grid.
const DefaultLiveProbability = 0.71

// Cell is the state of a single grid position.
type Cell struct {
	Alive bool
	// Deaths counts the generations this cell has been dead. It never resets.
	Deaths int
	// LastHue is the previously mapped color, nil until one is stored.
	LastHue *palette.Hue
}

// Color maps the cell through m at the given generation.
func (c Cell) Color(m palette.Mapper, generation int) palette.Hue {
	return m.Color(c.Deaths, c.LastHue, generation)
}

// Grid is a square matrix of cells indexed [y][x].
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid returns a size x size grid where each cell is independently alive
// with probability p.
func NewGrid(size int, rng *rand.Rand, p float64) Grid {
	g := Filled(size, Cell{})
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].Alive = rng.Float64() < p
		}
	}
	return g
}

// Filled returns a size x size grid with every cell set to c.
func Filled(size int, c Cell) Grid {
	if size < 0 {
		size = 0
	}
	cells := make([][]Cell, size)
	for y := range cells {
		row := make([]Cell, size)
		for x := range row {
			row[x] = c
		}
		cells[y] = row
	}
	return Grid{size: size, cells: cells}
}

// Size returns N for an N x N grid.
func (g Grid) Size() int { return g.size }

func (g Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// At returns the cell at (x, y). ok is false outside the grid.
func (g Grid) At(x, y int) (c Cell, ok bool) {
	if !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y][x], true
}

// Set overwrites the cell at (x, y) in place. Out of bounds writes are ignored.
func (g Grid) Set(x, y int, c Cell) {
	if g.inBounds(x, y) {
		g.cells[y][x] = c
	}
}

// SetAlive flips only the liveness of the cell at (x, y).
func (g Grid) SetAlive(x, y int, alive bool) {
	if g.inBounds(x, y) {
		g.cells[y][x].Alive = alive
	}
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := Grid{size: g.size, cells: make([][]Cell, g.size)}
	for y, row := range g.cells {
		out.cells[y] = append([]Cell(nil), row...)
	}
	return out
}

// Alive counts live cells.
func (g Grid) Alive() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.Alive {
				n++
			}
		}
	}
	return n
}

// SameLiveness reports whether both grids have identical dimensions and
// liveness at every position.
func (g Grid) SameLiveness(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for y, row := range g.cells {
		for x, c := range row {
			if c.Alive != other.cells[y][x].Alive {
				return false
			}
		}
	}
	return true
}

// Each calls fn for every cell in row-major order.
func (g Grid) Each(fn func(x, y int, c Cell)) {
	for y, row := range g.cells {
		for x, c := range row {
			fn(x, y, c)
		}
	}
}

// String renders the grid as plaintext rows of 'O' (alive) and '.' (dead).
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, c := range row {
			if c.Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
