package life

import (
	"fmt"
	"sort"
	"strings"
)

// Pattern is a small plaintext seed: 'O' marks a live cell, anything else is
// dead.
type Pattern struct {
	Name string
	Rows []string
}

var patterns = map[string]Pattern{
	"block":      {Name: "block", Rows: []string{"OO", "OO"}},
	"blinker":    {Name: "blinker", Rows: []string{"OOO"}},
	"tromino":    {Name: "tromino", Rows: []string{"OO", "O."}},
	"glider":     {Name: "glider", Rows: []string{".O.", "..O", "OOO"}},
	"rpentomino": {Name: "rpentomino", Rows: []string{".OO", "OO.", ".O."}},
}

// LookupPattern returns a built-in pattern by name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %s (available: %s)", ErrUnknownPattern, name, strings.Join(PatternNames(), ", "))
	}
	return p, nil
}

func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Width and Height return the pattern's bounding box.
func (p Pattern) Width() int {
	w := 0
	for _, r := range p.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

func (p Pattern) Height() int { return len(p.Rows) }

// Place marks the pattern's live cells alive with (x, y) as its top-left
// corner. Cells falling outside the grid are dropped.
func (g Grid) Place(p Pattern, x, y int) {
	for dy, row := range p.Rows {
		for dx, ch := range row {
			if ch == 'O' {
				g.SetAlive(x+dx, y+dy, true)
			}
		}
	}
}

// PlaceCentered places p in the middle of the grid.
func (g Grid) PlaceCentered(p Pattern) {
	g.Place(p, (g.size-p.Width())/2, (g.size-p.Height())/2)
}
