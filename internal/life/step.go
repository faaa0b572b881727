package life

// Step computes the next generation of g into a new grid.
func Step(g Grid) Grid {
	next := Filled(g.size, Cell{})
	for y, row := range g.cells {
		for x, c := range row {
			n := AliveNeighbors(g, x, y)
			// n == 3 covers both survival with three neighbors and birth.
			if (n == 2 && c.Alive) || n == 3 {
				next.cells[y][x] = Cell{Alive: true, Deaths: c.Deaths, LastHue: c.LastHue}
			} else {
				next.cells[y][x] = Cell{Alive: false, Deaths: c.Deaths + 1, LastHue: c.LastHue}
			}
		}
	}
	return next
}

// AliveNeighbors counts live cells in the Moore neighborhood of (x, y).
func AliveNeighbors(g Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += CheckNeighbor(g, x+dx, y+dy)
		}
	}
	return n
}

// CheckNeighbor returns 1 if (x, y) is inside the grid and alive, else 0.
func CheckNeighbor(g Grid, x, y int) int {
	if c, ok := g.At(x, y); ok && c.Alive {
		return 1
	}
	return 0
}
