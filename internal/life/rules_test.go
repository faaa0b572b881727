package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/heatlife/internal/life"
)

func withPattern(size int, name string, x, y int) life.Grid {
	g := life.Filled(size, life.Cell{})
	p, err := life.LookupPattern(name)
	Expect(err).NotTo(HaveOccurred())
	g.Place(p, x, y)
	return g
}

func cellAt(g life.Grid, x, y int) life.Cell {
	c, ok := g.At(x, y)
	Expect(ok).To(BeTrue())
	return c
}

var _ = Describe("Step", func() {
	It("kills a lone cell and counts the death", func() {
		g := life.Filled(3, life.Cell{})
		g.SetAlive(1, 1, true)

		next := life.Step(g)

		c := cellAt(next, 1, 1)
		Expect(c.Alive).To(BeFalse())
		Expect(c.Deaths).To(Equal(1))
	})

	It("gives birth to a dead cell with exactly three neighbors", func() {
		g := withPattern(5, "tromino", 1, 1)
		Expect(cellAt(g, 2, 2).Alive).To(BeFalse())
		Expect(life.AliveNeighbors(g, 2, 2)).To(Equal(3))

		next := life.Step(g)

		Expect(cellAt(next, 2, 2).Alive).To(BeTrue())
		Expect(cellAt(next, 2, 2).Deaths).To(Equal(0))
	})

	It("leaves a block unchanged", func() {
		g := withPattern(4, "block", 1, 1)
		next := g
		for i := 0; i < 5; i++ {
			next = life.Step(next)
			Expect(next.SameLiveness(g)).To(BeTrue())
		}
		for _, xy := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
			Expect(cellAt(next, xy[0], xy[1]).Alive).To(BeTrue())
		}
	})

	It("oscillates a blinker with period two", func() {
		horizontal := withPattern(5, "blinker", 1, 2)

		vertical := life.Step(horizontal)
		Expect(vertical.String()).To(Equal("" +
			".....\n" +
			"..O..\n" +
			"..O..\n" +
			"..O..\n" +
			".....\n"))

		Expect(life.Step(vertical).SameLiveness(horizontal)).To(BeTrue())
	})

	It("moves a glider one cell diagonally every four generations", func() {
		g := withPattern(8, "glider", 1, 1)
		for i := 0; i < 4; i++ {
			g = life.Step(g)
		}
		Expect(g.SameLiveness(withPattern(8, "glider", 2, 2))).To(BeTrue())
	})

	It("does not wrap around the edges", func() {
		g := life.Filled(3, life.Cell{})
		g.SetAlive(0, 0, true)
		g.SetAlive(2, 0, true)
		g.SetAlive(0, 2, true)

		Expect(life.AliveNeighbors(g, 2, 2)).To(Equal(0))
		Expect(cellAt(life.Step(g), 1, 1).Alive).To(BeTrue())
		Expect(cellAt(life.Step(g), 2, 2).Alive).To(BeFalse())
	})
})
