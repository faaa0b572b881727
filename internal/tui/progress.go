package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/heatlife/internal/life"
)

const (
	barWidth   = 30
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	clearLine  = "\r\033[K"
)

// ProgressRenderer prints a one-line loading indicator as generations are
// computed.
type ProgressRenderer struct {
	out       io.Writer
	maxGen    int
	frameRate int
	lastFrame time.Time
	printer   *message.Printer
	now       func() time.Time
}

// NewProgressRenderer writes to out at most frameRate times per second. A
// non-positive frameRate prints on every step.
func NewProgressRenderer(out io.Writer, maxGenerations, frameRate int) *ProgressRenderer {
	return &ProgressRenderer{
		out:       out,
		maxGen:    maxGenerations,
		frameRate: frameRate,
		printer:   message.NewPrinter(language.English),
		now:       time.Now,
	}
}

func (r *ProgressRenderer) OnStep(generation int, g life.Grid) {
	if r.frameRate > 0 {
		now := r.now()
		if now.Sub(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
		r.lastFrame = now
	}
	r.render(generation, g)
}

// Finish prints the final state regardless of throttling.
func (r *ProgressRenderer) Finish(generation int, g life.Grid) {
	r.render(generation, g)
	fmt.Fprint(r.out, "\n")
}

// Line formats the loaded/total cell count for a grid of the given size.
func (r *ProgressRenderer) Line(generation, size int) string {
	cells := size * size
	return r.printer.Sprintf("%d / %d cells loaded", cells*generation, cells*r.maxGen)
}

func (r *ProgressRenderer) render(generation int, g life.Grid) {
	pct := 0.0
	if r.maxGen > 0 {
		pct = float64(generation) / float64(r.maxGen)
	}
	filled := int(pct * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	fmt.Fprintf(r.out, "%s  gen %4d  alive %6d  %s  %s", clearLine, generation, g.Alive(), bar, r.Line(generation, g.Size()))
}

func (r *ProgressRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *ProgressRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
