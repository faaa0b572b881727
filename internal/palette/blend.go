package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type BlendMode int

const (
	Lighten BlendMode = iota
	Darken
	Multiply
	Screen
)

var blendNames = map[BlendMode]string{
	Lighten:  "lighten",
	Darken:   "darken",
	Multiply: "multiply",
	Screen:   "screen",
}

func (m BlendMode) String() string {
	if s, ok := blendNames[m]; ok {
		return s
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// Blend mixes a over b one channel at a time.
func Blend(a, b Color, mode BlendMode) Color {
	var op func(x, y float64) float64
	switch mode {
	case Darken:
		op = math.Min
	case Multiply:
		op = func(x, y float64) float64 { return x * y }
	case Screen:
		op = func(x, y float64) float64 { return 1 - (1-x)*(1-y) }
	default:
		op = math.Max
	}
	return colorful.Color{
		R: op(a.R, b.R),
		G: op(a.G, b.G),
		B: op(a.B, b.B),
	}.Clamped()
}
