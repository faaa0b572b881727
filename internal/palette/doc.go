// Package palette maps a cell's accumulated history to a display color.
//
// The package is split in two layers:
//
//   - [Space]: the color-math capability (gradient lookup and two-color
//     blending). [Gradient] is the go-colorful backed implementation.
//   - [Mapper]: the per-cell policy that turns a death count, the previous
//     [Hue] and the current generation into the next [Hue].
//
// # Example
//
//	g, _ := palette.NewGradient("Spectral", 6, palette.ModeLRGB)
//	m := palette.NewMapper(g)
//	hue := m.Color(deaths, last, generation)
//	fmt.Println(hue.Color.Hex())
//
// A [Mapper] holds no mutable state, so it is safe to share between
// independent simulations.
package palette
