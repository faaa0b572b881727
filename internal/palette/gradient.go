package palette

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is the renderable color type used throughout heatlife.
type Color = colorful.Color

// Mode selects the color space the gradient interpolates in.
type Mode string

const (
	ModeLRGB Mode = "lrgb" // linear light
	ModeLab  Mode = "lab"
	ModeRGB  Mode = "rgb"
)

const (
	DefaultPalette = "Spectral"
	DefaultGamma   = 6.0
	DefaultMode    = ModeLRGB
)

// NoData is returned for values that cannot be placed on the gradient.
var NoData = mustHex("#cccccc")

// ColorBrewer sequences, low to high.
var palettes = map[string][]string{
	"Spectral": {"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"},
	"YlGnBu":   {"#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4", "#1d91c0", "#225ea8", "#253494", "#081d58"},
	"BuPu":     {"#f7fcfd", "#e0ecf4", "#bfd3e6", "#9ebcda", "#8c96c6", "#8c6bb1", "#88419d", "#810f7c", "#4d004b"},
	"RdPu":     {"#fff7f3", "#fde0dd", "#fcc5c0", "#fa9fb5", "#f768a1", "#dd3497", "#ae017e", "#7a0177", "#49006a"},
}

// Space is the color-math capability the mapper depends on.
type Space interface {
	Scale(v float64) Color
	Blend(a, b Color, mode BlendMode) Color
}

// Gradient is a gamma-corrected color scale over a named palette.
type Gradient struct {
	name  string
	stops []Color
	gamma float64
	mode  Mode
}

// NewGradient builds the scale for a named palette. A non-positive gamma is
// treated as 1.
func NewGradient(name string, gamma float64, mode Mode) (*Gradient, error) {
	hexes, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("palette: unknown palette %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if gamma <= 0 {
		gamma = 1
	}
	stops := make([]Color, len(hexes))
	for i, h := range hexes {
		stops[i] = mustHex(h)
	}
	return &Gradient{name: name, stops: stops, gamma: gamma, mode: mode}, nil
}

// Default returns the Spectral, gamma 6, linear-light scale.
func Default() *Gradient {
	g, err := NewGradient(DefaultPalette, DefaultGamma, DefaultMode)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Gradient) Name() string   { return g.name }
func (g *Gradient) Gamma() float64 { return g.gamma }
func (g *Gradient) Mode() Mode     { return g.mode }

// Scale maps v in [0, 1] onto the gradient. Out of range values are clamped,
// NaN maps to NoData.
func (g *Gradient) Scale(v float64) Color {
	if math.IsNaN(v) {
		return NoData
	}
	t := math.Max(0, math.Min(1, v))
	if g.gamma != 1 {
		t = math.Pow(t, g.gamma)
	}

	pos := t * float64(len(g.stops)-1)
	i := int(pos)
	if i >= len(g.stops)-1 {
		return g.stops[len(g.stops)-1]
	}
	frac := pos - float64(i)
	a, b := g.stops[i], g.stops[i+1]

	switch g.mode {
	case ModeLab:
		return a.BlendLab(b, frac).Clamped()
	case ModeRGB:
		return a.BlendRgb(b, frac).Clamped()
	default:
		return blendLinear(a, b, frac)
	}
}

// blendLinear interpolates each channel in linear light.
func blendLinear(a, b Color, t float64) Color {
	ar, ag, ab := a.LinearRgb()
	br, bg, bb := b.LinearRgb()
	return colorful.LinearRgb(
		ar+t*(br-ar),
		ag+t*(bg-ag),
		ab+t*(bb-ab),
	).Clamped()
}

// Blend combines two colors channel-wise in sRGB.
func (g *Gradient) Blend(a, b Color, mode BlendMode) Color {
	return Blend(a, b, mode)
}

// Names lists the built-in palettes.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseMode validates an interpolation mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeLRGB:
		return ModeLRGB, nil
	case ModeLab:
		return ModeLab, nil
	case ModeRGB:
		return ModeRGB, nil
	}
	return "", fmt.Errorf("palette: unknown mode %q", s)
}

func mustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
