package palette

import "math"

// RecolorInterval is how often, in generations, the death ratio is
// resampled. In between, the previous value is held.
const RecolorInterval = 5

// Hue is a mapped value together with the color it produced.
type Hue struct {
	Value float64
	Color Color
}

// Mapper turns a cell's history into a display color.
type Mapper struct {
	space Space
}

func NewMapper(space Space) Mapper {
	return Mapper{space: space}
}

// Color derives the hue for a cell with the given death count and previous
// hue (nil when the cell has never been colored) at the given generation.
func (m Mapper) Color(deaths int, last *Hue, generation int) Hue {
	value := math.NaN()
	switch {
	case generation > 0 && generation%RecolorInterval == 0:
		value = float64(deaths) / float64(generation)
	case last != nil:
		value = last.Value
	}

	c := m.space.Scale(value)
	if last != nil {
		c = m.space.Blend(c, last.Color, Lighten)
	}
	return Hue{Value: value, Color: c}
}
