package colormap

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// Map adapts a Mapper to gonum's plot palette.ColorMap interface so
// tank palettes can be used directly in gonum plots and legends.
type Map struct {
	m        Mapper
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*Map)(nil)

// NewMap wraps m with the [min,max] scalar domain and full opacity.
func NewMap(m Mapper, min, max float64) *Map {
	return &Map{m: m, min: min, max: max, alpha: 1}
}

// At returns the color for a scalar value inside the domain.
func (p *Map) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	if v < p.min {
		return nil, palette.ErrUnderflow
	}
	if v > p.max {
		return nil, palette.ErrOverflow
	}
	c := Interpolate(p.m, v, p.min, p.max)
	c.A = uint8(math.Round(p.alpha * 255))
	return c, nil
}

func (p *Map) Min() float64       { return p.min }
func (p *Map) SetMin(min float64) { p.min = min }
func (p *Map) Max() float64       { return p.max }
func (p *Map) SetMax(max float64) { p.max = max }
func (p *Map) Alpha() float64     { return p.alpha }
func (p *Map) SetAlpha(a float64) { p.alpha = a }

// Palette extracts a discrete gonum palette with the given number of
// evenly spaced colors.
func (p *Map) Palette(colors int) palette.Palette {
	samples := Samples(p.m, colors)
	cs := make([]color.Color, len(samples))
	for i, s := range samples {
		cs[i] = s
	}
	return discrete(cs)
}

type discrete []color.Color

func (d discrete) Colors() []color.Color { return d }
