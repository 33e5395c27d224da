// Package colormap maps scalar stress values to colors through fixed
// named piecewise-linear palettes. It is the coloring backend for the
// mesh stress passes and for UI legends.
package colormap

import (
	"fmt"
	"image/color"
	"math"
)

// ColorMap is a closed enumeration of the available palettes. Each
// palette is a piecewise-linear stop table over [0,1] with stops at
// exactly 0 and 1.
type ColorMap uint8

const (
	Jet ColorMap = iota
	Thermal
	Viridis
	Plasma
	CoolWarm
	numColorMaps
)

func (cm ColorMap) String() string {
	switch cm {
	case Jet:
		return "jet"
	case Thermal:
		return "thermal"
	case Viridis:
		return "viridis"
	case Plasma:
		return "plasma"
	case CoolWarm:
		return "coolwarm"
	}
	return fmt.Sprintf("ColorMap(%d)", uint8(cm))
}

// ParseColorMap resolves a palette name at the UI boundary. Inside the
// library palettes are always passed as ColorMap values.
func ParseColorMap(name string) (ColorMap, error) {
	for cm := Jet; cm < numColorMaps; cm++ {
		if cm.String() == name {
			return cm, nil
		}
	}
	return Jet, fmt.Errorf("colormap: unknown palette %q", name)
}

// Mapper is anything that maps a normalized position in [0,1] to a
// color. ColorMap and Reversed implement it.
type Mapper interface {
	At(t float64) color.NRGBA
}

type stop struct {
	pos float64
	c   color.NRGBA
}

var (
	jetStops = []stop{
		{0, color.NRGBA{0, 0, 128, 255}},
		{0.125, color.NRGBA{0, 0, 255, 255}},
		{0.375, color.NRGBA{0, 255, 255, 255}},
		{0.625, color.NRGBA{255, 255, 0, 255}},
		{0.875, color.NRGBA{255, 0, 0, 255}},
		{1, color.NRGBA{128, 0, 0, 255}},
	}
	thermalStops = []stop{
		{0, color.NRGBA{0, 0, 0, 255}},
		{0.33, color.NRGBA{230, 0, 0, 255}},
		{0.66, color.NRGBA{255, 210, 0, 255}},
		{1, color.NRGBA{255, 255, 255, 255}},
	}
	viridisStops = []stop{
		{0, color.NRGBA{68, 1, 84, 255}},
		{0.25, color.NRGBA{59, 82, 139, 255}},
		{0.5, color.NRGBA{33, 145, 140, 255}},
		{0.75, color.NRGBA{94, 201, 98, 255}},
		{1, color.NRGBA{253, 231, 37, 255}},
	}
	plasmaStops = []stop{
		{0, color.NRGBA{13, 8, 135, 255}},
		{0.25, color.NRGBA{126, 3, 168, 255}},
		{0.5, color.NRGBA{204, 71, 120, 255}},
		{0.75, color.NRGBA{248, 149, 64, 255}},
		{1, color.NRGBA{240, 249, 33, 255}},
	}
	// Moreland's smooth diverging blue-red map endpoints.
	coolwarmStops = []stop{
		{0, color.NRGBA{59, 76, 192, 255}},
		{0.5, color.NRGBA{221, 221, 221, 255}},
		{1, color.NRGBA{180, 4, 38, 255}},
	}
)

func (cm ColorMap) stops() []stop {
	switch cm {
	case Thermal:
		return thermalStops
	case Viridis:
		return viridisStops
	case Plasma:
		return plasmaStops
	case CoolWarm:
		return coolwarmStops
	}
	return jetStops
}

// At returns the palette color at normalized position t. t is clamped
// to [0,1].
func (cm ColorMap) At(t float64) color.NRGBA {
	stops := cm.stops()
	if math.IsNaN(t) || t <= 0 {
		return stops[0].c
	}
	if t >= 1 {
		return stops[len(stops)-1].c
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].pos {
			lo, hi := stops[i-1], stops[i]
			f := (t - lo.pos) / (hi.pos - lo.pos)
			return lerpNRGBA(lo.c, hi.c, f)
		}
	}
	return stops[len(stops)-1].c
}

func lerpNRGBA(a, b color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: lerp8(a.R, b.R, f),
		G: lerp8(a.G, b.G, f),
		B: lerp8(a.B, b.B, f),
		A: 255,
	}
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + f*(float64(b)-float64(a))))
}

// Normalize maps value into [0,1] over the [min,max] domain. A collapsed
// domain (min == max) deterministically maps to 0 rather than dividing
// by zero. NaN values also map to 0.
func Normalize(value, min, max float64) float64 {
	if max == min || math.IsNaN(value) {
		return 0
	}
	t := (value - min) / (max - min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Interpolate maps value over the [min,max] domain through m.
func Interpolate(m Mapper, value, min, max float64) color.NRGBA {
	return m.At(Normalize(value, min, max))
}

// Interpolate maps value over the [min,max] domain through the palette.
func (cm ColorMap) Interpolate(value, min, max float64) color.NRGBA {
	return Interpolate(cm, value, min, max)
}

// Reversed runs a palette end to start, for inverted stress scales.
type Reversed struct {
	Base ColorMap
}

// At returns the reversed palette color at t.
func (r Reversed) At(t float64) color.NRGBA {
	if math.IsNaN(t) {
		return r.Base.At(1)
	}
	return r.Base.At(1 - t)
}

func (r Reversed) String() string { return r.Base.String() + "_r" }
