package colormap

import (
	"fmt"
	"image/color"
	"strings"
)

// Re-expressions of the palette interpolation for the different call
// sites: CSS strings for the UI layer, hex legends, discrete sample
// extraction and normalized channel triples for GPU vertex colors.

// Hex formats a color as a #rrggbb string.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS formats a color as a CSS rgb() string.
func CSS(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HexAt returns the hex form of m at a normalized position.
func HexAt(m Mapper, t float64) string {
	return Hex(m.At(t))
}

// Normalized returns the color channels of m at value as floats in
// [0,1], the layout expected by GPU-facing vertex color buffers.
func Normalized(m Mapper, value, min, max float64) [3]float64 {
	c := Interpolate(m, value, min, max)
	return [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// Samples extracts n evenly spaced colors across [0,1]. n < 2 yields a
// single sample at 0.
func Samples(m Mapper, n int) []color.NRGBA {
	if n < 2 {
		return []color.NRGBA{m.At(0)}
	}
	out := make([]color.NRGBA, n)
	for i := range out {
		out[i] = m.At(float64(i) / float64(n-1))
	}
	return out
}

// CSSGradient builds a CSS linear-gradient() string with n evenly
// spaced stops, usable directly as a legend background.
func CSSGradient(m Mapper, n int) string {
	if n < 2 {
		n = 2
	}
	var sb strings.Builder
	sb.WriteString("linear-gradient(to right")
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		fmt.Fprintf(&sb, ", %s %.1f%%", Hex(m.At(t)), 100*t)
	}
	sb.WriteString(")")
	return sb.String()
}
