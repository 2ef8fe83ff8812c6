package model

import "fmt"

// RGBA is a color with components in the 0–1 range.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Black is the default fill and stroke color.
var Black = RGBA{A: 1}

// Gray creates an opaque gray color (g operator semantics: fill/stroke set
// to (g, g, g, 1)).
func Gray(g float64) RGBA {
	return RGBA{R: g, G: g, B: g, A: 1}
}

// RGB creates an opaque RGB color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// CMYK converts CMYK components to an opaque RGB color using the
// uncalibrated conversion r=(1-c)(1-k), g=(1-m)(1-k), b=(1-y)(1-k).
func CMYK(c, m, y, k float64) RGBA {
	return RGBA{
		R: (1 - c) * (1 - k),
		G: (1 - m) * (1 - k),
		B: (1 - y) * (1 - k),
		A: 1,
	}
}

// Hex returns the color as a #rrggbb string. Alpha is not represented.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clamp255(c.R), clamp255(c.G), clamp255(c.B))
}

func clamp255(f float64) uint8 {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return uint8(f * 255)
}
