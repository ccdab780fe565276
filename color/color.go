// Package color converts between color spaces.
package color

import (
	"fmt"
	"math"
)

// RGB holds red, green and blue channels in that order.
type RGB [3]uint8

// Hex renders the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// HslToRgb converts a color from HSL to RGB. h, s and l are expected in
// [0, 1]; each channel of the result is in [0, 255], rounded half up.
// Out of range input is not clamped and yields unspecified channels.
func HslToRgb(h, s, l float64) RGB {
	var r, g, b float64

	if s == 0 {
		r, g, b = l, l, l // achromatic
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToRgb(p, q, h+1.0/3)
		g = hueToRgb(p, q, h)
		b = hueToRgb(p, q, h-1.0/3)
	}

	return RGB{channel(r), channel(g), channel(b)}
}

func hueToRgb(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func channel(v float64) uint8 {
	return uint8(math.Floor(v*255 + 0.5))
}
