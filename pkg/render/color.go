// pkg/render/color.go
package render

import "image/color"

// Fade scales the alpha of c by k, clamped to [0, 1].
func Fade(c color.NRGBA, k float64) color.NRGBA {
	if k <= 0 {
		c.A = 0
		return c
	}
	if k >= 1 {
		return c
	}
	c.A = uint8(float64(c.A) * k)
	return c
}

// Mix interpolates every channel from a to b.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// DarkenColor halves the brightness of a color, keeping alpha.
func DarkenColor(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
