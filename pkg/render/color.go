// pkg/render/color.go
package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL converts hue in degrees, saturation and lightness in [0, 1] to an opaque colour.
func HSL(hue, saturation, lightness float64) color.RGBA {
	r, g, b := colorful.Hsl(hue, saturation, lightness).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha scaled by a in [0, 1], premultiplied as image/color expects.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
