// component/render.go
package component

import "image/color"

// Renderable is what the renderer needs to draw a circle
type Renderable struct {
	Color  color.RGBA
	Radius float64
	Alpha  float64 // 1 is opaque
	Glow   float64 // halo blur radius, 0 for none
}
