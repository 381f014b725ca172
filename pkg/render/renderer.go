package render

import "image/color"

// DrawRequest describes one filled circle for a frame.
type DrawRequest struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
	Alpha  float64
	Glow   float64
}

// Renderer turns draw requests into pixels (or cells). The simulation never draws by itself.
type Renderer interface {
	DrawCircle(req DrawRequest)
}
