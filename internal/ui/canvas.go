// internal/ui/canvas.go
package ui

import (
	"image/color"

	"go-dodge/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const glowAlpha = 0.25 // halo opacity relative to the body

// Canvas draws requests onto an ebiten image.
type Canvas struct {
	Target *ebiten.Image
}

func NewCanvas(target *ebiten.Image) *Canvas {
	return &Canvas{Target: target}
}

func (c *Canvas) DrawCircle(req render.DrawRequest) {
	if req.Alpha <= 0 || req.Radius <= 0 {
		return
	}
	x, y := float32(req.X), float32(req.Y)
	if req.Glow > 0 {
		halo := float32(req.Radius + req.Glow/2)
		vector.DrawFilledCircle(c.Target, x, y, halo, render.WithAlpha(req.Color, req.Alpha*glowAlpha), true)
	}
	vector.DrawFilledCircle(c.Target, x, y, float32(req.Radius), render.WithAlpha(req.Color, req.Alpha), true)
}

// Fade paints bg over the whole target at the given alpha instead of clearing it,
// so whatever moved last frame leaves a fading trail.
func (c *Canvas) Fade(bg color.RGBA, alpha float64) {
	b := c.Target.Bounds()
	vector.DrawFilledRect(c.Target, 0, 0, float32(b.Dx()), float32(b.Dy()), render.WithAlpha(bg, alpha), false)
}
