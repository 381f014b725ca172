// internal/system/render.go
package system

import (
	"go-dodge/internal/component"
	"go-dodge/internal/entity"
	"go-dodge/pkg/render"
)

// RenderSystem turns the world into draw requests
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

// Draw emits the player (while it is alive), then obstacles, then particles.
func (s *RenderSystem) Draw(r render.Renderer) {
	if p := s.world.Player; p != nil && s.world.Phase == component.Running {
		r.DrawCircle(request(p.Position, p.Renderable))
	}
	for _, o := range s.world.Obstacles {
		r.DrawCircle(request(o.Position, o.Renderable))
	}
	for _, p := range s.world.Particles {
		r.DrawCircle(request(p.Position, p.Renderable))
	}
}

func request(pos component.Position, r component.Renderable) render.DrawRequest {
	return render.DrawRequest{
		X:      pos.X,
		Y:      pos.Y,
		Radius: r.Radius,
		Color:  r.Color,
		Alpha:  r.Alpha,
		Glow:   r.Glow,
	}
}
