// internal/system/player_system.go
package system

import (
	"go-dodge/internal/component"
	"go-dodge/internal/config"
	"go-dodge/internal/entity"
	"go-dodge/internal/utils"
)

// PlayerSystem eases the player toward its target.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

// NewPlayer creates the player at (x, y) with its target on itself.
func NewPlayer(x, y float64) *component.Player {
	return &component.Player{
		Position: component.Position{X: x, Y: y},
		Target:   component.Position{X: x, Y: y},
		Renderable: component.Renderable{
			Color:  config.PlayerColor,
			Radius: config.PlayerRadius,
			Alpha:  1,
			Glow:   config.PlayerGlowBlur,
		},
	}
}

// Update covers a fixed fraction of the remaining distance to the target.
// The player never lands exactly on the target.
func (s *PlayerSystem) Update() {
	p := s.world.Player
	if p == nil {
		return
	}
	p.X, p.Y = utils.EaseToward(p.X, p.Y, p.Target.X, p.Target.Y, config.PlayerEasing)
}
