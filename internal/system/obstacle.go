// internal/system/obstacle.go
package system

import (
	"go-dodge/internal/component"
	"go-dodge/internal/config"
	"go-dodge/internal/entity"
	"go-dodge/internal/event"
	"go-dodge/internal/utils"
)

// ObstacleSystem moves obstacles, tests them against the player and retires
// the ones that leave the dead zone around the viewport.
type ObstacleSystem struct {
	world           *entity.World
	viewport        Viewport
	eventDispatcher *event.Dispatcher
}

func NewObstacleSystem(world *entity.World, viewport Viewport, eventDispatcher *event.Dispatcher) *ObstacleSystem {
	return &ObstacleSystem{
		world:           world,
		viewport:        viewport,
		eventDispatcher: eventDispatcher,
	}
}

// Collides reports whether the player and obstacle overlap. Touching is not a hit.
func Collides(p *component.Player, o *component.Obstacle) bool {
	return utils.CirclesOverlap(p.X, p.Y, p.Radius, o.X, o.Y, o.Radius)
}

// OutOfBounds reports whether pos is more than DespawnMargin outside a width x height viewport.
func OutOfBounds(pos component.Position, width, height float64) bool {
	return pos.X < -config.DespawnMargin || pos.X > width+config.DespawnMargin ||
		pos.Y < -config.DespawnMargin || pos.Y > height+config.DespawnMargin
}

// Update advances every obstacle in spawn order. The first obstacle touching the
// player stops the pass: it and everything after it stay where they are and a
// Collision event is sent. Survivors keep their order.
func (s *ObstacleSystem) Update() {
	width, height := s.viewport.Size()
	player := s.world.Player
	obstacles := s.world.Obstacles
	kept := obstacles[:0]

	for i, o := range obstacles {
		o.X += o.Velocity.X
		o.Y += o.Velocity.Y

		if player != nil && Collides(player, o) {
			kept = append(kept, obstacles[i:]...)
			s.commit(obstacles, kept)
			s.eventDispatcher.Dispatch(event.Event{Type: event.Collision, Data: o.ID})
			return
		}

		if OutOfBounds(o.Position, width, height) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.ObstacleRetired, Data: o.ID})
			continue
		}
		kept = append(kept, o)
	}
	s.commit(obstacles, kept)
}

func (s *ObstacleSystem) commit(all, kept []*component.Obstacle) {
	clear(all[len(kept):])
	s.world.Obstacles = kept
}
