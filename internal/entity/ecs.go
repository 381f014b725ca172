// internal/entity/ecs.go
package entity

import (
	"go-dodge/internal/component"
	"go-dodge/internal/types"
)

// World is the authoritative session state. Obstacles and particles are kept
// in spawn order, which is also the order collisions are tested in.
type World struct {
	NextID     types.EntityID
	Frame      int // frames simulated this session, only used for spawn gating
	Score      int
	Player     *component.Player
	Obstacles  []*component.Obstacle
	Particles  []*component.Particle
	Phase      component.Phase
	Generation int // bumped on every reset
}

func NewWorld() *World {
	return &World{
		NextID: 1,
		Phase:  component.Idle,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Reset clears the session and installs a fresh player.
// The particle batch from a previous game over is discarded too.
func (w *World) Reset(player *component.Player) {
	w.Player = player
	w.Obstacles = w.Obstacles[:0]
	w.Particles = w.Particles[:0]
	w.Score = 0
	w.Frame = 0
	w.NextID = 1
	w.Generation++
}

// FindObstacle returns the live obstacle with the given id.
func (w *World) FindObstacle(id types.EntityID) (*component.Obstacle, bool) {
	for _, o := range w.Obstacles {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}
