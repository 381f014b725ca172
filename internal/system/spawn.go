// internal/system/spawn.go
package system

import (
	"go-dodge/internal/component"
	"go-dodge/internal/config"
	"go-dodge/internal/entity"
	"go-dodge/internal/event"
	"go-dodge/internal/utils"
	"go-dodge/pkg/render"
)

// Viewport supplies the current visible area. It is read on every spawn and
// every retirement check, never cached.
type Viewport interface {
	Size() (width, height float64)
}

// SpawnSystem emits obstacles from the viewport edges at a score-dependent rate.
type SpawnSystem struct {
	world           *entity.World
	viewport        Viewport
	rng             utils.RandomSource
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, viewport Viewport, rng utils.RandomSource, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		viewport:        viewport,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnRate is the number of frames between spawns for a score.
// It never increases with score and never drops below SpawnRateFloor.
func SpawnRate(score int) int {
	rate := config.SpawnRateBase - score/config.SpawnRateScoreStep
	if rate < config.SpawnRateFloor {
		return config.SpawnRateFloor
	}
	return rate
}

// ObstacleSpeed grows linearly with score.
func ObstacleSpeed(score int) float64 {
	return config.ObstacleBaseSpeed + float64(score)/config.ObstacleSpeedDivisor
}

// Update spawns one obstacle when the current frame falls on the spawn rate.
func (s *SpawnSystem) Update() {
	if s.world.Frame%SpawnRate(s.world.Score) == 0 {
		s.Spawn()
	}
}

// Spawn places an obstacle just outside a random edge, aimed at where the player is right now.
func (s *SpawnSystem) Spawn() *component.Obstacle {
	width, height := s.viewport.Size()

	edge := component.Edge(s.rng.Intn(int(component.EdgeCount)))
	radius := utils.Range(s.rng, config.ObstacleMinRadius, config.ObstacleRadiusSpread)
	hue := s.rng.Float64() * 360

	var x, y float64
	switch edge {
	case component.EdgeTop:
		x, y = s.rng.Float64()*width, -radius
	case component.EdgeRight:
		x, y = width+radius, s.rng.Float64()*height
	case component.EdgeBottom:
		x, y = s.rng.Float64()*width, height+radius
	default:
		x, y = -radius, s.rng.Float64()*height
	}

	aimX, aimY := width/2, height/2
	if p := s.world.Player; p != nil {
		aimX, aimY = p.X, p.Y
	}
	vx, vy := utils.AimVelocity(x, y, aimX, aimY, ObstacleSpeed(s.world.Score))

	o := &component.Obstacle{
		ID:       s.world.NewEntity(),
		Position: component.Position{X: x, Y: y},
		Velocity: component.Velocity{X: vx, Y: vy},
		Renderable: component.Renderable{
			Color:  render.HSL(hue, config.ObstacleSaturation, config.ObstacleLightness),
			Radius: radius,
			Alpha:  1,
			Glow:   config.ObstacleGlowBlur,
		},
		Edge: edge,
	}
	s.world.Obstacles = append(s.world.Obstacles, o)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ObstacleSpawned, Data: o.ID})
	return o
}
