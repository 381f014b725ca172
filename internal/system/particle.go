// internal/system/particle.go
package system

import (
	"image/color"

	"go-dodge/internal/component"
	"go-dodge/internal/config"
	"go-dodge/internal/entity"
	"go-dodge/internal/utils"
)

// ParticleSystem emits and fades the sparks shown when the player is hit.
type ParticleSystem struct {
	world *entity.World
	rng   utils.RandomSource
}

// NewParticleSystem creates a new particle system.
func NewParticleSystem(world *entity.World, rng utils.RandomSource) *ParticleSystem {
	return &ParticleSystem{world: world, rng: rng}
}

// Burst emits ParticleCount particles at (x, y), each with its own radius and velocity.
func (s *ParticleSystem) Burst(x, y float64, c color.RGBA) {
	for i := 0; i < config.ParticleCount; i++ {
		radius := s.rng.Float64() * config.ParticleMaxRadius
		vx := utils.Centered(s.rng, config.ParticleSpread)
		vy := utils.Centered(s.rng, config.ParticleSpread)
		s.world.Particles = append(s.world.Particles, &component.Particle{
			Position:   component.Position{X: x, Y: y},
			Velocity:   component.Velocity{X: vx, Y: vy},
			Renderable: component.Renderable{Color: c, Radius: radius, Alpha: 1},
		})
	}
}

// Update drops particles that have faded out, then moves and fades the rest.
// A particle starting at full alpha is advanced exactly 1/ParticleFadeStep times.
func (s *ParticleSystem) Update() {
	particles := s.world.Particles
	kept := particles[:0]
	for _, p := range particles {
		if p.Alpha <= config.ParticleMinAlpha {
			continue
		}
		p.X += p.Velocity.X
		p.Y += p.Velocity.Y
		p.Alpha -= config.ParticleFadeStep
		kept = append(kept, p)
	}
	clear(particles[len(kept):])
	s.world.Particles = kept
}
