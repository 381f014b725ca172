package system

import (
	"testing"

	"go-dodge/internal/config"
	"go-dodge/internal/entity"
	"go-dodge/internal/utils"
)

func TestBurstEmitsTwentyAtPosition(t *testing.T) {
	world := entity.NewWorld()
	sys := NewParticleSystem(world, utils.NewPRNGService(5))

	sys.Burst(300, 400, config.PlayerColor)

	if len(world.Particles) != 20 {
		t.Fatalf("particles = %d, want 20", len(world.Particles))
	}
	for i, p := range world.Particles {
		if p.X != 300 || p.Y != 400 {
			t.Fatalf("particle %d at (%f, %f), want (300, 400)", i, p.X, p.Y)
		}
		if p.Color != config.PlayerColor || p.Alpha != 1 {
			t.Fatalf("particle %d colour=%v alpha=%f", i, p.Color, p.Alpha)
		}
		if p.Radius < 0 || p.Radius >= 3 {
			t.Fatalf("particle %d radius %f outside [0,3)", i, p.Radius)
		}
		if p.Velocity.X < -4 || p.Velocity.X >= 4 || p.Velocity.Y < -4 || p.Velocity.Y >= 4 {
			t.Fatalf("particle %d velocity (%f, %f) outside [-4,4)", i, p.Velocity.X, p.Velocity.Y)
		}
	}
}

func TestBurstUsesScriptedRandomness(t *testing.T) {
	world := entity.NewWorld()
	rng := &scriptedRand{floats: []float64{0.5, 1, 0}}
	NewParticleSystem(world, rng).Burst(0, 0, config.PlayerColor)

	p := world.Particles[0]
	if p.Radius != 1.5 || p.Velocity.X != 4 || p.Velocity.Y != -4 {
		t.Fatalf("first particle radius=%f v=(%f, %f), want 1.5 (4, -4)", p.Radius, p.Velocity.X, p.Velocity.Y)
	}
}

func TestParticleLivesExactlyFiftyFrames(t *testing.T) {
	world := entity.NewWorld()
	sys := NewParticleSystem(world, utils.NewPRNGService(9))
	sys.Burst(0, 0, config.PlayerColor)
	p := world.Particles[0]
	startX := p.X

	prev := p.Alpha
	for frame := 1; frame <= 50; frame++ {
		sys.Update()
		if len(world.Particles) != 20 {
			t.Fatalf("frame %d: particles = %d, want 20", frame, len(world.Particles))
		}
		if p.Alpha >= prev {
			t.Fatalf("frame %d: alpha did not decrease (%f -> %f)", frame, prev, p.Alpha)
		}
		prev = p.Alpha
	}
	if want := startX + 50*p.Velocity.X; abs(p.X-want) > 1e-9 {
		t.Fatalf("x after 50 frames = %f, want %f", p.X, want)
	}

	sys.Update()
	if len(world.Particles) != 0 {
		t.Fatalf("particles after 51 frames = %d, want 0", len(world.Particles))
	}
}

func TestParticlesRemovedIndependently(t *testing.T) {
	world := entity.NewWorld()
	sys := NewParticleSystem(world, utils.NewPRNGService(2))
	sys.Burst(0, 0, config.PlayerColor)
	for i := 0; i < 25; i++ {
		sys.Update()
	}
	sys.Burst(10, 10, config.PlayerColor)
	for i := 0; i < 26; i++ {
		sys.Update()
	}
	if len(world.Particles) != 20 {
		t.Fatalf("particles = %d, want only the second batch (20)", len(world.Particles))
	}
	for _, p := range world.Particles {
		if p.Alpha <= 0.4 || p.Alpha >= 0.5 {
			t.Fatalf("survivor alpha %f, want about 0.48", p.Alpha)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
