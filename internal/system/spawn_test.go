package system

import (
	"math"
	"testing"

	"go-dodge/internal/component"
	"go-dodge/internal/entity"
	"go-dodge/internal/event"
	"go-dodge/internal/utils"
)

func TestSpawnRate(t *testing.T) {
	cases := []struct{ score, want int }{
		{0, 60},
		{9, 60},
		{55, 55},
		{100, 50},
		{499, 11},
		{500, 10},
		{600, 10},
		{100000, 10},
	}
	for _, c := range cases {
		if got := SpawnRate(c.score); got != c.want {
			t.Errorf("SpawnRate(%d) = %d, want %d", c.score, got, c.want)
		}
	}
}

func TestSpawnRateMonotonicAndBounded(t *testing.T) {
	prev := SpawnRate(0)
	for score := 0; score <= 2000; score += 10 {
		r := SpawnRate(score)
		if r > prev {
			t.Fatalf("rate rose from %d to %d at score %d", prev, r, score)
		}
		if r < 10 {
			t.Fatalf("rate %d below floor at score %d", r, score)
		}
		prev = r
	}
}

func TestObstacleSpeed(t *testing.T) {
	if s := ObstacleSpeed(0); s != 2 {
		t.Errorf("speed at 0 = %f, want 2", s)
	}
	if s := ObstacleSpeed(300); s != 5 {
		t.Errorf("speed at 300 = %f, want 5", s)
	}
}

func newSpawnFixture(rng utils.RandomSource) (*entity.World, *SpawnSystem, *eventLog) {
	world := entity.NewWorld()
	world.Reset(NewPlayer(400, 300))
	d := event.NewDispatcher()
	log := listenAll(d)
	return world, NewSpawnSystem(world, &fixedViewport{800, 600}, rng, d), log
}

func TestSpawnEdgePlacement(t *testing.T) {
	cases := []struct {
		edge  component.Edge
		wantX float64
		wantY float64
	}{
		// radius = 10 + 0.5*20 = 20, span coordinate = 0.25 of the edge
		{component.EdgeTop, 200, -20},
		{component.EdgeRight, 820, 150},
		{component.EdgeBottom, 200, 620},
		{component.EdgeLeft, -20, 150},
	}
	for _, c := range cases {
		rng := &scriptedRand{ints: []int{int(c.edge)}, floats: []float64{0.5, 0.1, 0.25}}
		world, sys, log := newSpawnFixture(rng)

		o := sys.Spawn()
		if o.X != c.wantX || o.Y != c.wantY {
			t.Errorf("%v: spawned at (%f, %f), want (%f, %f)", c.edge, o.X, o.Y, c.wantX, c.wantY)
		}
		if o.Radius != 20 {
			t.Errorf("%v: radius %f, want 20", c.edge, o.Radius)
		}
		if o.Edge != c.edge {
			t.Errorf("edge = %v, want %v", o.Edge, c.edge)
		}
		if len(world.Obstacles) != 1 || log.count(event.ObstacleSpawned) != 1 {
			t.Errorf("%v: obstacles=%d spawned events=%d", c.edge, len(world.Obstacles), log.count(event.ObstacleSpawned))
		}
	}
}

func TestSpawnAimsAtPlayerWithScoreSpeed(t *testing.T) {
	rng := &scriptedRand{ints: []int{3}, floats: []float64{0, 0, 0.5}}
	world, sys, _ := newSpawnFixture(rng)
	world.Score = 300

	o := sys.Spawn() // left edge at (-10, 300), player at (400, 300)
	if math.Abs(o.Velocity.X-5) > 1e-9 || math.Abs(o.Velocity.Y) > 1e-9 {
		t.Fatalf("velocity = (%f, %f), want (5, 0)", o.Velocity.X, o.Velocity.Y)
	}
}

func TestSpawnRadiusRangeAndSpeedAtZero(t *testing.T) {
	world, sys, _ := newSpawnFixture(utils.NewPRNGService(7))
	for i := 0; i < 200; i++ {
		o := sys.Spawn()
		if o.Radius < 10 || o.Radius >= 30 {
			t.Fatalf("radius %f outside [10,30)", o.Radius)
		}
		if s := math.Hypot(o.Velocity.X, o.Velocity.Y); math.Abs(s-2) > 1e-9 {
			t.Fatalf("speed %f, want 2", s)
		}
		if o.Color.A != 255 {
			t.Fatalf("obstacle colour not opaque: %v", o.Color)
		}
	}
	if len(world.Obstacles) != 200 {
		t.Fatalf("obstacles = %d, want 200", len(world.Obstacles))
	}
}

func TestSpawnUpdateGatesOnFrame(t *testing.T) {
	world, sys, _ := newSpawnFixture(utils.NewPRNGService(3))

	for frame := 0; frame < 121; frame++ {
		world.Frame = frame
		sys.Update()
	}
	// frames 0, 60 and 120
	if len(world.Obstacles) != 3 {
		t.Fatalf("obstacles after 121 frames = %d, want 3", len(world.Obstacles))
	}
}

func TestSpawnFallsBackToCenterWithoutPlayer(t *testing.T) {
	world := entity.NewWorld()
	rng := &scriptedRand{ints: []int{3}, floats: []float64{0, 0, 0.5}}
	sys := NewSpawnSystem(world, &fixedViewport{800, 600}, rng, event.NewDispatcher())

	o := sys.Spawn()
	if o.Velocity.X <= 0 || math.Abs(o.Velocity.Y) > 1e-9 {
		t.Fatalf("velocity = (%f, %f), want aimed right at center", o.Velocity.X, o.Velocity.Y)
	}
}
