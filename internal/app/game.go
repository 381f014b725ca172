// internal/app/game.go
package app

import (
	"log"

	"go-dodge/internal/component"
	"go-dodge/internal/entity"
	"go-dodge/internal/event"
	"go-dodge/internal/system"
	"go-dodge/internal/utils"
	"go-dodge/pkg/render"

	"github.com/pkg/errors"
)

// ErrNonFiniteTarget is returned when a target coordinate is NaN or infinite.
var ErrNonFiniteTarget = errors.New("target coordinates must be finite")

// Game holds the session state and advances it one frame at a time.
// It is not safe for concurrent use; frontends call it from their frame loop.
type Game struct {
	World           *entity.World
	Viewport        *Viewport
	EventDispatcher *event.Dispatcher
	Rng             utils.RandomSource
	PlayerSystem    *system.PlayerSystem
	SpawnSystem     *system.SpawnSystem
	ObstacleSystem  *system.ObstacleSystem
	ParticleSystem  *system.ParticleSystem
	ScoreSystem     *system.ScoreSystem
	StateSystem     *system.StateSystem
	RenderSystem    *system.RenderSystem
}

// NewGame wires the systems around an empty, idle world.
func NewGame(viewport *Viewport, rng utils.RandomSource) *Game {
	if viewport == nil {
		panic("viewport cannot be nil")
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		World:           world,
		Viewport:        viewport,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		PlayerSystem:    system.NewPlayerSystem(world),
		SpawnSystem:     system.NewSpawnSystem(world, viewport, rng, eventDispatcher),
		ObstacleSystem:  system.NewObstacleSystem(world, viewport, eventDispatcher),
		ParticleSystem:  system.NewParticleSystem(world, rng),
		ScoreSystem:     system.NewScoreSystem(world, eventDispatcher),
		RenderSystem:    system.NewRenderSystem(world),
	}
	g.StateSystem = system.NewStateSystem(world, g, g.ParticleSystem, eventDispatcher)
	return g
}

// SpawnPlayer places a new player in the middle of the current viewport.
func (g *Game) SpawnPlayer() *component.Player {
	w, h := g.Viewport.Size()
	return system.NewPlayer(w/2, h/2)
}

// Start begins a fresh session from any phase.
func (g *Game) Start() {
	g.StateSystem.SwitchToRunning()
}

// Restart is Start under the name the game-over screen uses.
func (g *Game) Restart() {
	g.Start()
}

// Stop ends the session. Step does nothing until the next Start.
func (g *Game) Stop() {
	g.StateSystem.SwitchToIdle()
}

// Step advances the simulation by one frame.
//
// While running: the player eases toward its target, an obstacle may spawn,
// obstacles move and are checked against the player, then particles fade.
// A collision ends the frame right there. After game over only particles
// keep animating; when idle nothing moves.
func (g *Game) Step() {
	switch g.World.Phase {
	case component.Running:
		g.PlayerSystem.Update()
		g.SpawnSystem.Update()
		g.World.Frame++
		g.ObstacleSystem.Update()
		if g.World.Phase != component.Running {
			return
		}
		g.ParticleSystem.Update()
	case component.GameOver:
		g.ParticleSystem.Update()
	}
}

// SetTarget points the player at (x, y). Non-finite coordinates are rejected and
// the previous target kept. Before the first session there is no player and the call is inert.
func (g *Game) SetTarget(x, y float64) error {
	if !utils.IsFinite(x) || !utils.IsFinite(y) {
		log.Printf("Rejected target (%v, %v)", x, y)
		return errors.Wrapf(ErrNonFiniteTarget, "got (%v, %v)", x, y)
	}
	p := g.World.Player
	if p == nil {
		return nil
	}
	p.Target.X, p.Target.Y = x, y
	return nil
}

// NudgeTarget shifts the current target, used for arrow-key steering.
func (g *Game) NudgeTarget(dx, dy float64) error {
	p := g.World.Player
	if p == nil {
		return nil
	}
	return g.SetTarget(p.Target.X+dx, p.Target.Y+dy)
}

// Draw hands the current frame to a renderer.
func (g *Game) Draw(r render.Renderer) {
	g.RenderSystem.Draw(r)
}

func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

func (g *Game) Score() int {
	return g.World.Score
}

// HasPlayer reports whether a session has ever been started.
func (g *Game) HasPlayer() bool {
	return g.World.Player != nil
}

// Subscribe registers a collaborator for score, game-over and session events.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.EventDispatcher.Subscribe(eventType, listener)
}
