package system

import (
	"log"

	"go-dodge/internal/component"
	"go-dodge/internal/entity"
	"go-dodge/internal/event"
	"go-dodge/internal/interfaces"
	"go-dodge/internal/types"
)

// StateSystem owns the session phase: Idle -> Running -> GameOver -> Running.
type StateSystem struct {
	world           *entity.World
	gameContext     interfaces.SessionContext
	particles       *ParticleSystem
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, gameContext interfaces.SessionContext, particles *ParticleSystem, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		world:           world,
		gameContext:     gameContext,
		particles:       particles,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.Collision, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.Collision {
		return
	}
	if id, ok := e.Data.(types.EntityID); ok {
		if o, found := s.world.FindObstacle(id); found {
			log.Printf("Player hit by obstacle %d from the %v edge", o.ID, o.Edge)
		}
	}
	s.SwitchToGameOver()
}

// SwitchToRunning starts a fresh session from any phase.
func (s *StateSystem) SwitchToRunning() {
	s.world.Reset(s.gameContext.SpawnPlayer())
	s.world.Phase = component.Running
	log.Printf("Session %d started", s.world.Generation)
	s.eventDispatcher.Dispatch(event.Event{Type: event.SessionStarted, Data: s.world.Generation})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: s.world.Score})
}

// SwitchToGameOver ends a running session and bursts particles where the player was.
// It does nothing outside Running, so a second hit in the same frame is ignored.
func (s *StateSystem) SwitchToGameOver() {
	if s.world.Phase != component.Running {
		return
	}
	s.world.Phase = component.GameOver
	if p := s.world.Player; p != nil {
		s.particles.Burst(p.X, p.Y, p.Color)
	}
	log.Printf("Session %d over, final score %d", s.world.Generation, s.world.Score)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: s.world.Score})
}

// SwitchToIdle stops the session. Frames are ignored until the next start.
func (s *StateSystem) SwitchToIdle() {
	if s.world.Phase == component.Idle {
		return
	}
	s.world.Phase = component.Idle
	log.Printf("Session %d stopped", s.world.Generation)
	s.eventDispatcher.Dispatch(event.Event{Type: event.SessionStopped, Data: s.world.Score})
}

func (s *StateSystem) Current() component.Phase {
	return s.world.Phase
}
