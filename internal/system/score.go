package system

import (
	"go-dodge/internal/config"
	"go-dodge/internal/entity"
	"go-dodge/internal/event"
)

// ScoreSystem awards points for every obstacle that leaves the dead zone unhit.
type ScoreSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewScoreSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{world: world, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.ObstacleRetired, s)
	return s
}

// OnEvent handles the events the system is subscribed to.
func (s *ScoreSystem) OnEvent(e event.Event) {
	if e.Type != event.ObstacleRetired {
		return
	}
	s.world.Score += config.ScorePerDodge
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: s.world.Score})
}
