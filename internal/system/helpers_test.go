package system

import "go-dodge/internal/event"

// scriptedRand replays fixed values; Intn takes them from ints, Float64 from floats.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type fixedViewport struct {
	w, h float64
}

func (v *fixedViewport) Size() (float64, float64) { return v.w, v.h }

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listenAll(d *event.Dispatcher) *eventLog {
	l := &eventLog{}
	for _, t := range []event.EventType{
		event.SessionStarted, event.SessionStopped, event.ObstacleSpawned, event.ObstacleRetired,
		event.ScoreChanged, event.Collision, event.GameOver,
	} {
		d.Subscribe(t, l)
	}
	return l
}
