// internal/event/event.go
package event

// EventType names an event
type EventType string

// Event is something the simulation announces
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events
type Listener interface {
	OnEvent(event Event)
}

type funcListener struct {
	fn func(Event)
}

func (l *funcListener) OnEvent(e Event) { l.fn(e) }

// Func adapts a plain function to a Listener. The returned value can be passed to Unsubscribe.
func Func(fn func(Event)) Listener {
	return &funcListener{fn: fn}
}

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			break
		}
	}
}

// Dispatch sends the event to every subscriber of its type
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
