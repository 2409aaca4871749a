// internal/event/event.go
package event

// EventType is the kind of an event.
type EventType string

// Event is what the dispatcher delivers.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds a listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
// listener must be comparable, such as a pointer; ListenerFunc values are not.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Handle subscribes fn to eventType. fn only sees events whose Data is a T;
// other payloads are skipped. The returned listener can be passed to
// Unsubscribe.
func Handle[T any](d *Dispatcher, eventType EventType, fn func(T)) Listener {
	l := &payloadListener[T]{fn: fn}
	d.Subscribe(eventType, l)
	return l
}

type payloadListener[T any] struct {
	fn func(T)
}

func (l *payloadListener[T]) OnEvent(event Event) {
	if p, ok := event.Data.(T); ok {
		l.fn(p)
	}
}

// Subscribers returns how many listeners are registered for eventType.
func (d *Dispatcher) Subscribers(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch sends event to every subscriber of its type.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
