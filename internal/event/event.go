// Package event provides a minimal synchronous event emitter. Components hold
// an Emitter instead of inheriting dispatch behavior; handlers run on the
// caller's stack in registration order.
package event

// Handler receives the event payload.
type Handler func(payload any)

// Emitter dispatches named events to registered handlers. The zero value is
// ready to use. It is not safe for concurrent use; the engine is
// single-threaded by design.
type Emitter struct {
	handlers map[string][]Handler
}

// On registers a handler for the named event.
func (e *Emitter) On(name string, h Handler) {
	if h == nil {
		return
	}
	if e.handlers == nil {
		e.handlers = make(map[string][]Handler)
	}
	e.handlers[name] = append(e.handlers[name], h)
}

// Emit calls every handler registered for name, synchronously, in
// registration order.
func (e *Emitter) Emit(name string, payload any) {
	for _, h := range e.handlers[name] {
		h(payload)
	}
}
