package engine

// HandlerFunc processes one event against the world
type HandlerFunc func(w *World, ev Event)

// Router dispatches queued events to handlers by kind
// Dispatch is synchronous on the frame loop, before the simulation step
// Several handlers may register for a kind; they run in registration order
type Router struct {
	handlers map[EventKind][]HandlerFunc
	queue    *EventQueue
}

// NewRouter creates a router draining queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventKind][]HandlerFunc),
		queue:    queue,
	}
}

// Handle registers fn for kind
func (r *Router) Handle(kind EventKind, fn HandlerFunc) {
	r.handlers[kind] = append(r.handlers[kind], fn)
}

// DispatchAll consumes every pending event in FIFO order
// Events pushed by handlers during dispatch wait for the next frame
// Stops early once the world stops running
func (r *Router) DispatchAll(w *World) int {
	events := r.queue.Consume()
	for i, ev := range events {
		if !w.Running {
			return i
		}
		for _, h := range r.handlers[ev.Kind] {
			h(w, ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for kind
func (r *Router) HandlerCount(kind EventKind) int {
	return len(r.handlers[kind])
}
