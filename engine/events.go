package engine

import "fmt"

// EventKind discriminates Event
type EventKind uint8

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
	EventReload     // Player reload timer expired
	EventLevelCheck // Periodic level completion poll
	eventKindCount
)

var eventKindNames = [eventKindCount]string{
	EventQuit:       "quit",
	EventKeyDown:    "keydown",
	EventKeyUp:      "keyup",
	EventReload:     "reload",
	EventLevelCheck: "levelcheck",
}

func (k EventKind) String() string {
	if k >= eventKindCount {
		return fmt.Sprintf("event(%d)", uint8(k))
	}
	return eventKindNames[k]
}

// Key is a logical game key, decoupled from the terminal backend
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyConfirm
	KeyMenu
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyConfirm:
		return "confirm"
	case KeyMenu:
		return "menu"
	default:
		return "none"
	}
}

// Event is one input or timer occurrence
type Event struct {
	Kind EventKind
	Key  Key // Set for KeyDown and KeyUp only
}

func (e Event) String() string {
	if e.Kind == EventKeyDown || e.Kind == EventKeyUp {
		return e.Kind.String() + ":" + e.Key.String()
	}
	return e.Kind.String()
}

// EventQueue buffers events for the next dispatch, FIFO
// Owned by the frame loop; input goroutines deliver through a channel instead
type EventQueue struct {
	events []Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push appends an event
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Consume returns pending events and empties the queue
func (q *EventQueue) Consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

func (q *EventQueue) Len() int {
	return len(q.events)
}
