package engine

import "testing"

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(Event{Kind: EventKeyDown, Key: KeyLeft})
	q.Push(Event{Kind: EventReload})
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
	got := q.Consume()
	if len(got) != 2 || got[0].Key != KeyLeft || got[1].Kind != EventReload {
		t.Errorf("Consume = %v", got)
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("queue should be empty after Consume")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: EventKeyDown, Key: KeyFire}, "keydown:fire"},
		{Event{Kind: EventKeyUp, Key: KeyRight}, "keyup:right"},
		{Event{Kind: EventLevelCheck}, "levelcheck"},
		{Event{Kind: EventKind(200)}, "event(200)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestRouterDispatchOrder(t *testing.T) {
	w := NewWorld(Deps{})
	r := NewRouter(w.Events)

	var trace []string
	r.Handle(EventKeyDown, func(_ *World, ev Event) { trace = append(trace, "a:"+ev.Key.String()) })
	r.Handle(EventKeyDown, func(_ *World, ev Event) { trace = append(trace, "b:"+ev.Key.String()) })
	r.Handle(EventReload, func(_ *World, _ Event) { trace = append(trace, "reload") })

	w.Events.Push(Event{Kind: EventKeyDown, Key: KeyLeft})
	w.Events.Push(Event{Kind: EventReload})
	w.Events.Push(Event{Kind: EventLevelCheck}) // unhandled

	if n := r.DispatchAll(w); n != 3 {
		t.Errorf("dispatched %d, want 3", n)
	}
	want := []string{"a:left", "b:left", "reload"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
	if r.HandlerCount(EventKeyDown) != 2 || r.HandlerCount(EventQuit) != 0 {
		t.Error("HandlerCount mismatch")
	}
}

func TestRouterStopsAfterQuit(t *testing.T) {
	w := NewWorld(Deps{})
	r := NewRouter(w.Events)
	fired := 0
	r.Handle(EventQuit, func(w *World, _ Event) { w.Running = false })
	r.Handle(EventReload, func(*World, Event) { fired++ })

	w.Events.Push(Event{Kind: EventQuit})
	w.Events.Push(Event{Kind: EventReload})
	r.DispatchAll(w)
	if fired != 0 {
		t.Error("events after quit should not dispatch")
	}
}
