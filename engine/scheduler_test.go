package engine

import (
	"testing"
	"time"
)

func TestSchedulerOnce(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	s := NewScheduler(mock)
	q := NewEventQueue()

	s.Once(EventReload, 800*time.Millisecond)
	mock.Advance(799 * time.Millisecond)
	if s.Fire(q) != 0 {
		t.Fatal("fired before due")
	}
	mock.Advance(time.Millisecond)
	if s.Fire(q) != 1 {
		t.Fatal("did not fire when due")
	}
	if evs := q.Consume(); len(evs) != 1 || evs[0].Kind != EventReload {
		t.Errorf("events = %v", evs)
	}
	if s.Armed(EventReload) {
		t.Error("one-shot should disarm after firing")
	}
	mock.Advance(time.Second)
	if s.Fire(q) != 0 {
		t.Error("one-shot fired twice")
	}
}

func TestSchedulerEvery(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	s := NewScheduler(mock)
	q := NewEventQueue()

	s.Every(EventLevelCheck, 950*time.Millisecond)
	fired := 0
	for i := 0; i < 100; i++ { // 100 frames of 20ms = 2s
		mock.Advance(20 * time.Millisecond)
		fired += s.Fire(q)
	}
	if fired != 2 {
		t.Errorf("fired %d times in 2s, want 2", fired)
	}

	// Falling far behind fires once, not a burst
	mock.Advance(10 * time.Second)
	if n := s.Fire(q); n != 1 {
		t.Errorf("catch-up fired %d, want 1", n)
	}
	if s.Fire(q) != 0 {
		t.Error("fired again without time passing")
	}

	if !s.Cancel(EventLevelCheck) {
		t.Error("Cancel should report armed timer")
	}
	if s.Cancel(EventLevelCheck) {
		t.Error("second Cancel should report nothing armed")
	}
	mock.Advance(5 * time.Second)
	if s.Fire(q) != 0 {
		t.Error("cancelled timer fired")
	}
}

func TestSchedulerRearmReplaces(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	s := NewScheduler(mock)
	q := NewEventQueue()

	s.Once(EventReload, 100*time.Millisecond)
	mock.Advance(90 * time.Millisecond)
	s.Once(EventReload, 100*time.Millisecond)
	mock.Advance(20 * time.Millisecond)
	if s.Fire(q) != 0 {
		t.Error("rearm should push the deadline out")
	}
	mock.Advance(80 * time.Millisecond)
	if s.Fire(q) != 1 {
		t.Error("rearmed timer did not fire")
	}
}

func TestSchedulerOrderAndReset(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	s := NewScheduler(mock)
	q := NewEventQueue()

	s.Every(EventLevelCheck, 10*time.Millisecond)
	s.Once(EventReload, 10*time.Millisecond)
	mock.Advance(10 * time.Millisecond)
	s.Fire(q)
	evs := q.Consume()
	if len(evs) != 2 || evs[0].Kind != EventReload || evs[1].Kind != EventLevelCheck {
		t.Errorf("events = %v, want reload then levelcheck", evs)
	}

	s.Reset()
	if s.Armed(EventLevelCheck) {
		t.Error("Reset left a timer armed")
	}
}
