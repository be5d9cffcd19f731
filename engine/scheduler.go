package engine

import (
	"time"
)

type timer struct {
	due    time.Time
	period time.Duration // Zero for one-shot
}

// Scheduler raises timer events on the frame loop
// One timer per event kind: arming a kind again replaces its timer
type Scheduler struct {
	time   TimeSource
	timers map[EventKind]*timer
}

func NewScheduler(ts TimeSource) *Scheduler {
	return &Scheduler{
		time:   ts,
		timers: make(map[EventKind]*timer),
	}
}

// Once raises kind a single time after d
func (s *Scheduler) Once(kind EventKind, d time.Duration) {
	s.timers[kind] = &timer{due: s.time.Now().Add(d)}
}

// Every raises kind every d until cancelled
func (s *Scheduler) Every(kind EventKind, d time.Duration) {
	if d <= 0 {
		panic("scheduler: non-positive period")
	}
	s.timers[kind] = &timer{due: s.time.Now().Add(d), period: d}
}

// Cancel stops kind's timer, reporting whether one was armed
func (s *Scheduler) Cancel(kind EventKind) bool {
	if _, ok := s.timers[kind]; !ok {
		return false
	}
	delete(s.timers, kind)
	return true
}

// Armed reports whether kind has a pending timer
func (s *Scheduler) Armed(kind EventKind) bool {
	_, ok := s.timers[kind]
	return ok
}

// Fire pushes every due timer into q, in event kind order
// A periodic timer fires at most once per call; when the loop falls behind,
// its next deadline restarts from now
func (s *Scheduler) Fire(q *EventQueue) int {
	if len(s.timers) == 0 {
		return 0
	}
	now := s.time.Now()
	fired := 0
	for kind := EventKind(0); kind < eventKindCount; kind++ {
		t, ok := s.timers[kind]
		if !ok || now.Before(t.due) {
			continue
		}
		q.Push(Event{Kind: kind})
		fired++
		if t.period == 0 {
			delete(s.timers, kind)
			continue
		}
		t.due = t.due.Add(t.period)
		if !t.due.After(now) {
			t.due = now.Add(t.period)
		}
	}
	return fired
}

// Reset drops every timer
func (s *Scheduler) Reset() {
	clear(s.timers)
}
