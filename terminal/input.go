package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-invaders/engine"
)

// Translate maps a tcell key event to a game key; quit reports an exit request
func Translate(ev *tcell.EventKey) (key engine.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.KeyNone, true
	case tcell.KeyLeft:
		return engine.KeyLeft, false
	case tcell.KeyRight:
		return engine.KeyRight, false
	case tcell.KeyEnter:
		return engine.KeyConfirm, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return engine.KeyNone, true
		case 'h', 'a':
			return engine.KeyLeft, false
		case 'l', 'd':
			return engine.KeyRight, false
		case ' ':
			return engine.KeyFire, false
		case 'm', 'M':
			return engine.KeyMenu, false
		}
	}
	return engine.KeyNone, false
}

// heldKeys synthesizes key releases for steering keys, which terminals never report
// A key counts as held until release passes without a repeat
type heldKeys struct {
	release time.Duration
	seen    map[engine.Key]time.Time
}

func newHeldKeys(release time.Duration) *heldKeys {
	return &heldKeys{release: release, seen: make(map[engine.Key]time.Time)}
}

func opposite(k engine.Key) engine.Key {
	switch k {
	case engine.KeyLeft:
		return engine.KeyRight
	case engine.KeyRight:
		return engine.KeyLeft
	}
	return engine.KeyNone
}

// press returns the events a key press produces
// Repeats of a held steering key only refresh it; the opposite direction is released first
func (h *heldKeys) press(k engine.Key, now time.Time) []engine.Event {
	if k == engine.KeyNone {
		return nil
	}
	if k != engine.KeyLeft && k != engine.KeyRight {
		return []engine.Event{{Kind: engine.EventKeyDown, Key: k}}
	}

	var out []engine.Event
	if o := opposite(k); !h.seen[o].IsZero() {
		delete(h.seen, o)
		out = append(out, engine.Event{Kind: engine.EventKeyUp, Key: o})
	}
	if h.seen[k].IsZero() {
		out = append(out, engine.Event{Kind: engine.EventKeyDown, Key: k})
	}
	h.seen[k] = now
	return out
}

// expire releases keys not repeated within the release window, left before right
func (h *heldKeys) expire(now time.Time) []engine.Event {
	var out []engine.Event
	for _, k := range []engine.Key{engine.KeyLeft, engine.KeyRight} {
		t := h.seen[k]
		if !t.IsZero() && now.Sub(t) >= h.release {
			delete(h.seen, k)
			out = append(out, engine.Event{Kind: engine.EventKeyUp, Key: k})
		}
	}
	return out
}

// Input polls a tcell screen and delivers game events on a channel
type Input struct {
	screen tcell.Screen
	events chan engine.Event
	held   *heldKeys
}

func NewInput(screen tcell.Screen, release time.Duration) *Input {
	return &Input{
		screen: screen,
		events: make(chan engine.Event, 64),
		held:   newHeldKeys(release),
	}
}

// Events is closed when Run returns
func (in *Input) Events() <-chan engine.Event {
	return in.events
}

// handle converts one terminal event
func (in *Input) handle(ev tcell.Event, now time.Time) []engine.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, quit := Translate(ev)
		if quit {
			return []engine.Event{{Kind: engine.EventQuit}}
		}
		return in.held.press(key, now)
	case *tcell.EventResize:
		in.screen.Sync()
	}
	return nil
}

// Run forwards events until ctx is done or the screen is finalized
func (in *Input) Run(ctx context.Context) {
	defer close(in.events)

	raw := make(chan tcell.Event, 64)
	go func() {
		defer close(raw)
		for {
			ev := in.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case raw <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(max(in.held.release/4, time.Millisecond))
	defer ticker.Stop()

	send := func(out []engine.Event) bool {
		for _, e := range out {
			select {
			case in.events <- e:
			case <-ctx.Done():
				return false
			}
		}
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-raw:
			if !ok {
				return
			}
			if !send(in.handle(ev, time.Now())) {
				return
			}
		case now := <-ticker.C:
			if !send(in.held.expire(now)) {
				return
			}
		}
	}
}
