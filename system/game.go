package system

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/engine"
	"github.com/lixenwraith/space-invaders/status"
)

// Game owns the frame loop
type Game struct {
	World  *engine.World
	Router *engine.Router
	Clock  *engine.Clock

	input   <-chan engine.Event
	metrics frameMetrics
	started bool
}

// frameMetrics caches registry pointers written once per frame
type frameMetrics struct {
	fps      *status.AtomicFloat
	frameMS  *status.AtomicFloat
	frames   *atomic.Int64
	entities *atomic.Int64
	enemies  *atomic.Int64
	bullets  *atomic.Int64
	score    *atomic.Int64
	screen   *status.AtomicString
	runID    *status.AtomicString
	done     *atomic.Bool
}

// NewGame wires the dispatch table and metrics; input may be nil for headless runs
func NewGame(w *engine.World, clock *engine.Clock, input <-chan engine.Event) *Game {
	router := engine.NewRouter(w.Events)
	RegisterHandlers(router)

	reg := w.Status
	return &Game{
		World:  w,
		Router: router,
		Clock:  clock,
		input:  input,
		metrics: frameMetrics{
			fps:      reg.Floats.Get(status.KeyFPS),
			frameMS:  reg.Floats.Get(status.KeyFrameTime),
			frames:   reg.Ints.Get(status.KeyFrames),
			entities: reg.Ints.Get(status.KeyEntities),
			enemies:  reg.Ints.Get(status.KeyEnemies),
			bullets:  reg.Ints.Get(status.KeyBullets),
			score:    reg.Ints.Get(status.KeyScore),
			screen:   reg.Strings.Get(status.KeyScreen),
			runID:    reg.Strings.Get(status.KeyRunID),
			done:     reg.Bools.Get(status.KeyDone),
		},
	}
}

// Start builds the scenery and shows the welcome screen; later calls are no-ops
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	SpawnScenery(g.World)
	mustChangeScreen(g.World, g.World.Screen)
}

// Run loops until quit or ctx is cancelled, returning ctx's error in the latter case
func (g *Game) Run(ctx context.Context) error {
	g.Start()
	w := g.World
	fps := w.Config.Window.FPSLimit
	for w.Running {
		select {
		case <-ctx.Done():
			w.Log.Info("frame loop cancelled", zap.Error(ctx.Err()))
			return ctx.Err()
		default:
		}
		g.Step()
		g.Clock.Tick(fps)
		g.report(fps)
	}
	return nil
}

// Step advances one frame without pacing
func (g *Game) Step() {
	w := g.World
	g.drainInput()
	w.Timers.Fire(w.Events)
	g.Router.DispatchAll(w)
	if !w.Running {
		return
	}
	Simulate(w)
	Draw(w)
	g.updateMetrics()
}

// drainInput moves every pending input event into the queue without blocking
// A closed input channel means the terminal is gone and ends the run
func (g *Game) drainInput() {
	if g.input == nil {
		return
	}
	for {
		select {
		case ev, ok := <-g.input:
			if !ok {
				g.input = nil
				g.World.Events.Push(engine.Event{Kind: engine.EventQuit})
				return
			}
			g.World.Events.Push(ev)
		default:
			return
		}
	}
}

func (g *Game) updateMetrics() {
	w := g.World
	m := &g.metrics
	m.entities.Store(int64(w.EntityCount()))
	m.enemies.Store(int64(w.Enemies.Count()))
	m.bullets.Store(int64(w.Bullets.Count()))
	m.score.Store(int64(w.Score))
	m.screen.Store(w.Screen.String())
	m.runID.Store(w.RunID.String())
	m.done.Store(w.Done)
}

// report publishes frame timing and logs it about once a second
func (g *Game) report(fps int) {
	m := &g.metrics
	frames := g.Clock.Frames()
	m.frames.Store(int64(frames))
	m.fps.Set(g.Clock.FPS())
	m.frameMS.Set(float64(g.Clock.AvgFrameTime().Microseconds()) / 1000)

	if fps > 0 && frames%uint64(fps) == 0 {
		g.World.Log.Debug("frame stats",
			zap.Float64("fps", g.Clock.FPS()),
			zap.Duration("avg_frame", g.Clock.AvgFrameTime()),
			zap.Int("entities", g.World.EntityCount()),
		)
	}
}
