package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/component"
	"github.com/lixenwraith/space-invaders/config"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/status"
	"github.com/lixenwraith/space-invaders/vmath"
)

// World is the scene registry and game state, passed explicitly to every system call
// Component stores double as the ordered registries: Sprites is the draw list,
// Motions the simulation list, Enemies and Bullets the combat collections
type World struct {
	Bodies  *Store[*component.BodyComponent]
	Kinds   *Store[component.Kind]
	Sprites *Store[*component.SpriteComponent]
	Motions *Store[*component.MotionComponent]
	Players *Store[*component.PlayerComponent]
	Enemies *Store[*component.EnemyComponent]
	Bullets *Store[*component.BulletComponent]

	Screen         core.Screen
	Score          int
	LastBounceSide core.Side // Edge the enemy wave last bounced off
	Done           bool      // Final level cleared, bonus credited
	Running        bool
	RunID          uuid.UUID // New for every Level1 start
	Player         core.Entity
	ScoreLabel     core.Entity
	LevelTotal     int // Enemies spawned by the current level setup

	Config   *config.Config
	Levels   *config.LevelTable
	Events   *EventQueue
	Timers   *Scheduler
	Rand     *vmath.FastRand
	Renderer Renderer
	Audio    Audio
	Balance  Balance
	Log      *zap.Logger
	Status   *status.Registry

	nextEntity core.Entity
	alive      map[core.Entity]struct{}
}

// Deps carries the collaborators a World is built from; nil fields get no-op defaults
type Deps struct {
	Config   *config.Config
	Levels   *config.LevelTable
	Time     TimeSource
	Rand     *vmath.FastRand
	Renderer Renderer
	Audio    Audio
	Balance  Balance
	Log      *zap.Logger
	Status   *status.Registry
}

// NewWorld creates an empty running world on the welcome screen
func NewWorld(d Deps) *World {
	if d.Config == nil {
		d.Config = config.Defaults()
	}
	if d.Levels == nil {
		levels, err := config.LoadLevels("")
		if err != nil {
			panic("engine: embedded level table: " + err.Error())
		}
		d.Levels = levels
	}
	if d.Time == nil {
		d.Time = NewTimeProvider()
	}
	if d.Rand == nil {
		d.Rand = vmath.NewFastRand(1)
	}
	if d.Renderer == nil {
		d.Renderer = NopRenderer{}
	}
	if d.Audio == nil {
		d.Audio = NopAudio{}
	}
	if d.Balance == nil {
		d.Balance = DefaultBalance{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Status == nil {
		d.Status = status.NewRegistry()
	}

	return &World{
		Bodies:  NewStore[*component.BodyComponent](),
		Kinds:   NewStore[component.Kind](),
		Sprites: NewStore[*component.SpriteComponent](),
		Motions: NewStore[*component.MotionComponent](),
		Players: NewStore[*component.PlayerComponent](),
		Enemies: NewStore[*component.EnemyComponent](),
		Bullets: NewStore[*component.BulletComponent](),

		Screen:  core.ScreenWelcome,
		Running: true,

		Config:   d.Config,
		Levels:   d.Levels,
		Events:   NewEventQueue(),
		Timers:   NewScheduler(d.Time),
		Rand:     d.Rand,
		Renderer: d.Renderer,
		Audio:    d.Audio,
		Balance:  d.Balance,
		Log:      d.Log,
		Status:   d.Status,

		alive: make(map[core.Entity]struct{}),
	}
}

// Alive reports whether e was built and not yet destroyed
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// Destroy removes e from every store; returns false if e was already gone
func (w *World) Destroy(e core.Entity) bool {
	if _, ok := w.alive[e]; !ok {
		return false
	}
	delete(w.alive, e)
	w.Bodies.Remove(e)
	w.Kinds.Remove(e)
	w.Sprites.Remove(e)
	w.Motions.Remove(e)
	w.Players.Remove(e)
	w.Enemies.Remove(e)
	w.Bullets.Remove(e)
	return true
}

// DestroyBatch removes every live entity in entities with one compaction per store
// and returns how many were live
func (w *World) DestroyBatch(entities []core.Entity) int {
	live := make([]core.Entity, 0, len(entities))
	for _, e := range entities {
		if _, ok := w.alive[e]; ok {
			delete(w.alive, e)
			live = append(live, e)
		}
	}
	if len(live) == 0 {
		return 0
	}
	w.Bodies.RemoveBatch(live)
	w.Kinds.RemoveBatch(live)
	w.Sprites.RemoveBatch(live)
	w.Motions.RemoveBatch(live)
	w.Players.RemoveBatch(live)
	w.Enemies.RemoveBatch(live)
	w.Bullets.RemoveBatch(live)
	return len(live)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// Kind returns e's kind tag
func (w *World) Kind(e core.Entity) (component.Kind, bool) {
	return w.Kinds.Get(e)
}

// Body returns e's body, nil when absent
func (w *World) Body(e core.Entity) *component.BodyComponent {
	b, _ := w.Bodies.Get(e)
	return b
}

// SetPosition moves e's body to (x, y)
func (w *World) SetPosition(e core.Entity, x, y float64) {
	if b := w.Body(e); b != nil {
		b.X, b.Y = x, y
	}
}

// SetSize resizes e's body and rescales its image
func (w *World) SetSize(e core.Entity, width, height float64) {
	b := w.Body(e)
	if b == nil {
		return
	}
	b.W, b.H = width, height
	if s, ok := w.Sprites.Get(e); ok && s.Image != "" {
		w.Renderer.Scale(s.Image, width, height)
	}
}

// SetImage swaps e's image and rescales it to the current body size
func (w *World) SetImage(e core.Entity, image string) {
	s, ok := w.Sprites.Get(e)
	if !ok {
		return
	}
	s.Image = image
	if b := w.Body(e); b != nil && image != "" {
		size := b.Size()
		w.Renderer.Scale(image, size.X, size.Y)
	}
}
