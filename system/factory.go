package system

import (
	"fmt"

	"github.com/lixenwraith/space-invaders/component"
	"github.com/lixenwraith/space-invaders/config"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
	"github.com/lixenwraith/space-invaders/vmath"
)

// SpawnScenery creates the per-screen backgrounds, menu banners, score label and player
// Called once; level setup later only adjusts these entities
func SpawnScenery(w *engine.World) {
	cfg := w.Config
	for s := core.Screen(0); s < core.ScreenCount; s++ {
		sc := cfg.Screen(s)
		if sc.Background != "" {
			spawnBackground(w, sc.Background, s)
		}
		if sc.Banner != "" {
			spawnText(w, sc.Banner, cfg.Window.Height/3, core.RGBWhite, s)
		}
		if sc.Hint != "" {
			spawnText(w, sc.Hint, cfg.Window.Height/2, cfg.Window.ScoreColor, s)
		}
	}

	w.ScoreLabel = engine.With(engine.With(engine.With(w.NewEntity(),
		w.Bodies, &component.BodyComponent{X: 10, Y: 10, Visible: true}),
		w.Kinds, component.KindLabel),
		w.Sprites, &component.SpriteComponent{Text: "0", Color: cfg.Window.ScoreColor},
	).Build()

	w.Player = spawnPlayer(w)
}

func spawnBackground(w *engine.World, image string, s core.Screen) core.Entity {
	cfg := w.Config.Window
	e := engine.With(engine.With(engine.With(w.NewEntity(),
		w.Bodies, &component.BodyComponent{W: cfg.Width, H: cfg.Height, Visible: true, Screens: core.Only(s)}),
		w.Kinds, component.KindScenery),
		w.Sprites, &component.SpriteComponent{Image: image},
	).Build()
	w.Renderer.Scale(image, cfg.Width, cfg.Height)
	return e
}

// spawnText places a line of text centered across the window at y
func spawnText(w *engine.World, text string, y float64, color core.RGB, s core.Screen) core.Entity {
	return engine.With(engine.With(engine.With(w.NewEntity(),
		w.Bodies, &component.BodyComponent{Y: y, W: w.Config.Window.Width, Visible: true, Screens: core.Only(s)}),
		w.Kinds, component.KindScenery),
		w.Sprites, &component.SpriteComponent{Text: text, Color: color},
	).Build()
}

func spawnPlayer(w *engine.World) core.Entity {
	pc := w.Config.Player
	return engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Bodies, &component.BodyComponent{
			X: pc.StartX, Y: pc.StartY,
			W: pc.Width, H: pc.Height,
			Visible: true,
			Screens: core.Only(core.ScreenLevel1, core.ScreenLevel2, core.ScreenLevel3),
		}),
		w.Kinds, component.KindPlayer),
		w.Sprites, &component.SpriteComponent{}),
		w.Motions, &component.MotionComponent{
			Velocity:    vmath.NewVelocity(0, 0),
			Simulating:  true,
			BounceEdges: true,
			Collide:     true,
			Name:        "player",
		}),
		w.Players, &component.PlayerComponent{Loaded: true},
	).Build()
}

// spawnEnemy places one enemy of class on the current screen
func spawnEnemy(w *engine.World, className string, class config.EnemyClass, points int, x, y float64, name string) core.Entity {
	e := engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Bodies, &component.BodyComponent{
			X: x, Y: y,
			W: class.Width, H: class.Height,
			Visible: true,
			Screens: core.Only(w.Screen),
		}),
		w.Kinds, component.KindEnemy),
		w.Sprites, &component.SpriteComponent{Image: class.Image}),
		w.Motions, &component.MotionComponent{
			Velocity:    vmath.VelocityFromComponents(class.SpeedX, class.SpeedY),
			Simulating:  true,
			BounceEdges: true,
			Collide:     true,
			Name:        name,
		}),
		w.Enemies, &component.EnemyComponent{
			Class:       className,
			Points:      points,
			BulletSpeed: class.BulletSpeed,
			FireChance:  class.FireChance,
			BulletImage: class.BulletImage,
		},
	).Build()
	if class.Image != "" {
		w.Renderer.Scale(class.Image, class.Width, class.Height)
	}
	return e
}

// spawnFormations lays out every formation of lvl on the enemy grid
func spawnFormations(w *engine.World, lvl *config.Level) (int, error) {
	ec := w.Config.Enemy
	spawned := 0
	for _, f := range lvl.Formations {
		class, err := w.Config.Class(f.Class)
		if err != nil {
			return spawned, fmt.Errorf("level %s: %w", lvl.Screen, err)
		}
		for row := 0; row < f.Rows; row++ {
			for col := 0; col < f.Cols; col++ {
				x := float64(col)*ec.GridX + ec.OriginX
				y := float64(row)*ec.GridY + f.YOffset
				spawnEnemy(w, f.Class, class, f.Points, x, y, fmt.Sprintf("(%d, %d)", col, row))
				spawned++
			}
		}
	}
	return spawned, nil
}

// spawnBullet fires from the shooter's top-left corner, vertical only
// Bullets live on the screen they were fired on
func spawnBullet(w *engine.World, source core.Entity, sourceKind component.Kind, image string, speed, width, height float64) core.Entity {
	origin := w.Body(source).Position()
	e := engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Bodies, &component.BodyComponent{
			X: origin.X, Y: origin.Y,
			W: width, H: height,
			Visible: true,
			Screens: core.Only(w.Screen),
		}),
		w.Kinds, component.KindBullet),
		w.Sprites, &component.SpriteComponent{Image: image}),
		w.Motions, &component.MotionComponent{
			Velocity:   vmath.VelocityFromComponents(0, speed),
			Simulating: true,
			Name:       "bullet",
		}),
		w.Bullets, &component.BulletComponent{Source: source, SourceKind: sourceKind},
	).Build()
	if image != "" {
		w.Renderer.Scale(image, width, height)
	}
	return e
}
