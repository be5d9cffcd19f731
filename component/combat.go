package component

import (
	"time"

	"github.com/lixenwraith/space-invaders/core"
)

// PlayerComponent holds the ship's weapon state
type PlayerComponent struct {
	Loaded      bool
	ReloadDelay time.Duration // One-shot timer armed after each shot
	ShotSound   string
	Left, Right bool // Movement keys currently held
}

// Direction returns -1, 0 or 1 from the held movement keys
func (p *PlayerComponent) Direction() float64 {
	d := 0.0
	if p.Left {
		d--
	}
	if p.Right {
		d++
	}
	return d
}

// EnemyComponent holds per-class scoring and firing parameters
type EnemyComponent struct {
	Class       string
	Points      int
	BulletSpeed float64 // Downward, pixels per frame
	FireChance  float64 // Probability of firing on any simulated frame
	BulletImage string
}

// BulletComponent marks a projectile and who fired it
type BulletComponent struct {
	Source     core.Entity
	SourceKind Kind
}
