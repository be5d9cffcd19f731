package component

import "github.com/lixenwraith/space-invaders/vmath"

// MotionComponent marks an entity as simulatable
type MotionComponent struct {
	Velocity    vmath.Velocity
	Simulating  bool // Movement and collisions run at all
	BounceEdges bool // Reflect (or clamp, for the player) at the left/right window edges
	Collide     bool // Initiate overlap tests against other simulatables
	Name        string
	Sound       string
}
