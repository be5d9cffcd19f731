package vmath

import (
	"fmt"
	"math"
)

// Coord is a 2D position or size pair in window pixels
type Coord struct {
	X, Y float64
}

// Add returns the component-wise sum
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Abs returns the component-wise absolute value
func (c Coord) Abs() Coord {
	return Coord{X: math.Abs(c.X), Y: math.Abs(c.Y)}
}

func (c Coord) String() string {
	return fmt.Sprintf("Coord(%g, %g)", c.X, c.Y)
}
