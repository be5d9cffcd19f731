package vmath

import (
	"fmt"
	"math"
)

// Velocity is a polar vector: non-negative scalar (speed) and angle in radians
// Cartesian components are derived on read; writes to a component go through the full pair
type Velocity struct {
	scalar float64
	angle  float64
}

// NewVelocity creates a velocity from speed and direction in radians
// A negative speed is stored as its magnitude pointing the opposite way
func NewVelocity(scalar, radians float64) Velocity {
	if scalar < 0 {
		scalar = -scalar
		radians += math.Pi
	}
	return Velocity{scalar: scalar, angle: radians}
}

// VelocityDegrees creates a velocity from speed and direction in degrees
func VelocityDegrees(scalar, degrees float64) Velocity {
	return NewVelocity(scalar, Radians(degrees))
}

// VelocityFromComponents creates a velocity from Cartesian components
func VelocityFromComponents(x, y float64) Velocity {
	var v Velocity
	v.fromComponents(x, y)
	return v
}

func (v Velocity) Scalar() float64  { return v.scalar }
func (v Velocity) Angle() float64   { return v.angle }
func (v Velocity) Degrees() float64 { return Degrees(v.angle) }

// X returns the horizontal component
func (v Velocity) X() float64 {
	return math.Cos(v.angle) * v.scalar
}

// Y returns the vertical component (screen space, positive is down)
func (v Velocity) Y() float64 {
	return math.Sin(v.angle) * v.scalar
}

// Components returns (x, y)
func (v Velocity) Components() (float64, float64) {
	return v.X(), v.Y()
}

// SetX replaces the x-component, recomputing scalar and angle from the new pair
func (v *Velocity) SetX(x float64) {
	v.fromComponents(x, v.Y())
}

// SetY replaces the y-component, recomputing scalar and angle from the new pair
func (v *Velocity) SetY(y float64) {
	v.fromComponents(v.X(), y)
}

// FlipX mirrors across the vertical axis
func (v *Velocity) FlipX() {
	x, y := v.Components()
	v.fromComponents(-x, y)
}

// FlipY mirrors across the horizontal axis
func (v *Velocity) FlipY() {
	x, y := v.Components()
	v.fromComponents(x, -y)
}

func (v *Velocity) fromComponents(x, y float64) {
	v.scalar = ScalarFromComponents(x, y)
	v.angle = AngleFromComponents(x, y)
}

func (v Velocity) String() string {
	return fmt.Sprintf("%.2f @ %.2f°", v.scalar, v.Degrees())
}

// ScalarFromComponents returns the magnitude of (x, y)
func ScalarFromComponents(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// AngleFromComponents resolves the direction of (x, y) in [0, 2π)
// x == 0 starts from π/2 before the quadrant correction, so (0, -y) lands on 3π/2
// and (0, 0) resolves to π/2
func AngleFromComponents(x, y float64) float64 {
	var radians float64
	if x == 0 {
		radians = math.Pi / 2
	} else {
		radians = math.Atan(y / x)
	}

	switch QuadrantFromComponents(x, y) {
	case 1, 2:
		radians += math.Pi
	case 3:
		radians += 2 * math.Pi
	}
	return radians
}

// QuadrantFromComponents returns 0..3 counter-clockwise from +x,+y
// Boundaries resolve to the lowest matching quadrant, (0, 0) is quadrant 0
func QuadrantFromComponents(x, y float64) int {
	switch {
	case x >= 0 && y >= 0:
		return 0
	case x <= 0 && y >= 0:
		return 1
	case x <= 0 && y <= 0:
		return 2
	default:
		return 3
	}
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
