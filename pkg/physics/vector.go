// pkg/physics/vector.go
package physics

import "math"

// Vector2D is a point or displacement on the playfield.
type Vector2D struct {
	X float64
	Y float64
}

func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Advance moves the point distance units along heading. A negative
// distance moves it backwards.
func (v Vector2D) Advance(heading, distance float64) Vector2D {
	return v.Add(Unit(heading).Scale(distance))
}

// Unit returns the unit vector pointing along angle (radians).
// Angle 0 points along +X and angles grow towards +Y (screen down).
func Unit(angle float64) Vector2D {
	return Vector2D{X: math.Cos(angle), Y: math.Sin(angle)}
}

// WrapAngle adds delta to angle and folds the result into (-2π, 2π)
// with a truncating modulo, so the sign of the running angle is kept.
func WrapAngle(angle, delta float64) float64 {
	return math.Mod(angle+delta, 2*math.Pi)
}
