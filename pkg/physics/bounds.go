// pkg/physics/bounds.go
package physics

// Bounds is the playfield rectangle spanning [0,Width] x [0,Height].
type Bounds struct {
	Width  float64
	Height float64
}

// Wrap applies toroidal wrapping independently per axis. A coordinate below
// zero re-enters at the far edge and one past the far edge re-enters at zero;
// positions are never clamped.
func (b Bounds) Wrap(p Vector2D) Vector2D {
	return Vector2D{
		X: wrapCoord(p.X, b.Width),
		Y: wrapCoord(p.Y, b.Height),
	}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (b Bounds) Contains(p Vector2D) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Center returns the middle of the rectangle.
func (b Bounds) Center() Vector2D {
	return Vector2D{X: b.Width / 2, Y: b.Height / 2}
}

func wrapCoord(coord, max float64) float64 {
	switch {
	case coord < 0:
		return max
	case coord > max:
		return 0
	default:
		return coord
	}
}
