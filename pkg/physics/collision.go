// pkg/physics/collision.go
package physics

// Circle is the only collision shape entities use.
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides reports strict overlap. Circles that merely touch
// (distance == sum of radii) do not collide, and a circle with a
// non-positive radius only collides when its center lies inside the other.
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

