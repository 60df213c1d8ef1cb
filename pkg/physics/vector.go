// pkg/physics/vector.go
package physics

import "math"

// Vector2D is a position or velocity in world units. Y grows downwards,
// matching screen space.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the euclidean magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between two points
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// ManhattanLength returns |X|+|Y|. Thrust directions are unit length in
// this norm rather than the euclidean one.
func (v Vector2D) ManhattanLength() float64 {
	return math.Abs(v.X) + math.Abs(v.Y)
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vector2D) ApproxEqual(other Vector2D, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps
}
