// pkg/physics/vector.go
package physics

import (
	"errors"
	"math"
)

// ErrZeroDivisor is returned when a vector is divided by exactly zero.
// This is an invariant violation at the call site, not a recoverable
// condition.
var ErrZeroDivisor = errors.New("physics: vector division by zero")

// Vector2D represents a 2D vector with x and y components.
// All operations return a new vector and never mutate their operands.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Div divides the vector by a scalar value. Division by exactly zero
// fails with ErrZeroDivisor.
func (v Vector2D) Div(divisor float64) (Vector2D, error) {
	if divisor == 0 {
		return Vector2D{}, ErrZeroDivisor
	}
	return Vector2D{
		X: v.X / divisor,
		Y: v.Y / divisor,
	}, nil
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}
}

// Distance returns the Euclidean distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z-magnitude of the cross product of two vectors
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Rotate rotates the vector by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Project returns the projection of this vector onto another vector.
// Projecting onto the zero vector yields the zero vector.
func (v Vector2D) Project(other Vector2D) Vector2D {
	magSquared := other.LengthSquared()
	if magSquared == 0 {
		return Vector2D{}
	}
	return other.Scale(v.Dot(other) / magSquared)
}

// FromPolar creates a vector from a magnitude and an angle in radians
func FromPolar(magnitude, angle float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}
