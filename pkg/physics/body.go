// pkg/physics/body.go
package physics

import (
	"errors"
	"math"
)

// G is the gravitational constant, scaled for gameplay balance rather
// than physical accuracy.
const G = 6.67430e-2

// ErrZeroOrbitDistance is returned by OrbitalVelocity when the two bodies
// occupy the same position. There is no circular orbit at zero distance.
var ErrZeroOrbitDistance = errors.New("physics: orbital velocity undefined at zero distance")

// Body is a point mass participating in the gravity simulation. Every
// entity in the game (planet, station, enemy, projectile) is backed by
// one Body, owned by whichever simulator collection holds it.
type Body struct {
	Position     Vector2D
	Velocity     Vector2D
	Acceleration Vector2D
	Mass         float64
	Radius       float64
}

// NewBody creates a body at rest at the given position
func NewBody(position Vector2D, mass, radius float64) *Body {
	return &Body{
		Position: position,
		Mass:     mass,
		Radius:   radius,
	}
}

// GravitationalForce returns the force this body exerts on the other
// body, pointing from this body toward the other. When the bodies
// overlap (distance below the sum of radii) the force is zero; this
// avoids the d→0 singularity and the explosive forces near it.
func (b *Body) GravitationalForce(other *Body) Vector2D {
	r := other.Position.Sub(b.Position)
	distance := r.Length()

	if distance < b.Radius+other.Radius {
		return Vector2D{}
	}

	magnitude := G * b.Mass * other.Mass / (distance * distance)
	return r.Normalize().Scale(magnitude)
}

// OrbitalVelocity returns the velocity for a circular orbit around
// center at the current distance (vis-viva solution). The direction is
// perpendicular to the radius vector; clockwise flips it. Fails with
// ErrZeroOrbitDistance when the body sits exactly on the center.
func (b *Body) OrbitalVelocity(center *Body, clockwise bool) (Vector2D, error) {
	r := b.Position.Sub(center.Position)
	distance := r.Length()
	if distance == 0 {
		return Vector2D{}, ErrZeroOrbitDistance
	}

	speed := math.Sqrt(G * center.Mass / distance)

	if clockwise {
		return Vector2D{
			X: -r.Y * speed / distance,
			Y: r.X * speed / distance,
		}, nil
	}
	return Vector2D{
		X: r.Y * speed / distance,
		Y: -r.X * speed / distance,
	}, nil
}

// ApplyForce overwrites the body's acceleration with force/mass. The
// acceleration is consumed by the next UpdatePosition call; forces do
// not accumulate across calls.
func (b *Body) ApplyForce(force Vector2D) {
	b.Acceleration = force.Scale(1 / b.Mass)
}

// UpdatePosition advances the body one time step. Position integrates
// velocity plus half the acceleration term, then velocity integrates
// acceleration. This is a velocity-Verlet variant using the current
// rather than averaged acceleration; trajectories depend on it staying
// exactly this way.
func (b *Body) UpdatePosition(dt float64) {
	b.Position = b.Position.
		Add(b.Velocity.Scale(dt)).
		Add(b.Acceleration.Scale(0.5 * dt * dt))
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
}
