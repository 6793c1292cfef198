// pkg/physics/body_test.go
package physics

import (
	"errors"
	"math"
	"testing"
)

func TestBody_GravitationalForceInverseSquare(t *testing.T) {
	center := NewBody(Vector2D{}, 1000, 0)

	near := NewBody(Vector2D{X: 10}, 1, 0)
	far := NewBody(Vector2D{X: 20}, 1, 0)

	forceNear := center.GravitationalForce(near).Length()
	forceFar := center.GravitationalForce(far).Length()

	ratio := forceNear / forceFar
	if math.Abs(ratio-4.0) > 1e-9 {
		t.Errorf("force(d)/force(2d) = %v, expected 4.0", ratio)
	}
}

func TestBody_GravitationalForceDirection(t *testing.T) {
	tests := []struct {
		name     string
		otherPos Vector2D
	}{
		{name: "other_east", otherPos: Vector2D{X: 50}},
		{name: "other_north", otherPos: Vector2D{Y: 50}},
		{name: "other_diagonal", otherPos: Vector2D{X: -30, Y: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exerting := NewBody(Vector2D{}, 100, 0)
			other := NewBody(tt.otherPos, 1, 0)

			force := exerting.GravitationalForce(other)
			toOther := tt.otherPos.Normalize()

			// The force on other points from the exerting body toward other
			if !vectorsAlmostEqual(force.Normalize(), toOther) {
				t.Errorf("force direction = %v, expected %v", force.Normalize(), toOther)
			}
		})
	}
}

func TestBody_GravitationalForceOverlapIsZero(t *testing.T) {
	a := NewBody(Vector2D{}, 1000, 5)
	b := NewBody(Vector2D{X: 8}, 1000, 5)

	if force := a.GravitationalForce(b); force != (Vector2D{}) {
		t.Errorf("overlapping bodies produced force %v, expected zero", force)
	}
}

func TestBody_OrbitalVelocityPerpendicular(t *testing.T) {
	center := NewBody(Vector2D{}, 1e6, 10)
	orbiter := NewBody(Vector2D{X: 30, Y: 40}, 1, 1)

	for _, clockwise := range []bool{true, false} {
		velocity, err := orbiter.OrbitalVelocity(center, clockwise)
		if err != nil {
			t.Fatalf("OrbitalVelocity() unexpected error: %v", err)
		}

		radius := orbiter.Position.Sub(center.Position)
		if dot := velocity.Dot(radius); math.Abs(dot) > 1e-6 {
			t.Errorf("clockwise=%v: velocity not perpendicular to radius, dot = %v", clockwise, dot)
		}
	}
}

func TestBody_OrbitalVelocitySpeed(t *testing.T) {
	center := NewBody(Vector2D{}, 1e6, 10)
	orbiter := NewBody(Vector2D{X: 100}, 1, 1)

	velocity, err := orbiter.OrbitalVelocity(center, true)
	if err != nil {
		t.Fatalf("OrbitalVelocity() unexpected error: %v", err)
	}

	expected := math.Sqrt(G * center.Mass / 100)
	if !almostEqual(velocity.Length(), expected) {
		t.Errorf("orbital speed = %v, expected %v", velocity.Length(), expected)
	}
}

func TestBody_OrbitalVelocityOppositeDirections(t *testing.T) {
	center := NewBody(Vector2D{}, 1e6, 10)
	orbiter := NewBody(Vector2D{X: 50}, 1, 1)

	cw, err := orbiter.OrbitalVelocity(center, true)
	if err != nil {
		t.Fatalf("OrbitalVelocity(clockwise) unexpected error: %v", err)
	}
	ccw, err := orbiter.OrbitalVelocity(center, false)
	if err != nil {
		t.Fatalf("OrbitalVelocity(counter) unexpected error: %v", err)
	}

	if !vectorsAlmostEqual(cw, ccw.Scale(-1)) {
		t.Errorf("clockwise %v and counter-clockwise %v are not opposite", cw, ccw)
	}
}

func TestBody_OrbitalVelocityZeroDistance(t *testing.T) {
	center := NewBody(Vector2D{X: 5, Y: 5}, 1e6, 10)
	orbiter := NewBody(Vector2D{X: 5, Y: 5}, 1, 1)

	if _, err := orbiter.OrbitalVelocity(center, true); !errors.Is(err, ErrZeroOrbitDistance) {
		t.Errorf("OrbitalVelocity() at zero distance error = %v, expected ErrZeroOrbitDistance", err)
	}
}

func TestBody_ApplyForce(t *testing.T) {
	body := NewBody(Vector2D{}, 2, 1)
	body.ApplyForce(Vector2D{X: 10, Y: -4})

	expected := Vector2D{X: 5, Y: -2}
	if body.Acceleration != expected {
		t.Errorf("acceleration = %v, expected %v", body.Acceleration, expected)
	}
}

func TestBody_ApplyForceOverwrites(t *testing.T) {
	body := NewBody(Vector2D{}, 1, 1)
	body.ApplyForce(Vector2D{X: 100, Y: 100})
	body.ApplyForce(Vector2D{X: 1, Y: 2})

	expected := Vector2D{X: 1, Y: 2}
	if body.Acceleration != expected {
		t.Errorf("acceleration = %v, expected %v (forces must not accumulate)", body.Acceleration, expected)
	}
}

func TestBody_UpdatePosition(t *testing.T) {
	body := NewBody(Vector2D{X: 1, Y: 1}, 1, 1)
	body.Velocity = Vector2D{X: 2, Y: 0}
	body.Acceleration = Vector2D{X: 0, Y: 4}

	body.UpdatePosition(0.5)

	// position += v*dt + 0.5*a*dt^2
	expectedPos := Vector2D{X: 2, Y: 1.5}
	if !vectorsAlmostEqual(body.Position, expectedPos) {
		t.Errorf("position = %v, expected %v", body.Position, expectedPos)
	}

	// velocity += a*dt
	expectedVel := Vector2D{X: 2, Y: 2}
	if !vectorsAlmostEqual(body.Velocity, expectedVel) {
		t.Errorf("velocity = %v, expected %v", body.Velocity, expectedVel)
	}
}

func TestBody_UpdatePositionNoForces(t *testing.T) {
	body := NewBody(Vector2D{}, 1, 1)
	body.Velocity = Vector2D{X: 3, Y: -1}

	body.UpdatePosition(2)

	expected := Vector2D{X: 6, Y: -2}
	if !vectorsAlmostEqual(body.Position, expected) {
		t.Errorf("position = %v, expected %v (uniform motion)", body.Position, expected)
	}
}
