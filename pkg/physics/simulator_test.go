// pkg/physics/simulator_test.go
package physics

import (
	"math"
	"testing"
)

func TestSimulator_AddRemoveBody(t *testing.T) {
	sim := NewSimulator()
	body := NewBody(Vector2D{}, 1, 1)

	sim.AddBody(body)
	if !sim.Contains(body) {
		t.Fatalf("body not found after AddBody()")
	}

	sim.RemoveBody(body)
	if sim.Contains(body) {
		t.Fatalf("body still present after RemoveBody()")
	}
}

func TestSimulator_RemoveAbsentBodyIsNoOp(t *testing.T) {
	sim := NewSimulator()
	resident := NewBody(Vector2D{}, 1, 1)
	stranger := NewBody(Vector2D{X: 5}, 1, 1)
	sim.AddBody(resident)

	sim.RemoveBody(stranger)
	sim.RemoveBody(stranger) // repeated removal must also be harmless

	if len(sim.Bodies()) != 1 {
		t.Errorf("body count = %d, expected 1", len(sim.Bodies()))
	}
}

func TestSimulator_BodiesKeepInsertionOrder(t *testing.T) {
	sim := NewSimulator()
	first := NewBody(Vector2D{X: 1}, 1, 0)
	second := NewBody(Vector2D{X: 2}, 1, 0)
	third := NewBody(Vector2D{X: 3}, 1, 0)

	sim.AddBody(first)
	sim.AddBody(second)
	sim.AddBody(third)
	sim.RemoveBody(second)

	bodies := sim.Bodies()
	if len(bodies) != 2 || bodies[0] != first || bodies[1] != third {
		t.Errorf("bodies not in insertion order after removal")
	}
}

func TestSimulator_CalculateNetForceExcludesSelf(t *testing.T) {
	sim := NewSimulator()
	lone := NewBody(Vector2D{}, 1e6, 1)
	sim.AddBody(lone)

	if force := sim.CalculateNetForce(lone); force != (Vector2D{}) {
		t.Errorf("net force on lone body = %v, expected zero", force)
	}
}

func TestSimulator_NetForceSymmetricPair(t *testing.T) {
	sim := NewSimulator()
	a := NewBody(Vector2D{X: -10}, 100, 0)
	b := NewBody(Vector2D{X: 10}, 100, 0)
	sim.AddBody(a)
	sim.AddBody(b)

	forceOnA := sim.CalculateNetForce(a)
	forceOnB := sim.CalculateNetForce(b)

	// Newton's third law: equal magnitude, opposite direction
	if !vectorsAlmostEqual(forceOnA, forceOnB.Scale(-1)) {
		t.Errorf("forces not opposite: %v vs %v", forceOnA, forceOnB)
	}
	if forceOnA.X <= 0 {
		t.Errorf("force on left body should point right, got %v", forceOnA)
	}
}

func TestSimulator_NetForceOrderIndependent(t *testing.T) {
	probe := func(order []Vector2D) Vector2D {
		sim := NewSimulator()
		target := NewBody(Vector2D{}, 1, 0)
		sim.AddBody(target)
		for _, pos := range order {
			sim.AddBody(NewBody(pos, 500, 0))
		}
		return sim.CalculateNetForce(target)
	}

	positions := []Vector2D{{X: 30}, {Y: -40}, {X: -25, Y: 15}}
	reversed := []Vector2D{{X: -25, Y: 15}, {Y: -40}, {X: 30}}

	forward := probe(positions)
	backward := probe(reversed)

	if !vectorsAlmostEqual(forward, backward) {
		t.Errorf("net force depends on iteration order: %v vs %v", forward, backward)
	}
}

func TestSimulator_StepUsesPreStepPositions(t *testing.T) {
	// Two identical bodies attracting each other: after one step both
	// must have moved symmetrically. If the second body's force were
	// computed from the first body's already-updated position the
	// symmetry would break.
	sim := NewSimulator()
	a := NewBody(Vector2D{X: -10}, 1000, 0)
	b := NewBody(Vector2D{X: 10}, 1000, 0)
	sim.AddBody(a)
	sim.AddBody(b)

	sim.Step(0.1)

	if math.Abs(a.Position.X+b.Position.X) > 1e-9 {
		t.Errorf("asymmetric positions after step: %v vs %v", a.Position, b.Position)
	}
	if math.Abs(a.Velocity.X+b.Velocity.X) > 1e-9 {
		t.Errorf("asymmetric velocities after step: %v vs %v", a.Velocity, b.Velocity)
	}
}

func TestSimulator_StepMovesBodyTowardAttractor(t *testing.T) {
	sim := NewSimulator()
	planet := NewBody(Vector2D{}, 1e6, 10)
	satellite := NewBody(Vector2D{X: 100}, 1, 1)
	sim.AddBody(planet)
	sim.AddBody(satellite)

	sim.Step(0.1)

	if satellite.Position.X >= 100 {
		t.Errorf("satellite did not fall toward planet: x = %v", satellite.Position.X)
	}
	if satellite.Velocity.X >= 0 {
		t.Errorf("satellite velocity not pointed at planet: vx = %v", satellite.Velocity.X)
	}
}

func TestSimulator_CircularOrbitIsStable(t *testing.T) {
	sim := NewSimulator()
	planet := NewBody(Vector2D{}, 1e6, 5)
	moon := NewBody(Vector2D{X: 80}, 1, 1)
	sim.AddBody(planet)
	sim.AddBody(moon)

	velocity, err := moon.OrbitalVelocity(planet, true)
	if err != nil {
		t.Fatalf("OrbitalVelocity() unexpected error: %v", err)
	}
	moon.Velocity = velocity

	for i := 0; i < 1000; i++ {
		sim.Step(0.01)
	}

	distance := moon.Position.Distance(planet.Position)
	if math.Abs(distance-80) > 4 {
		t.Errorf("orbit radius drifted to %v, expected ~80", distance)
	}
}
