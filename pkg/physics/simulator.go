// pkg/physics/simulator.go
package physics

// Simulator owns the set of bodies interacting gravitationally. Bodies
// keep insertion order so runs are reproducible; physics itself does not
// depend on the order.
type Simulator struct {
	bodies []*Body
}

// NewSimulator creates an empty gravity simulator
func NewSimulator() *Simulator {
	return &Simulator{}
}

// AddBody adds a body to the simulation
func (s *Simulator) AddBody(body *Body) {
	s.bodies = append(s.bodies, body)
}

// RemoveBody removes a body from the simulation. Removing a body that
// is not present is a no-op, so cleanup calls can be made defensively.
func (s *Simulator) RemoveBody(body *Body) {
	for i, b := range s.bodies {
		if b == body {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			return
		}
	}
}

// Contains reports whether the body is part of the simulation
func (s *Simulator) Contains(body *Body) bool {
	for _, b := range s.bodies {
		if b == body {
			return true
		}
	}
	return false
}

// Bodies returns the bodies in insertion order. The returned slice is
// the simulator's own storage; callers must not mutate it.
func (s *Simulator) Bodies() []*Body {
	return s.bodies
}

// CalculateNetForce sums the gravitational pull on body from every
// other body in the simulation. Each pair term points from body toward
// the attracting body.
func (s *Simulator) CalculateNetForce(body *Body) Vector2D {
	var net Vector2D
	for _, other := range s.bodies {
		if other == body {
			continue
		}
		net = net.Add(body.GravitationalForce(other))
	}
	return net
}

// Step advances the simulation by one time step. Forces for every body
// are computed and applied before any body moves, so no force
// calculation ever sees another body's already-updated position within
// the same step.
func (s *Simulator) Step(dt float64) {
	for _, body := range s.bodies {
		body.ApplyForce(s.CalculateNetForce(body))
	}
	for _, body := range s.bodies {
		body.UpdatePosition(dt)
	}
}
