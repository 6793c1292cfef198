// pkg/entity/enemy.go
package entity

import (
	"orbital-defense/pkg/physics"
)

// ShipState is the behavioral state of an enemy ship's AI.
type ShipState int

const (
	StateApproach ShipState = iota
	StateOrbit
)

// String returns a human-readable name for the AI state
func (s ShipState) String() string {
	switch s {
	case StateApproach:
		return "approach"
	case StateOrbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// AIConfig holds the tuning parameters for enemy ship navigation.
type AIConfig struct {
	UpdateInterval   float64 // seconds between AI decisions
	OrbitDistance    float64 // switch to orbit inside this range
	ApproachDistance float64
	MaxSpeed         float64
}

// Enemy is a hostile body worth points when destroyed. Asteroids are
// plain enemies; ships carry an AI on top.
type Enemy struct {
	Body      *physics.Body
	Kind      Kind
	Points    int
	Destroyed bool

	// AI fields, used only when Kind == KindShip
	AI           AIConfig
	State        ShipState
	lastAIUpdate float64
}

// NewAsteroid creates an asteroid enemy at the given position
func NewAsteroid(position physics.Vector2D, mass, radius float64, points int) *Enemy {
	return &Enemy{
		Body:   physics.NewBody(position, mass, radius),
		Kind:   KindAsteroid,
		Points: points,
	}
}

// NewShip creates an AI-controlled enemy ship at the given position
func NewShip(position physics.Vector2D, mass, radius float64, ai AIConfig, points int) *Enemy {
	return &Enemy{
		Body:   physics.NewBody(position, mass, radius),
		Kind:   KindShip,
		Points: points,
		AI:     ai,
		State:  StateApproach,
	}
}

// UpdateAI runs one AI decision for a ship enemy. Decisions are
// rate-limited to the configured interval; between decisions the ship
// coasts under gravity. now is simulation time in seconds, passed in
// explicitly so the step stays deterministic and testable.
//
// The ship orbits when close to the planet and approaches otherwise. In
// either state it computes a desired velocity and applies the steering
// force that would reach it after exactly one update interval of
// unopposed integration.
func (e *Enemy) UpdateAI(now float64, planet *physics.Body) {
	if e.Kind != KindShip {
		return
	}
	if now-e.lastAIUpdate < e.AI.UpdateInterval {
		return
	}
	e.lastAIUpdate = now

	distance := e.Body.Position.Distance(planet.Position)

	var desired physics.Vector2D
	if distance < e.AI.OrbitDistance {
		e.State = StateOrbit
		// Orbit a synthetic point mass at the planet's position; the
		// zero radius keeps the overlap guard out of the math.
		center := physics.NewBody(planet.Position, planet.Mass, 0)
		velocity, err := e.Body.OrbitalVelocity(center, false)
		if err != nil {
			// Sitting exactly on the planet center; no meaningful
			// steering exists, coast until the next decision.
			return
		}
		desired = velocity
	} else {
		e.State = StateApproach
		direction := planet.Position.Sub(e.Body.Position).Normalize()
		desired = direction.Scale(e.AI.MaxSpeed)
	}

	force := desired.Sub(e.Body.Velocity).Scale(e.Body.Mass / e.AI.UpdateInterval)
	e.Body.ApplyForce(force)
}
