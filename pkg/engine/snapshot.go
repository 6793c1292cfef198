// pkg/engine/snapshot.go
package engine

import (
	"orbital-defense/pkg/entity"
	"orbital-defense/pkg/physics"
)

// EnemyState is a renderer-facing view of one enemy
type EnemyState struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Kind     entity.Kind
}

// FrameState is an immutable snapshot of everything a renderer needs
// for one frame. Copying here keeps renderers decoupled from live
// game state.
type FrameState struct {
	PlanetPosition physics.Vector2D
	PlanetRadius   float64

	StationPosition physics.Vector2D
	StationAngle    float64
	Power           float64

	WeaponName        string
	WeaponIndex       int
	WeaponCount       int
	CooldownRemaining float64
	Ready             bool

	Projectiles []physics.Vector2D
	Enemies     []EnemyState
	Trajectory  []physics.Vector2D

	Score   int
	SimTime float64
	Status  Status
}

// Snapshot captures the current frame state
func (g *Game) Snapshot() FrameState {
	fs := FrameState{
		PlanetPosition:    g.Planet.Position,
		PlanetRadius:      g.Planet.Radius,
		StationPosition:   g.Station.Body.Position,
		StationAngle:      g.Station.Angle,
		Power:             g.Station.Power,
		WeaponName:        g.Station.CurrentWeapon().Name,
		WeaponIndex:       g.Station.Current,
		WeaponCount:       len(g.Station.Weapons),
		CooldownRemaining: g.Station.CooldownRemaining(g.Station.Current),
		Ready:             g.Station.CanFire(),
		Score:             g.Score,
		SimTime:           g.simTime,
		Status:            g.Status,
	}

	for _, p := range g.Motion.Projectiles() {
		fs.Projectiles = append(fs.Projectiles, p.Position)
	}
	for _, enemy := range g.Enemies {
		fs.Enemies = append(fs.Enemies, EnemyState{
			Position: enemy.Body.Position,
			Velocity: enemy.Body.Velocity,
			Kind:     enemy.Kind,
		})
	}
	fs.Trajectory = append(fs.Trajectory, g.PredictedTrajectory...)

	return fs
}
