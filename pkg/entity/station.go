// pkg/entity/station.go
package entity

import (
	"math"

	"orbital-defense/pkg/physics"
)

// WeaponType is the immutable loadout description for one weapon slot.
type WeaponType struct {
	Name             string
	Mass             float64
	Radius           float64
	MaxSpeed         float64
	Cooldown         float64 // seconds between shots
	GuidanceStrength float64 // 0 = unguided
}

// FireParams carries everything needed to launch a projectile for one
// shot. Position is a copy; mutating it does not move the station.
type FireParams struct {
	Position         physics.Vector2D
	Angle            float64
	Speed            float64
	Mass             float64
	Radius           float64
	GuidanceStrength float64
}

// Station is the player-controlled defense platform. Weapons are
// selected by index; each slot keeps its own cooldown timer, so
// switching weapons never resets or shares timers.
type Station struct {
	Body    *physics.Body
	Weapons []WeaponType
	Current int
	Angle   float64 // firing angle in radians, 0 = right
	Power   float64 // firing power in percent, 0..100

	cooldowns []float64 // parallel to Weapons, seconds remaining
}

// NewStation creates a station with the given weapon loadout. The
// weapon slice must be non-empty; slot 0 starts selected.
func NewStation(position physics.Vector2D, mass, radius float64, weapons []WeaponType) *Station {
	return &Station{
		Body:      physics.NewBody(position, mass, radius),
		Weapons:   weapons,
		Current:   0,
		Angle:     0,
		Power:     50,
		cooldowns: make([]float64, len(weapons)),
	}
}

// CurrentWeapon returns the selected weapon type
func (s *Station) CurrentWeapon() WeaponType {
	return s.Weapons[s.Current]
}

// CooldownRemaining returns the seconds left before weapon slot i can
// fire again; zero means ready.
func (s *Station) CooldownRemaining(i int) float64 {
	if i < 0 || i >= len(s.cooldowns) {
		return 0
	}
	return s.cooldowns[i]
}

// SelectWeapon switches the active weapon slot. Out-of-range indices
// are ignored; other slots' timers are untouched either way.
func (s *Station) SelectWeapon(i int) {
	if i < 0 || i >= len(s.Weapons) {
		return
	}
	s.Current = i
}

// CanFire reports whether the selected weapon is off cooldown
func (s *Station) CanFire() bool {
	return s.cooldowns[s.Current] <= 0
}

// Fire attempts to fire the selected weapon. When the weapon is still
// cooling it returns nil with no side effect. Otherwise the slot's
// cooldown re-arms to the weapon's full value and the launch parameters
// are returned; projectile speed scales linearly with Power.
func (s *Station) Fire() *FireParams {
	if !s.CanFire() {
		return nil
	}

	weapon := s.Weapons[s.Current]
	s.cooldowns[s.Current] = weapon.Cooldown

	return &FireParams{
		Position:         s.Body.Position,
		Angle:            s.Angle,
		Speed:            s.Power / 100 * weapon.MaxSpeed,
		Mass:             weapon.Mass,
		Radius:           weapon.Radius,
		GuidanceStrength: weapon.GuidanceStrength,
	}
}

// UpdateCooldowns drains every weapon's timer by dt, flooring at zero
func (s *Station) UpdateCooldowns(dt float64) {
	for i := range s.cooldowns {
		s.cooldowns[i] = math.Max(0, s.cooldowns[i]-dt)
	}
}

// AdjustAngle rotates the firing angle by delta radians, wrapped to
// [0, 2π).
func (s *Station) AdjustAngle(delta float64) {
	s.Angle = math.Mod(s.Angle+delta, 2*math.Pi)
	if s.Angle < 0 {
		s.Angle += 2 * math.Pi
	}
}

// AdjustPower shifts the firing power by delta, clamped to [0, 100]
func (s *Station) AdjustPower(delta float64) {
	s.Power = math.Min(100, math.Max(0, s.Power+delta))
}
