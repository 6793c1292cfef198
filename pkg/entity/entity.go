// pkg/entity/entity.go
package entity

// Kind tags the game role of a simulated body. Entities are plain
// structs around a physics body; behavior is dispatched on the tag
// rather than through an inheritance chain.
type Kind int

const (
	KindPlanet Kind = iota
	KindStation
	KindAsteroid
	KindShip
	KindProjectile
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindPlanet:
		return "planet"
	case KindStation:
		return "station"
	case KindAsteroid:
		return "asteroid"
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}
