// pkg/engine/game.go
package engine

import (
	"math"
	"math/rand"

	"orbital-defense/pkg/config"
	"orbital-defense/pkg/entity"
	"orbital-defense/pkg/event"
	"orbital-defense/pkg/physics"
)

// Status describes the game lifecycle state
type Status int

const (
	StatusWaiting Status = iota
	StatusActive
	StatusPaused
	StatusEnded
)

// offFieldMargin is how far beyond the play field a body may drift
// before cleanup removes it.
const offFieldMargin = 50

// Game owns the complete state of one orbital defense session: the
// gravity simulation, the planet, the player station, enemies and
// projectiles, plus score and spawn pacing. All mutation happens on
// the frame loop's goroutine; Game does no locking of its own.
type Game struct {
	Config   *config.Config
	Sim      *physics.Simulator
	Motion   *physics.Motion
	Planet   *physics.Body
	Station  *entity.Station
	Enemies  []*entity.Enemy
	EventBus *event.Bus

	Score               int
	Status              Status
	PredictedTrajectory []physics.Vector2D

	simTime    float64
	spawnTimer float64
	difficulty float64
	width      float64
	height     float64
	rng        *rand.Rand
}

// NewGame assembles a game from a validated configuration. The planet
// sits at the center of the play field with the station parked just
// above it; the station stays out of the gravity simulation so it holds
// its emplacement.
func NewGame(cfg *config.Config) *Game {
	sim := physics.NewSimulator()

	width := float64(cfg.Display.Width)
	height := float64(cfg.Display.Height)

	planet := physics.NewBody(
		physics.Vector2D{X: width / 2, Y: height / 2},
		cfg.Planet.Mass,
		cfg.Planet.Radius,
	)
	sim.AddBody(planet)

	weapons := make([]entity.WeaponType, 0, len(cfg.Weapons))
	for _, w := range cfg.Weapons {
		weapons = append(weapons, entity.WeaponType{
			Name:             w.Name,
			Mass:             w.Mass,
			Radius:           w.Radius,
			MaxSpeed:         w.MaxSpeed,
			Cooldown:         w.Cooldown,
			GuidanceStrength: w.GuidanceStrength,
		})
	}

	station := entity.NewStation(
		physics.Vector2D{
			X: planet.Position.X,
			Y: planet.Position.Y + planet.Radius + cfg.Station.OrbitHeight,
		},
		cfg.Station.Mass,
		cfg.Station.Radius,
		weapons,
	)

	return &Game{
		Config:     cfg,
		Sim:        sim,
		Motion:     physics.NewMotion(sim),
		Planet:     planet,
		Station:    station,
		EventBus:   event.NewBus(),
		Status:     StatusWaiting,
		spawnTimer: cfg.Enemies.SpawnInterval,
		difficulty: 0.1,
		width:      width,
		height:     height,
		rng:        rand.New(rand.NewSource(cfg.Simulation.Seed)),
	}
}

// Start activates the game
func (g *Game) Start() {
	g.Status = StatusActive
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
}

// TogglePause switches between active and paused
func (g *Game) TogglePause() {
	switch g.Status {
	case StatusActive:
		g.Status = StatusPaused
		g.EventBus.Publish(&event.BaseEvent{EventType: event.GamePaused, Source: g})
	case StatusPaused:
		g.Status = StatusActive
		g.EventBus.Publish(&event.BaseEvent{EventType: event.GameResumed, Source: g})
	}
}

// SimTime returns the accumulated simulation time in seconds
func (g *Game) SimTime() float64 {
	return g.simTime
}

// Update advances the session one tick: drain cooldowns, pace enemy
// spawns, run ship AI, step the gravity simulation, then resolve
// collisions and cleanup against the post-step state.
func (g *Game) Update(dt float64) {
	if g.Status != StatusActive {
		return
	}

	g.simTime += dt
	g.Station.UpdateCooldowns(dt)

	g.spawnTimer -= dt
	if g.spawnTimer <= 0 {
		g.spawnEnemy()
	}

	for _, enemy := range g.Enemies {
		enemy.UpdateAI(g.simTime, g.Planet)
	}

	g.Sim.Step(dt)
	g.Motion.RecordStep(dt)

	g.checkCollisions()
	g.cleanupOffField()
	g.updateTrajectory()
}

// Fire launches a projectile from the station if the selected weapon is
// ready. Returns the projectile, or nil when the weapon was cooling.
func (g *Game) Fire() *physics.Projectile {
	params := g.Station.Fire()
	if params == nil {
		return nil
	}

	p := g.Motion.Launch(params.Position, params.Angle, params.Speed, params.Mass, params.Radius)
	g.EventBus.Publish(event.NewProjectileEvent(g, g.Station.CurrentWeapon().Name, params.Speed))
	return p
}

// spawnEnemy places a new enemy at a random angle on the spawn circle
// with an initial counter-clockwise orbital velocity. The asteroid/ship
// mix and the spawn pacing both tighten as difficulty ramps.
func (g *Game) spawnEnemy() {
	angle := g.rng.Float64() * 2 * math.Pi
	spawnPos := g.Planet.Position.Add(physics.FromPolar(g.Config.Enemies.SpawnDistance, angle))

	shipWeight := math.Min(0.3+g.difficulty*0.1, 0.7)

	var enemy *entity.Enemy
	if g.rng.Float64() < shipWeight {
		ship := g.Config.Enemies.Ship
		enemy = entity.NewShip(spawnPos, ship.Mass, ship.Radius, entity.AIConfig{
			UpdateInterval:   ship.AI.UpdateInterval,
			OrbitDistance:    ship.AI.OrbitDistance,
			ApproachDistance: ship.AI.ApproachDistance,
			MaxSpeed:         ship.AI.MaxSpeed,
		}, ship.Points)
	} else {
		asteroid := g.Config.Enemies.Asteroid
		massMultiplier := 1 + g.difficulty*0.2
		mass := asteroid.MinMass*massMultiplier +
			g.rng.Float64()*(asteroid.MaxMass-asteroid.MinMass)*massMultiplier
		enemy = entity.NewAsteroid(spawnPos, mass, asteroid.Radius, asteroid.Points)
	}

	if velocity, err := enemy.Body.OrbitalVelocity(g.Planet, false); err == nil {
		enemy.Body.Velocity = velocity
	}

	g.Enemies = append(g.Enemies, enemy)
	g.Sim.AddBody(enemy.Body)
	g.EventBus.Publish(event.NewEnemyEvent(event.EnemySpawned, g, enemy.Kind.String(), enemy.Points))

	g.difficulty += 0.05
	g.spawnTimer = math.Max(0.5, g.Config.Enemies.SpawnInterval-g.difficulty)
}

// checkCollisions destroys enemies hit by projectiles and ends the game
// when an enemy reaches the planet. Scans run over snapshots and the
// removals apply afterwards, so the collections are never mutated while
// being iterated.
func (g *Game) checkCollisions() {
	var deadProjectiles []*physics.Projectile
	var deadEnemies []*entity.Enemy

	projectiles := g.Motion.Projectiles()
	for _, p := range projectiles {
		for _, enemy := range g.Enemies {
			if enemy.Destroyed {
				continue
			}
			if g.Motion.CheckCollision(p.Body, enemy.Body) {
				enemy.Destroyed = true
				g.Score += enemy.Points
				deadProjectiles = append(deadProjectiles, p)
				deadEnemies = append(deadEnemies, enemy)
				g.EventBus.Publish(event.NewEnemyEvent(event.EnemyDestroyed, g, enemy.Kind.String(), enemy.Points))
				g.EventBus.Publish(event.NewScoreEvent(g, g.Score, enemy.Points))
				break
			}
		}
	}

	for _, p := range deadProjectiles {
		g.Motion.Remove(p)
	}
	for _, enemy := range deadEnemies {
		g.removeEnemy(enemy)
	}

	for _, enemy := range g.Enemies {
		if g.Motion.CheckCollision(enemy.Body, g.Planet) {
			g.EventBus.Publish(event.NewEnemyEvent(event.PlanetHit, g, enemy.Kind.String(), enemy.Points))
			g.endGame()
			return
		}
	}
}

// cleanupOffField removes projectiles and enemies that drifted well
// outside the play field.
func (g *Game) cleanupOffField() {
	var deadProjectiles []*physics.Projectile
	for _, p := range g.Motion.Projectiles() {
		if g.offField(p.Position) {
			deadProjectiles = append(deadProjectiles, p)
		}
	}
	for _, p := range deadProjectiles {
		g.Motion.Remove(p)
	}

	var deadEnemies []*entity.Enemy
	for _, enemy := range g.Enemies {
		if g.offField(enemy.Body.Position) {
			deadEnemies = append(deadEnemies, enemy)
		}
	}
	for _, enemy := range deadEnemies {
		g.removeEnemy(enemy)
	}
}

func (g *Game) offField(pos physics.Vector2D) bool {
	return pos.X < -offFieldMargin || pos.X > g.width+offFieldMargin ||
		pos.Y < -offFieldMargin || pos.Y > g.height+offFieldMargin
}

// removeEnemy drops an enemy from the roster and the simulator
func (g *Game) removeEnemy(enemy *entity.Enemy) {
	for i, e := range g.Enemies {
		if e == enemy {
			g.Enemies = append(g.Enemies[:i], g.Enemies[i+1:]...)
			break
		}
	}
	g.Sim.RemoveBody(enemy.Body)
}

// updateTrajectory refreshes the predicted path for the current aim,
// or clears it while the weapon is cooling.
func (g *Game) updateTrajectory() {
	if !g.Station.CanFire() {
		g.PredictedTrajectory = nil
		return
	}

	weapon := g.Station.CurrentWeapon()
	speed := g.Station.Power / 100 * weapon.MaxSpeed
	g.PredictedTrajectory = g.Motion.PredictTrajectory(
		g.Station.Body.Position,
		g.Station.Angle,
		speed,
		weapon.Mass,
		g.Config.Simulation.MaxPredictionSteps,
		g.Config.Simulation.PredictionInterval,
	)
}

// endGame marks the session over
func (g *Game) endGame() {
	if g.Status == StatusEnded {
		return
	}
	g.Status = StatusEnded
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameEnded, Source: g})
}
