// pkg/physics/motion.go
package physics

// TrajectoryPoint is one sample along a projectile's recorded path.
type TrajectoryPoint struct {
	Position Vector2D
	Velocity Vector2D
	Time     float64
}

// TrajectorySample is a flattened, read-only view over a trajectory
// point, shaped for replay export.
type TrajectorySample struct {
	Time  float64
	X     float64
	Y     float64
	VX    float64
	VY    float64
	Speed float64
	Angle float64
}

// Projectile is a body whose path can be recorded for replay. The
// trajectory log grows without bound while RecordTrajectory is set; it
// exists for export, not for simulation correctness.
type Projectile struct {
	*Body
	Trajectory       []TrajectoryPoint
	RecordTrajectory bool
}

// NewProjectile creates a projectile with the given initial state
func NewProjectile(position, velocity Vector2D, mass, radius float64) *Projectile {
	body := NewBody(position, mass, radius)
	body.Velocity = velocity
	return &Projectile{
		Body:             body,
		RecordTrajectory: true,
	}
}

// record appends a trajectory point for the step that just completed.
// The sample carries the post-step position and the velocity the
// projectile had going into the step.
func (p *Projectile) record(dt float64) {
	if !p.RecordTrajectory {
		return
	}
	p.Trajectory = append(p.Trajectory, TrajectoryPoint{
		Position: p.Position,
		Velocity: p.Velocity.Sub(p.Acceleration.Scale(dt)),
		Time:     float64(len(p.Trajectory)) * dt,
	})
}

// advance drives one force-and-integrate step for this projectile alone,
// reading the other bodies through the simulator without touching them.
func (p *Projectile) advance(sim *Simulator, dt float64) {
	p.ApplyForce(sim.CalculateNetForce(p.Body))
	p.UpdatePosition(dt)
	p.record(dt)
}

// Motion manages the projectiles participating in a gravity simulation:
// launching, removal, collision queries and trajectory prediction.
type Motion struct {
	sim         *Simulator
	projectiles []*Projectile
}

// NewMotion creates a projectile motion controller bound to a simulator
func NewMotion(sim *Simulator) *Motion {
	return &Motion{sim: sim}
}

// Projectiles returns the active projectiles in launch order
func (m *Motion) Projectiles() []*Projectile {
	return m.projectiles
}

// Launch fires a new projectile from position with speed along angle,
// registering it with the simulator and the active list.
func (m *Motion) Launch(position Vector2D, angle, speed, mass, radius float64) *Projectile {
	p := NewProjectile(position, FromPolar(speed, angle), mass, radius)
	m.projectiles = append(m.projectiles, p)
	m.sim.AddBody(p.Body)
	return p
}

// Remove unregisters a projectile from the active list and the
// simulator. Removing an absent projectile is a no-op.
func (m *Motion) Remove(p *Projectile) {
	for i, active := range m.projectiles {
		if active == p {
			m.projectiles = append(m.projectiles[:i], m.projectiles[i+1:]...)
			break
		}
	}
	m.sim.RemoveBody(p.Body)
}

// RecordStep appends a trajectory point to every recording projectile
// for the simulator step that just completed.
func (m *Motion) RecordStep(dt float64) {
	for _, p := range m.projectiles {
		p.record(dt)
	}
}

// PredictTrajectory runs a shadow simulation of a hypothetical launch
// and returns the predicted positions, one per step, sampled before each
// integration. The shadow projectile joins the simulator so it feels
// gravity from the real bodies, but only the shadow is ever stepped;
// no pre-existing body's state is read-modified, and the shadow is
// removed before returning.
func (m *Motion) PredictTrajectory(start Vector2D, angle, speed, mass float64, steps int, dt float64) []Vector2D {
	shadow := NewProjectile(start, FromPolar(speed, angle), mass, predictionRadius)
	shadow.RecordTrajectory = false
	m.sim.AddBody(shadow.Body)
	defer m.sim.RemoveBody(shadow.Body)

	positions := make([]Vector2D, 0, steps)
	for i := 0; i < steps; i++ {
		positions = append(positions, shadow.Position)
		shadow.advance(m.sim, dt)
	}
	return positions
}

// predictionRadius is the collision radius assumed for shadow
// projectiles during prediction.
const predictionRadius = 0.5

// CheckCollision reports whether two bodies touch or overlap. Centers
// exactly the sum of radii apart count as colliding.
func (m *Motion) CheckCollision(a, b *Body) bool {
	return a.Position.Distance(b.Position) <= a.Radius+b.Radius
}

// ExportTrajectoryData flattens a projectile's recorded trajectory into
// samples with derived speed and heading.
func (m *Motion) ExportTrajectoryData(p *Projectile) []TrajectorySample {
	samples := make([]TrajectorySample, 0, len(p.Trajectory))
	for _, point := range p.Trajectory {
		samples = append(samples, TrajectorySample{
			Time:  point.Time,
			X:     point.Position.X,
			Y:     point.Position.Y,
			VX:    point.Velocity.X,
			VY:    point.Velocity.Y,
			Speed: point.Velocity.Length(),
			Angle: point.Velocity.Angle(),
		})
	}
	return samples
}
