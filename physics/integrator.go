package physics

import "github.com/jakecoffman/cp"

// FieldState is the electromagnetic field, uniform across the arena. Only the
// out-of-plane component of the magnetic field exists in 2D.
type FieldState struct {
	Electric  cp.Vector
	MagneticZ float64
}

// Integrator advances a body by one time step under a FieldState.
type Integrator struct {
	Mass     float64
	MaxSpeed float64
	// Damping is the velocity-proportional drag coefficient, scaled by Mass.
	Damping float64
}

// DefaultIntegrator returns the reference tuning.
func DefaultIntegrator() Integrator {
	return Integrator{Mass: 1, MaxSpeed: 500, Damping: 0.1}
}

// Force returns the net force on b: q*E + q*(v x Bz) - v*damping*m.
func (in Integrator) Force(b *KinematicBody, f FieldState) cp.Vector {
	q := b.charge
	v := b.Velocity
	electric := f.Electric.Mult(q)
	magnetic := cp.Vector{X: q * v.Y * f.MagneticZ, Y: q * -v.X * f.MagneticZ}
	damping := v.Mult(-in.Damping * in.Mass)
	return electric.Add(magnetic).Add(damping)
}

// Step integrates b over dt seconds with semi-implicit Euler. The new velocity is
// capped at MaxSpeed before it moves the position. A non-positive mass or a
// negative dt leaves the body untouched.
func (in Integrator) Step(b *KinematicBody, f FieldState, dt float64) {
	if b == nil || in.Mass <= 0 || dt < 0 {
		return
	}

	accel := in.Force(b, f).Mult(1 / in.Mass)
	vel := b.Velocity.Add(accel.Mult(dt))
	vel = capSpeed(vel, in.MaxSpeed)

	b.Velocity = vel
	b.Position = b.Position.Add(vel.Mult(dt))
}

func capSpeed(v cp.Vector, limit float64) cp.Vector {
	if limit <= 0 {
		return v
	}
	speed := v.Length()
	if speed > limit {
		return v.Mult(limit / speed)
	}
	return v
}
