package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fieldrunner/physics"
)

// Player owns the kinematic body of the particle and the tuning of the
// services that move it.
type Player struct {
	Body       *physics.KinematicBody
	Integrator physics.Integrator
	Resolver   physics.BoundaryResolver

	// Start state applied on every run reset. StartX/StartY are fractions of the
	// arena size.
	StartX        float64
	StartY        float64
	StartVelocity cp.Vector
	StartCharge   float64
}

var PlayerComponent = NewComponent[Player]()
