// Package physics simulates the charged player particle: the charge controller,
// the force integrator, arena wall bounces and the dash impulse.
package physics

import "github.com/jakecoffman/cp"

// ChargeLimits bounds the signed charge a body may carry.
type ChargeLimits struct {
	Max          float64
	MinMagnitude float64
	Step         float64
}

// DashLimits bounds the dash resource.
type DashLimits struct {
	MaxCharges int
	Distance   float64
}

// DefaultChargeLimits returns the reference charge tuning.
func DefaultChargeLimits() ChargeLimits {
	return ChargeLimits{Max: 30, MinMagnitude: 0.1, Step: 5}
}

// DefaultDashLimits returns the reference dash tuning.
func DefaultDashLimits() DashLimits {
	return DashLimits{MaxCharges: 10, Distance: 100}
}

// KinematicBody is the physical state of the player particle.
//
// Position and Velocity are written by the Integrator, the BoundaryResolver and
// Dash. The charge and dash charges are private so every write goes through the
// clamping operations.
type KinematicBody struct {
	Position   cp.Vector
	Velocity   cp.Vector
	HalfWidth  float64
	HalfHeight float64

	ChargeLimits ChargeLimits
	DashLimits   DashLimits

	charge      float64
	dashCharges int
}

// NewKinematicBody creates a body at pos with the given half extents, a charge of
// +1 and a full dash supply.
func NewKinematicBody(pos cp.Vector, halfWidth, halfHeight float64, charge ChargeLimits, dash DashLimits) *KinematicBody {
	b := &KinematicBody{
		Position:     pos,
		HalfWidth:    halfWidth,
		HalfHeight:   halfHeight,
		ChargeLimits: charge,
		DashLimits:   dash,
	}
	b.SetCharge(1)
	b.ResetDashCharges()
	return b
}

// Charge returns the current signed charge.
func (b *KinematicBody) Charge() float64 {
	if b == nil {
		return 0
	}
	return b.charge
}

// DashCharges returns the remaining dash charges.
func (b *KinematicBody) DashCharges() int {
	if b == nil {
		return 0
	}
	return b.dashCharges
}

// Speed returns |Velocity|.
func (b *KinematicBody) Speed() float64 {
	if b == nil {
		return 0
	}
	return b.Velocity.Length()
}

// Bounds returns the axis-aligned box centred on Position.
func (b *KinematicBody) Bounds() cp.BB {
	if b == nil {
		return cp.BB{}
	}
	return cp.NewBBForExtents(b.Position, b.HalfWidth, b.HalfHeight)
}
