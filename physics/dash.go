package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Dash spends one dash charge and teleports the body DashLimits.Distance along
// direction. It reports false and changes nothing when no charges are left. A
// zero (or non-finite) direction still spends the charge but does not move
// the body.
//
// Dash does not keep the body inside the arena; callers run a BoundaryResolver
// afterwards.
func (b *KinematicBody) Dash(direction cp.Vector) bool {
	if b == nil || b.dashCharges <= 0 {
		return false
	}
	b.dashCharges--

	length := direction.Length()
	if !(length > 0) || math.IsInf(length, 0) {
		return true
	}
	unit := direction.Mult(1 / length)
	b.Position = b.Position.Add(unit.Mult(b.DashLimits.Distance))
	return true
}

// ResetDashCharges refills the dash supply.
func (b *KinematicBody) ResetDashCharges() {
	if b == nil {
		return
	}
	b.dashCharges = max(b.DashLimits.MaxCharges, 0)
}

// SetDashLimits retunes the dash resource and clamps the remaining charges into
// [0, MaxCharges].
func (b *KinematicBody) SetDashLimits(l DashLimits) {
	if b == nil {
		return
	}
	b.DashLimits = l
	b.dashCharges = min(b.dashCharges, max(l.MaxCharges, 0))
}
