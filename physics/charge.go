package physics

import "math"

// IncreaseCharge adds one step to the charge magnitude, keeping the sign. A zero
// charge grows in the positive direction.
func (b *KinematicBody) IncreaseCharge() {
	if b == nil {
		return
	}
	lim := b.ChargeLimits
	sign := chargeSign(b.charge)
	mag := math.Abs(b.charge) + lim.Step
	mag = math.Max(0, math.Min(mag, lim.Max))
	if mag > 0 && mag < lim.MinMagnitude {
		mag = lim.MinMagnitude
	}
	b.charge = sign * mag
}

// DecreaseCharge removes one step from the charge magnitude. A non-zero charge
// sticks at the minimum magnitude instead of reaching zero; a zero charge stays zero.
func (b *KinematicBody) DecreaseCharge() {
	if b == nil {
		return
	}
	lim := b.ChargeLimits
	sign := chargeSign(b.charge)
	mag := math.Abs(b.charge) - lim.Step
	if mag < lim.MinMagnitude {
		if b.charge != 0 {
			mag = lim.MinMagnitude
		} else {
			mag = 0
		}
	}
	if mag > lim.Max {
		mag = lim.Max
	}
	b.charge = sign * mag
}

// ToggleChargeSign negates the charge. Toggling a zero charge yields the minimum
// positive charge.
func (b *KinematicBody) ToggleChargeSign() {
	if b == nil {
		return
	}
	switch {
	case math.Abs(b.charge) >= b.ChargeLimits.MinMagnitude:
		b.charge = -b.charge
	case b.charge == 0:
		b.charge = b.ChargeLimits.MinMagnitude
	}
}

// SetCharge stores v with its magnitude clamped into [MinMagnitude, Max]. Zero
// (and NaN) set the charge to exactly zero.
func (b *KinematicBody) SetCharge(v float64) {
	if b == nil {
		return
	}
	if v == 0 || math.IsNaN(v) {
		b.charge = 0
		return
	}
	lim := b.ChargeLimits
	mag := math.Min(math.Abs(v), lim.Max)
	if mag < lim.MinMagnitude {
		mag = lim.MinMagnitude
	}
	b.charge = chargeSign(v) * mag
}

func chargeSign(v float64) float64 {
	if v == 0 {
		return 1
	}
	return math.Copysign(1, v)
}
