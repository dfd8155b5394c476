// Package field decides what electric and magnetic field the arena carries.
package field

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fieldrunner/physics"
)

// Policy produces the next field whenever the arena re-rolls it.
type Policy interface {
	Next(rng *rand.Rand) (physics.FieldState, error)
}

// Resetter is implemented by policies that carry state between rolls. Reset
// returns them to their first roll so a seed replays the same fields.
type Resetter interface {
	Reset()
}

// Reset calls p.Reset when p keeps state between rolls.
func Reset(p Policy) {
	if r, ok := p.(Resetter); ok {
		r.Reset()
	}
}

type PolicyFunc func(rng *rand.Rand) (physics.FieldState, error)

func (f PolicyFunc) Next(rng *rand.Rand) (physics.FieldState, error) {
	return f(rng)
}

// RandomPolicy picks an axis-aligned electric field and a uniform magnetic
// field. Horizontal fields are drawn from [-MaxElectric, MaxElectric); vertical
// ones are additionally scaled by VerticalScale.
type RandomPolicy struct {
	MaxElectric   float64
	VerticalScale float64
	MaxMagnetic   float64
}

func DefaultRandomPolicy() RandomPolicy {
	return RandomPolicy{MaxElectric: 50, VerticalScale: 0.5, MaxMagnetic: 2}
}

func (p RandomPolicy) Next(rng *rand.Rand) (physics.FieldState, error) {
	var e cp.Vector
	if rng.IntN(2) == 0 {
		e.X = uniform(rng, p.MaxElectric)
	} else {
		e.Y = uniform(rng, p.MaxElectric) * p.VerticalScale
	}
	return physics.FieldState{Electric: e, MagneticZ: uniform(rng, p.MaxMagnetic)}, nil
}

// Static always returns the same field.
func Static(state physics.FieldState) Policy {
	return PolicyFunc(func(*rand.Rand) (physics.FieldState, error) {
		return state, nil
	})
}

func uniform(rng *rand.Rand, limit float64) float64 {
	return (rng.Float64()*2 - 1) * limit
}
