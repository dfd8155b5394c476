package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBody() *KinematicBody {
	return NewKinematicBody(cp.Vector{X: 100, Y: 100}, 32, 32, DefaultChargeLimits(), DefaultDashLimits())
}

func assertChargeValid(t *testing.T, b *KinematicBody) {
	t.Helper()
	c := b.Charge()
	if c == 0 {
		return
	}
	mag := math.Abs(c)
	assert.GreaterOrEqual(t, mag, b.ChargeLimits.MinMagnitude, "charge %v below min magnitude", c)
	assert.LessOrEqual(t, mag, b.ChargeLimits.Max, "charge %v above max", c)
}

func TestNewKinematicBodyStartsCharged(t *testing.T) {
	b := newTestBody()
	assert.Equal(t, 1.0, b.Charge())
	assert.Equal(t, 10, b.DashCharges())
}

func TestIncreaseCharge(t *testing.T) {
	cases := []struct {
		name  string
		start float64
		want  float64
	}{
		{"from_zero_goes_positive", 0, 5},
		{"positive_step", 1, 6},
		{"negative_keeps_sign", -1, -6},
		{"clamps_at_max", 28, 30},
		{"stays_at_max", 30, 30},
		{"negative_clamps_at_max", -29, -30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newTestBody()
			b.SetCharge(c.start)
			b.IncreaseCharge()
			assert.InDelta(t, c.want, b.Charge(), 1e-12)
			assertChargeValid(t, b)
		})
	}
}

func TestIncreaseChargeRaisesTinyStepToMinimum(t *testing.T) {
	b := newTestBody()
	b.ChargeLimits.Step = 0.01
	b.SetCharge(0)
	b.IncreaseCharge()
	assert.Equal(t, b.ChargeLimits.MinMagnitude, b.Charge())
}

func TestDecreaseCharge(t *testing.T) {
	cases := []struct {
		name  string
		start float64
		want  float64
	}{
		{"positive_step", 11, 6},
		{"negative_step", -11, -6},
		{"sticks_at_min_positive", 3, 0.1},
		{"sticks_at_min_negative", -3, -0.1},
		{"already_min", 0.1, 0.1},
		{"zero_stays_zero", 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newTestBody()
			b.SetCharge(c.start)
			b.DecreaseCharge()
			assert.InDelta(t, c.want, b.Charge(), 1e-12)
			assertChargeValid(t, b)
		})
	}
}

func TestRepeatedDecreaseConvergesToMinimum(t *testing.T) {
	for _, start := range []float64{30, 17.3, 5, 0.4, -30, -12.5, -0.2} {
		b := newTestBody()
		b.SetCharge(start)
		for i := 0; i < 20; i++ {
			b.DecreaseCharge()
			assertChargeValid(t, b)
			require.NotZero(t, b.Charge(), "start %v decayed to zero", start)
		}
		assert.Equal(t, math.Copysign(b.ChargeLimits.MinMagnitude, start), b.Charge(), "start %v", start)
	}
}

func TestToggleChargeSign(t *testing.T) {
	t.Run("double_toggle_is_identity", func(t *testing.T) {
		for _, start := range []float64{0.1, -0.1, 1, -1, 7.25, -29.9, 30, -30} {
			b := newTestBody()
			b.SetCharge(start)
			b.ToggleChargeSign()
			assert.Equal(t, -start, b.Charge())
			b.ToggleChargeSign()
			assert.Equal(t, start, b.Charge())
		}
	})

	t.Run("from_zero_gives_min_positive", func(t *testing.T) {
		b := newTestBody()
		b.SetCharge(0)
		b.ToggleChargeSign()
		assert.Equal(t, b.ChargeLimits.MinMagnitude, b.Charge())
	})
}

func TestSetCharge(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero_is_exact", 0, 0},
		{"negative_zero_is_exact", math.Copysign(0, -1), 0},
		{"nan_is_zero", math.NaN(), 0},
		{"tiny_positive_raised", 0.01, 0.1},
		{"tiny_negative_raised", -0.01, -0.1},
		{"in_range", 12.5, 12.5},
		{"too_large", 100, 30},
		{"too_negative", -100, -30},
		{"infinite", math.Inf(1), 30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newTestBody()
			b.SetCharge(c.in)
			assert.Equal(t, c.want, b.Charge())
			assertChargeValid(t, b)
		})
	}
}

func TestChargeOperationsKeepInvariant(t *testing.T) {
	b := newTestBody()
	ops := []func(){b.IncreaseCharge, b.DecreaseCharge, b.ToggleChargeSign}
	// deterministic walk over the operations
	seq := []int{0, 0, 2, 1, 1, 1, 1, 2, 0, 2, 2, 1, 0, 0, 0, 0, 0, 0, 0, 2, 1}
	for i, op := range seq {
		ops[op]()
		c := b.Charge()
		if c != 0 {
			require.GreaterOrEqual(t, math.Abs(c), b.ChargeLimits.MinMagnitude, "step %d", i)
			require.LessOrEqual(t, math.Abs(c), b.ChargeLimits.Max, "step %d", i)
		}
	}
}

func TestNilBodyIsSafe(t *testing.T) {
	var b *KinematicBody
	assert.NotPanics(t, func() {
		b.IncreaseCharge()
		b.DecreaseCharge()
		b.ToggleChargeSign()
		b.SetCharge(3)
		b.ResetDashCharges()
		assert.False(t, b.Dash(cp.Vector{X: 1}))
		assert.Zero(t, b.Charge())
		assert.Zero(t, b.DashCharges())
	})
}
