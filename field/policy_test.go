package field

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fieldrunner/physics"
	"github.com/milk9111/fieldrunner/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPolicyRanges(t *testing.T) {
	p := DefaultRandomPolicy()
	rng := rand.New(rand.NewPCG(1, 2))

	var horizontal, vertical int
	for i := 0; i < 500; i++ {
		f, err := p.Next(rng)
		require.NoError(t, err)

		assert.True(t, f.Electric.X == 0 || f.Electric.Y == 0, "field %v is not axis aligned", f.Electric)
		assert.LessOrEqual(t, f.Electric.X, 50.0)
		assert.GreaterOrEqual(t, f.Electric.X, -50.0)
		assert.LessOrEqual(t, f.Electric.Y, 25.0)
		assert.GreaterOrEqual(t, f.Electric.Y, -25.0)
		assert.LessOrEqual(t, f.MagneticZ, 2.0)
		assert.GreaterOrEqual(t, f.MagneticZ, -2.0)

		if f.Electric.X != 0 {
			horizontal++
		}
		if f.Electric.Y != 0 {
			vertical++
		}
	}
	assert.Positive(t, horizontal)
	assert.Positive(t, vertical)
}

func TestRandomPolicySeedIsReproducible(t *testing.T) {
	roll := func() []physics.FieldState {
		rng := rand.New(rand.NewPCG(42, 7))
		out := make([]physics.FieldState, 20)
		for i := range out {
			out[i], _ = DefaultRandomPolicy().Next(rng)
		}
		return out
	}
	assert.Equal(t, roll(), roll())
}

func TestStaticPolicy(t *testing.T) {
	want := physics.FieldState{Electric: cp.Vector{X: 3}, MagneticZ: -1}
	got, err := Static(want).Next(rand.New(rand.NewPCG(0, 0)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScriptPolicy(t *testing.T) {
	src := []byte(`
ex := tick * 10
ey := -2.5
bz := rand[0] < 1 ? 1 : 0
`)
	p, err := NewScriptPolicy("inline", src)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(3, 4))
	for tick := 0; tick < 3; tick++ {
		f, err := p.Next(rng)
		require.NoError(t, err)
		assert.Equal(t, float64(tick*10), f.Electric.X)
		assert.Equal(t, -2.5, f.Electric.Y)
		assert.Equal(t, 1.0, f.MagneticZ)
	}
}

func TestScriptPolicyResetReplaysFirstRoll(t *testing.T) {
	p, err := LoadScriptPolicy("rotating")
	require.NoError(t, err)

	first, err := p.Next(rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	_, err = p.Next(rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)

	Reset(p)
	again, err := p.Next(rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// stateless policies are left alone
	Reset(DefaultRandomPolicy())
	Reset(Static(first))
}

func TestScriptPolicyErrors(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	_, err := NewScriptPolicy("broken", []byte(`ex := (`))
	assert.Error(t, err)

	p, err := NewScriptPolicy("missing", []byte(`ex := 1
ey := 2`))
	require.NoError(t, err)
	_, err = p.Next(rng)
	assert.True(t, errors.Is(err, ErrScriptResult), "got %v", err)

	p, err = NewScriptPolicy("string", []byte(`ex := 1
ey := 2
bz := "north"`))
	require.NoError(t, err)
	_, err = p.Next(rng)
	assert.ErrorIs(t, err, ErrScriptResult)
}

func TestBundledScriptsProduceFields(t *testing.T) {
	for _, name := range []string{"rotating", "calm"} {
		p, err := LoadScriptPolicy(name)
		require.NoError(t, err, name)

		rng := rand.New(rand.NewPCG(9, 9))
		for i := 0; i < 8; i++ {
			_, err := p.Next(rng)
			require.NoError(t, err, name)
		}
	}
}

func TestNewPolicyFromSpec(t *testing.T) {
	p, err := NewPolicy(&prefabs.FieldSpec{Policy: prefabs.FieldPolicyRandom, MaxElectric: 10, VerticalScale: 1, MaxMagnetic: 0.5})
	require.NoError(t, err)
	assert.Equal(t, RandomPolicy{MaxElectric: 10, VerticalScale: 1, MaxMagnetic: 0.5}, p)

	p, err = NewPolicy(&prefabs.FieldSpec{Policy: prefabs.FieldPolicyScript, Script: "calm"})
	require.NoError(t, err)
	assert.IsType(t, &ScriptPolicy{}, p)

	_, err = NewPolicy(&prefabs.FieldSpec{Policy: prefabs.FieldPolicyScript, Script: "nope"})
	assert.Error(t, err)
}
