package field

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fieldrunner/physics"
	"github.com/milk9111/fieldrunner/prefabs"
)

var ErrScriptResult = errors.New("field script result")

// randSamples is the length of the rand array handed to scripts.
const randSamples = 3

// ScriptPolicy runs a tengo script per roll. The script sees `tick` (number of
// previous rolls) and `rand` (uniform samples in [0,1)) and must define the
// globals ex, ey and bz.
type ScriptPolicy struct {
	Name     string
	compiled *tengo.Compiled
	tick     int
}

func NewScriptPolicy(name string, src []byte) (*ScriptPolicy, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("rand", make([]any, randSamples))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("field: compile %s: %w", name, err)
	}
	return &ScriptPolicy{Name: name, compiled: compiled}, nil
}

// LoadScriptPolicy compiles a script from the prefabs scripts directory.
func LoadScriptPolicy(name string) (*ScriptPolicy, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("field: load script %s: %w", name, err)
	}
	return NewScriptPolicy(name, src)
}

func (p *ScriptPolicy) Next(rng *rand.Rand) (physics.FieldState, error) {
	samples := make([]any, randSamples)
	for i := range samples {
		samples[i] = rng.Float64()
	}

	if err := p.compiled.Set("tick", p.tick); err != nil {
		return physics.FieldState{}, err
	}
	if err := p.compiled.Set("rand", samples); err != nil {
		return physics.FieldState{}, err
	}
	if err := p.compiled.Run(); err != nil {
		return physics.FieldState{}, fmt.Errorf("field: run %s: %w", p.Name, err)
	}
	p.tick++

	ex, err := p.number("ex")
	if err != nil {
		return physics.FieldState{}, err
	}
	ey, err := p.number("ey")
	if err != nil {
		return physics.FieldState{}, err
	}
	bz, err := p.number("bz")
	if err != nil {
		return physics.FieldState{}, err
	}

	return physics.FieldState{Electric: cp.Vector{X: ex, Y: ey}, MagneticZ: bz}, nil
}

func (p *ScriptPolicy) number(name string) (float64, error) {
	v := p.compiled.Get(name)
	switch v.ValueType() {
	case "int", "float":
	default:
		return 0, fmt.Errorf("field: %s: %w: %s is %s, want a number", p.Name, ErrScriptResult, name, v.ValueType())
	}
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("field: %s: %w: %s is not finite", p.Name, ErrScriptResult, name)
	}
	return f, nil
}

// Reset rewinds tick so the next roll is the script's first again.
func (p *ScriptPolicy) Reset() {
	p.tick = 0
}

// NewPolicy builds the policy a field prefab asks for.
func NewPolicy(spec *prefabs.FieldSpec) (Policy, error) {
	if spec == nil {
		return DefaultRandomPolicy(), nil
	}
	switch spec.Policy {
	case prefabs.FieldPolicyScript:
		return LoadScriptPolicy(spec.Script)
	default:
		return RandomPolicy{MaxElectric: spec.MaxElectric, VerticalScale: spec.VerticalScale, MaxMagnetic: spec.MaxMagnetic}, nil
	}
}
