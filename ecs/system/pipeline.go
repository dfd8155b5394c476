package system

import (
	"math/rand/v2"

	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/field"
)

// Pipeline is the gameplay scheduler plus handles to the systems the game
// needs to reconfigure at runtime.
type Pipeline struct {
	*ecs.Scheduler
	Field *FieldSystem

	charge *ChargeSystem
	dash   *DashSystem
	rng    *rand.Rand
}

// NewPipeline wires the gameplay systems in frame order: commands first, then
// the field, then motion, then everything that reacts to positions.
func NewPipeline(policy field.Policy, rng *rand.Rand) *Pipeline {
	f := NewFieldSystem(policy, rng)
	charge := NewChargeSystem()
	dash := NewDashSystem()
	return &Pipeline{
		Scheduler: ecs.NewScheduler(
			charge,
			dash,
			f,
			NewPhysicsSystem(),
			NewLaserSystem(rng),
			NewScrollSystem(rng),
			NewHazardSystem(),
			NewRunSystem(),
		),
		Field:  f,
		charge: charge,
		dash:   dash,
		rng:    rng,
	}
}

// SetDebug turns per-change logging for charge, dash and field on or off.
func (p *Pipeline) SetDebug(on bool) {
	p.charge.Debug = on
	p.dash.Debug = on
	p.Field.Debug = on
}

// ResetRun starts a new run on w and rewinds the field policy, so a run
// replays the same fields whenever the rng is in the same state.
func (p *Pipeline) ResetRun(w *ecs.World) {
	ResetRun(w, p.rng)
	p.Field.ResetPolicy()
}
