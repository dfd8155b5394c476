package system

import (
	"log"
	"math/rand/v2"

	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"github.com/milk9111/fieldrunner/field"
)

// FieldSystem re-rolls the arena field when a roll is pending or the periodic
// timer expires. A failing policy keeps the previous field. Debug logs every
// new field.
type FieldSystem struct {
	Dt     float64
	Debug  bool
	policy field.Policy
	rng    *rand.Rand
}

func NewFieldSystem(policy field.Policy, rng *rand.Rand) *FieldSystem {
	return &FieldSystem{Dt: DefaultDt, policy: policy, rng: rng}
}

// SetPolicy swaps the policy, e.g. after a script reload. The next roll uses it.
func (s *FieldSystem) SetPolicy(policy field.Policy) {
	if policy != nil {
		s.policy = policy
	}
}

// ResetPolicy rewinds a stateful policy to its first roll.
func (s *FieldSystem) ResetPolicy() {
	field.Reset(s.policy)
}

func (s *FieldSystem) Update(w *ecs.World) {
	if w == nil || s.policy == nil || !runActive(w) {
		return
	}

	e, ok := ecs.First(w, component.FieldComponent.Kind())
	if !ok {
		return
	}
	f, ok := ecs.Get(w, e, component.FieldComponent.Kind())
	if !ok {
		return
	}

	if f.Interval > 0 {
		f.Timer += stepOr(s.Dt)
		if f.Timer >= f.Interval {
			f.Timer = 0
			f.Pending = true
		}
	}
	if !f.Pending {
		return
	}
	f.Pending = false

	next, err := s.policy.Next(s.rng)
	if err != nil {
		log.Printf("field: roll %d failed, keeping previous field: %v", f.Rolls, err)
		return
	}
	f.State = next
	f.Rolls++
	if s.Debug {
		log.Printf("field: E=(%.2f,%.2f) Bz=%.2f", next.Electric.X, next.Electric.Y, next.MagneticZ)
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventFieldChanged, Entity: e, Data: next})
}
