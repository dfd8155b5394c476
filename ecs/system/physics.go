package system

import (
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/physics"
)

// PhysicsSystem integrates the player through the current field and resolves
// arena contacts in the same step.
type PhysicsSystem struct {
	Dt float64
}

func NewPhysicsSystem() *PhysicsSystem { return &PhysicsSystem{Dt: DefaultDt} }

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || !runActive(w) {
		return
	}

	e, player, ok := playerOf(w)
	if !ok {
		return
	}

	var state physics.FieldState
	if f, ok := fieldOf(w); ok {
		state = f.State
	}

	player.Integrator.Step(player.Body, state, stepOr(s.Dt))

	arena, ok := arenaOf(w)
	if !ok {
		return
	}
	if contact := player.Resolver.Resolve(player.Body, arena); contact != 0 {
		w.Events().Push(ecs.Event{Kind: ecs.EventWallBounce, Entity: e, Data: contact})
	}
}
