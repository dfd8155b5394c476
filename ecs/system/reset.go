package system

import (
	"math/rand/v2"

	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
)

// ResetRun puts the world back to the start of a run. Collected scrolls are
// kept; everything else (player, hazards, timers, distance) starts over and a
// fresh field is rolled on the next frame.
func ResetRun(w *ecs.World, rng *rand.Rand) {
	if w == nil {
		return
	}

	for _, e := range ecs.Query(w, component.LaserComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
	for _, e := range ecs.Query(w, component.ScrollComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}

	arena, _ := arenaOf(w)
	if _, player, ok := playerOf(w); ok {
		b := player.Body
		b.Position.X = arena.Width * player.StartX
		b.Position.Y = arena.Height * player.StartY
		b.Velocity = player.StartVelocity
		b.SetCharge(player.StartCharge)
		b.ResetDashCharges()
	}

	if in, ok := inputOf(w); ok {
		*in = component.Input{}
	}

	if f, ok := fieldOf(w); ok {
		f.Timer = 0
		f.Pending = true
	}

	ecs.ForEach(w, component.LaserSpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.LaserSpawner) {
		sp.Timer = 0
		sp.Interval = sp.FirstInterval
	})
	ecs.ForEach(w, component.ScrollSpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.ScrollSpawner) {
		sp.Timer = 0
		sp.Interval = sp.FirstInterval
		if sp.FirstJitter > 0 && rng != nil {
			sp.Interval += float64(rng.IntN(sp.FirstJitter))
		}
	})

	if run, ok := runStateOf(w); ok {
		run.Distance = 0
		run.Over = false
		run.Won = false
		run.NewlyCollected = nil
	}
}
