package system

import (
	"log"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
)

// ScrollSystem spawns uncollected scrolls off the right edge, drifts them left
// with the background and collects them on contact with the player.
type ScrollSystem struct {
	Dt  float64
	rng *rand.Rand
}

func NewScrollSystem(rng *rand.Rand) *ScrollSystem {
	return &ScrollSystem{Dt: DefaultDt, rng: rng}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if w == nil || !runActive(w) {
		return
	}
	run, ok := runStateOf(w)
	if !ok {
		return
	}
	arena, ok := arenaOf(w)
	if !ok {
		return
	}
	dt := stepOr(s.Dt)

	inScene := make(map[int]bool)
	ecs.ForEach(w, component.ScrollComponent.Kind(), func(_ ecs.Entity, sc *component.Scroll) {
		inScene[sc.ID] = true
	})

	ecs.ForEach(w, component.ScrollSpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.ScrollSpawner) {
		sp.Timer += dt
		if len(inScene) >= sp.MaxOnScreen || run.CollectedCount() >= len(run.Collected) {
			return
		}
		if sp.Timer < sp.Interval {
			return
		}

		var available []int
		for id, collected := range run.Collected {
			if !collected && !inScene[id] {
				available = append(available, id)
			}
		}
		if len(available) == 0 {
			return
		}

		sp.Timer = 0
		sp.Interval = uniformRange(s.rng, sp.MinInterval, sp.MaxInterval)

		id := available[s.rng.IntN(len(available))]
		y := sp.Margin
		if span := int(arena.Height - 2*sp.Margin); span > 0 {
			y += float64(s.rng.IntN(span))
		}
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.ScrollComponent.Kind(), &component.Scroll{ID: id, Size: sp.Size})
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: arena.Width + sp.Margin, Y: y})
		inScene[id] = true
		log.Printf("scroll: spawned %d", id)
		w.Events().Push(ecs.Event{Kind: ecs.EventScrollSpawned, Entity: e, Data: id})
	})

	var playerBB cp.BB
	_, player, hasPlayer := playerOf(w)
	if hasPlayer {
		playerBB = player.Body.Bounds()
	}

	ecs.ForEach2(w, component.ScrollComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sc *component.Scroll, t *component.Transform) {
		t.X -= run.ScrollSpeed * dt
		bb := ScrollBounds(sc, t)

		if hasPlayer && bb.Intersects(playerBB) {
			if run.Collect(sc.ID) {
				w.Events().Push(ecs.Event{Kind: ecs.EventScrollPickedUp, Entity: e, Data: sc.ID})
			}
			ecs.DestroyEntity(w, e)
			return
		}
		if bb.R < 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}

func ScrollBounds(sc *component.Scroll, t *component.Transform) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, sc.Size/2, sc.Size/2)
}
