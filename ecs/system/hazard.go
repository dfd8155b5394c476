package system

import (
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
)

// HazardSystem ends the run when the player touches a laser or is pushed
// above the arena by more than its own height.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil || !runActive(w) {
		return
	}
	e, player, ok := playerOf(w)
	if !ok {
		return
	}

	bb := player.Body.Bounds()
	hit := false
	ecs.ForEach2(w, component.LaserComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, l *component.Laser, t *component.Transform) {
		if !hit && LaserBounds(l, t).Intersects(bb) {
			hit = true
		}
	})

	if !hit && player.Body.Position.Y >= -2*player.Body.HalfHeight {
		return
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerHit, Entity: e})
	if run, ok := runStateOf(w); ok {
		run.Over = true
		run.Won = false
		w.Events().Push(ecs.Event{Kind: ecs.EventRunLost, Entity: e, Data: run.Distance})
	}
}
