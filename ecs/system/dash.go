package system

import (
	"log"

	"github.com/milk9111/fieldrunner/ecs"
)

// DashSystem spends a dash charge when Input asks for one and clamps the body
// back into the arena straight away, so a dash never leaves it outside for a
// frame.
type DashSystem struct {
	Debug bool
}

func NewDashSystem() *DashSystem { return &DashSystem{} }

func (s *DashSystem) Update(w *ecs.World) {
	if w == nil || !runActive(w) {
		return
	}

	in, ok := inputOf(w)
	if !ok || !in.DashPressed {
		return
	}
	dir := in.DashDir
	in.DashPressed = false

	e, player, ok := playerOf(w)
	if !ok {
		return
	}
	if !player.Body.Dash(dir) {
		return
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventDashed, Entity: e, Data: dir})

	if arena, ok := arenaOf(w); ok {
		player.Resolver.Resolve(player.Body, arena)
	}
	if s.Debug {
		log.Printf("dash: dir=(%.0f,%.0f) to (%.1f,%.1f), %d left",
			dir.X, dir.Y, player.Body.Position.X, player.Body.Position.Y, player.Body.DashCharges())
	}
}
