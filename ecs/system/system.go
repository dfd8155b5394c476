package system

import (
	"github.com/milk9111/fieldrunner/common"
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"github.com/milk9111/fieldrunner/physics"
)

// DefaultDt is the fixed step every system advances by; ebiten calls Update at
// common.TPS.
const DefaultDt = 1.0 / common.TPS

func stepOr(dt float64) float64 {
	if dt > 0 {
		return dt
	}
	return DefaultDt
}

func playerOf(w *ecs.World) (ecs.Entity, *component.Player, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || p.Body == nil {
		return 0, nil, false
	}
	return e, p, true
}

func arenaOf(w *ecs.World) (physics.Arena, bool) {
	e, ok := ecs.First(w, component.ArenaBoundsComponent.Kind())
	if !ok {
		return physics.Arena{}, false
	}
	a, ok := ecs.Get(w, e, component.ArenaBoundsComponent.Kind())
	if !ok {
		return physics.Arena{}, false
	}
	return physics.Arena{Width: a.Width, Height: a.Height}, true
}

func runStateOf(w *ecs.World) (*component.RunState, bool) {
	e, ok := ecs.First(w, component.RunStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.RunStateComponent.Kind())
}

func fieldOf(w *ecs.World) (*component.Field, bool) {
	e, ok := ecs.First(w, component.FieldComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.FieldComponent.Kind())
}

func inputOf(w *ecs.World) (*component.Input, bool) {
	e, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.InputComponent.Kind())
}

// runActive reports whether gameplay should advance this frame. Worlds without
// a RunState (tests, tools) always run.
func runActive(w *ecs.World) bool {
	run, ok := runStateOf(w)
	return !ok || !run.Over
}
