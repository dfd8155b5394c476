package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"github.com/milk9111/fieldrunner/physics"
	"github.com/milk9111/fieldrunner/prefabs"
)

func NewArena(w *ecs.World, arena physics.Arena) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ArenaBoundsComponent.Kind(), &component.ArenaBounds{Width: arena.Width, Height: arena.Height}); err != nil {
		return 0, fmt.Errorf("arena: %w", err)
	}
	return e, nil
}

// NewField creates the field singleton with a roll pending, so the first
// frame of a run picks a field.
func NewField(w *ecs.World, spec *prefabs.FieldSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("field: nil spec")
	}
	e := ecs.CreateEntity(w)
	err := ecs.Add(w, e, component.FieldComponent.Kind(), &component.Field{
		Interval:    spec.Interval,
		LaserChance: spec.LaserChance,
		Pending:     true,
	})
	if err != nil {
		return 0, fmt.Errorf("field: %w", err)
	}
	return e, nil
}

func NewSpawners(w *ecs.World, spec *prefabs.SpawnerSpec, rng *rand.Rand) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("spawner: nil spec")
	}
	e := ecs.CreateEntity(w)
	err := ecs.Add(w, e, component.LaserSpawnerComponent.Kind(), laserSpawner(spec.Laser))
	if err != nil {
		return 0, fmt.Errorf("spawner: laser: %w", err)
	}

	sc := scrollSpawner(spec.Scroll)
	if sc.FirstJitter > 0 && rng != nil {
		sc.Interval += float64(rng.IntN(sc.FirstJitter))
	}
	if err := ecs.Add(w, e, component.ScrollSpawnerComponent.Kind(), sc); err != nil {
		return 0, fmt.Errorf("spawner: scroll: %w", err)
	}
	return e, nil
}

// ApplySpawnerSpec retunes the spawners without touching their running timers.
func ApplySpawnerSpec(w *ecs.World, spec *prefabs.SpawnerSpec) {
	if spec == nil {
		return
	}
	ecs.ForEach(w, component.LaserSpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.LaserSpawner) {
		next := laserSpawner(spec.Laser)
		next.Timer, next.Interval = sp.Timer, sp.Interval
		*sp = *next
	})
	ecs.ForEach(w, component.ScrollSpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.ScrollSpawner) {
		next := scrollSpawner(spec.Scroll)
		next.Timer, next.Interval = sp.Timer, sp.Interval
		*sp = *next
	})
}

func laserSpawner(spec prefabs.LaserSpawnSpec) *component.LaserSpawner {
	return &component.LaserSpawner{
		Interval:      spec.FirstInterval,
		FirstInterval: spec.FirstInterval,
		MinInterval:   spec.MinInterval,
		MaxInterval:   spec.MaxInterval,
		MinSpeed:      spec.MinSpeed,
		SpeedJitter:   spec.SpeedJitter,
		Length:        spec.Length,
		Thickness:     spec.Thickness,
	}
}

func scrollSpawner(spec prefabs.ScrollSpawnSpec) *component.ScrollSpawner {
	return &component.ScrollSpawner{
		Interval:      spec.FirstInterval,
		FirstInterval: spec.FirstInterval,
		FirstJitter:   spec.FirstJitter,
		MinInterval:   spec.MinInterval,
		MaxInterval:   spec.MaxInterval,
		MaxOnScreen:   spec.MaxOnScreen,
		Size:          spec.Size,
		Margin:        spec.Margin,
	}
}

// NewRunState creates the run singleton with room for scrollCount scrolls.
func NewRunState(w *ecs.World, spec *prefabs.RunSpec, scrollCount int) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("run: nil spec")
	}
	e := ecs.CreateEntity(w)
	err := ecs.Add(w, e, component.RunStateComponent.Kind(), &component.RunState{
		RequiredDistance: spec.RequiredDistance,
		ScrollSpeed:      spec.ScrollSpeed,
		DistanceScale:    spec.DistanceScale,
		Collected:        make([]bool, scrollCount),
	})
	if err != nil {
		return 0, fmt.Errorf("run: %w", err)
	}
	return e, nil
}

// ApplyRunSpec retunes the run and resizes the arena in place. Distance,
// outcome and collected scrolls are kept.
func ApplyRunSpec(w *ecs.World, spec *prefabs.RunSpec) bool {
	if spec == nil {
		return false
	}
	applied := false
	ecs.ForEach(w, component.RunStateComponent.Kind(), func(_ ecs.Entity, run *component.RunState) {
		run.RequiredDistance = spec.RequiredDistance
		run.ScrollSpeed = spec.ScrollSpeed
		run.DistanceScale = spec.DistanceScale
		applied = true
	})
	ecs.ForEach(w, component.ArenaBoundsComponent.Kind(), func(_ ecs.Entity, a *component.ArenaBounds) {
		a.Width, a.Height = spec.Width, spec.Height
	})
	return applied
}

// BuildWorld creates every singleton and the player for a fresh run.
func BuildWorld(specs *Specs, rng *rand.Rand) (*ecs.World, error) {
	if specs == nil || specs.Run == nil || specs.Scrolls == nil {
		return nil, fmt.Errorf("build world: incomplete specs")
	}
	w := ecs.NewWorld()
	arena := physics.Arena{Width: specs.Run.Width, Height: specs.Run.Height}

	if _, err := NewArena(w, arena); err != nil {
		return nil, err
	}
	if _, err := NewPlayer(w, specs.Player, arena); err != nil {
		return nil, err
	}
	if _, err := NewField(w, specs.Field); err != nil {
		return nil, err
	}
	if _, err := NewSpawners(w, specs.Spawner, rng); err != nil {
		return nil, err
	}
	if _, err := NewRunState(w, specs.Run, len(specs.Scrolls.Scrolls)); err != nil {
		return nil, err
	}
	return w, nil
}
