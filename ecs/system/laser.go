package system

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"github.com/milk9111/fieldrunner/physics"
)

// LaserSystem spawns lasers from a random arena edge, moves them, and drops
// the ones that have fully left the arena.
type LaserSystem struct {
	Dt  float64
	rng *rand.Rand
}

func NewLaserSystem(rng *rand.Rand) *LaserSystem {
	return &LaserSystem{Dt: DefaultDt, rng: rng}
}

func (s *LaserSystem) Update(w *ecs.World) {
	if w == nil || !runActive(w) {
		return
	}
	dt := stepOr(s.Dt)
	arena, ok := arenaOf(w)
	if !ok {
		return
	}

	ecs.ForEach(w, component.LaserSpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.LaserSpawner) {
		sp.Timer += dt
		if sp.Timer < sp.Interval {
			return
		}
		sp.Timer = 0
		sp.Interval = uniformRange(s.rng, sp.MinInterval, sp.MaxInterval)

		laser := s.spawn(w, sp, arena)
		w.Events().Push(ecs.Event{Kind: ecs.EventLaserSpawned, Entity: laser})

		if f, ok := fieldOf(w); ok && s.rng.Float64() < f.LaserChance {
			f.Pending = true
		}
	})

	ecs.ForEach2(w, component.LaserComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, l *component.Laser, t *component.Transform) {
		t.X += l.Velocity.X * dt
		t.Y += l.Velocity.Y * dt
		if LaserBounds(l, t).Intersects(cp.BB{L: 0, B: 0, R: arena.Width, T: arena.Height}) {
			return
		}
		if movingAway(l, t, arena) {
			ecs.DestroyEntity(w, e)
		}
	})
}

// spawn places a laser just outside one edge, travelling across the arena.
func (s *LaserSystem) spawn(w *ecs.World, sp *component.LaserSpawner, arena physics.Arena) ecs.Entity {
	speed := sp.MinSpeed
	if sp.SpeedJitter > 0 {
		speed += float64(s.rng.IntN(sp.SpeedJitter))
	}

	l := &component.Laser{}
	t := &component.Transform{}
	half := sp.Length / 2

	switch s.rng.IntN(4) {
	case 0: // top
		l.Velocity = cp.Vector{Y: speed}
		l.Width, l.Height = sp.Thickness, sp.Length
		t.X, t.Y = s.rng.Float64()*arena.Width, -half
		t.Rotation = 90
	case 1: // bottom
		l.Velocity = cp.Vector{Y: -speed}
		l.Width, l.Height = sp.Thickness, sp.Length
		t.X, t.Y = s.rng.Float64()*arena.Width, arena.Height+half
		t.Rotation = -90
	case 2: // left
		l.Velocity = cp.Vector{X: speed}
		l.Width, l.Height = sp.Length, sp.Thickness
		t.X, t.Y = -half, s.rng.Float64()*arena.Height
	default: // right
		l.Velocity = cp.Vector{X: -speed}
		l.Width, l.Height = sp.Length, sp.Thickness
		t.X, t.Y = arena.Width+half, s.rng.Float64()*arena.Height
		t.Rotation = 180
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.LaserComponent.Kind(), l)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), t)
	return e
}

// LaserBounds is the axis-aligned box of a laser centred on its transform.
func LaserBounds(l *component.Laser, t *component.Transform) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, l.Width/2, l.Height/2)
}

// movingAway reports whether an off-screen laser can never come back. Fresh
// lasers spawn outside the arena and must not be culled before they enter.
func movingAway(l *component.Laser, t *component.Transform, arena physics.Arena) bool {
	bb := LaserBounds(l, t)
	switch {
	case bb.L > arena.Width:
		return l.Velocity.X >= 0
	case bb.R < 0:
		return l.Velocity.X <= 0
	case bb.B > arena.Height:
		return l.Velocity.Y >= 0
	case bb.T < 0:
		return l.Velocity.Y <= 0
	}
	return false
}

func uniformRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
