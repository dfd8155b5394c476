package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"github.com/milk9111/fieldrunner/physics"
	"github.com/milk9111/fieldrunner/prefabs"
)

func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, arena physics.Arena) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	pos := cp.Vector{X: arena.Width * spec.Start.XFraction, Y: arena.Height * spec.Start.YFraction}
	body := physics.NewKinematicBody(pos, spec.Width/2, spec.Height/2,
		physics.ChargeLimits{Max: spec.Charge.Max, MinMagnitude: spec.Charge.MinMagnitude, Step: spec.Charge.Step},
		physics.DashLimits{MaxCharges: spec.Dash.MaxCharges, Distance: spec.Dash.Distance},
	)
	body.Velocity = cp.Vector{X: spec.Start.VX, Y: spec.Start.VY}
	body.SetCharge(spec.Charge.Start)

	e := ecs.CreateEntity(w)
	err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Body:          body,
		Integrator:    physics.Integrator{Mass: spec.Mass, MaxSpeed: spec.MaxSpeed, Damping: spec.Damping},
		Resolver:      physics.BoundaryResolver{Restitution: spec.Restitution},
		StartX:        spec.Start.XFraction,
		StartY:        spec.Start.YFraction,
		StartVelocity: body.Velocity,
		StartCharge:   spec.Charge.Start,
	})
	if err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return e, nil
}

// ApplyPlayerSpec retunes an existing player in place, e.g. after a prefab
// reload. Position and velocity are left alone; charge and dash charges are
// only clamped into the new limits.
func ApplyPlayerSpec(w *ecs.World, spec *prefabs.PlayerSpec) bool {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok || spec == nil {
		return false
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || p.Body == nil {
		return false
	}

	p.Body.HalfWidth, p.Body.HalfHeight = spec.Width/2, spec.Height/2
	p.Body.ChargeLimits = physics.ChargeLimits{Max: spec.Charge.Max, MinMagnitude: spec.Charge.MinMagnitude, Step: spec.Charge.Step}
	p.Body.SetDashLimits(physics.DashLimits{MaxCharges: spec.Dash.MaxCharges, Distance: spec.Dash.Distance})
	p.Body.SetCharge(p.Body.Charge())
	p.Integrator = physics.Integrator{Mass: spec.Mass, MaxSpeed: spec.MaxSpeed, Damping: spec.Damping}
	p.Resolver = physics.BoundaryResolver{Restitution: spec.Restitution}
	p.StartX, p.StartY = spec.Start.XFraction, spec.Start.YFraction
	p.StartVelocity = cp.Vector{X: spec.Start.VX, Y: spec.Start.VY}
	p.StartCharge = spec.Charge.Start
	return true
}
