package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fieldrunner/common"
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"github.com/milk9111/fieldrunner/ecs/entity"
	"github.com/milk9111/fieldrunner/ecs/system"
	"github.com/milk9111/fieldrunner/field"
)

type result struct {
	won      bool
	distance float64
	frames   int
	scrolls  int
	dashes   int
}

func main() {
	runs := flag.Int("runs", 20, "number of runs to simulate")
	seed := flag.Uint64("seed", 1, "seed of the first run; run i uses seed+i")
	maxSeconds := flag.Float64("seconds", 120, "give up on a run after this many simulated seconds")
	autopilot := flag.Bool("autopilot", true, "dash away from nearby lasers")
	flag.Parse()

	specs, err := entity.LoadSpecs()
	if err != nil {
		log.Fatal(err)
	}

	var wins, scrolls int
	var distance float64
	for i := 0; i < *runs; i++ {
		res, err := simulate(specs, *seed+uint64(i), int(*maxSeconds*common.TPS), *autopilot)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("run %d: won=%v distance=%.1f time=%.1fs scrolls=%d dashes=%d",
			i, res.won, res.distance, float64(res.frames)/common.TPS, res.scrolls, res.dashes)
		if res.won {
			wins++
		}
		distance += res.distance
		scrolls += res.scrolls
	}

	if *runs > 0 {
		log.Printf("summary: %d/%d won, mean distance %.1f, %d scrolls found",
			wins, *runs, distance/float64(*runs), scrolls)
	}
}

// simulate plays one run. Each run gets its own policy and rng so a seed gives
// the same run no matter which runs came before it.
func simulate(specs *entity.Specs, seed uint64, maxFrames int, autopilot bool) (result, error) {
	policy, err := field.NewPolicy(specs.Field)
	if err != nil {
		return result{}, err
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	w, err := entity.BuildWorld(specs, rng)
	if err != nil {
		return result{}, err
	}
	pipeline := system.NewPipeline(policy, rng)

	var res result
	for res.frames = 0; res.frames < maxFrames; res.frames++ {
		if autopilot {
			steer(w)
		}
		pipeline.Update(w)
		res.dashes += len(eventsOf(w, ecs.EventDashed))

		e, _ := ecs.First(w, component.RunStateComponent.Kind())
		run, ok := ecs.Get(w, e, component.RunStateComponent.Kind())
		if !ok {
			break
		}
		res.distance = run.Distance
		res.scrolls = run.CollectedCount()
		if run.Over {
			res.won = run.Won
			break
		}
	}
	return res, nil
}

// steer dashes perpendicular to the closest laser heading for the player.
func steer(w *ecs.World) {
	pe, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	player, _ := ecs.Get(w, pe, component.PlayerComponent.Kind())
	in, ok := ecs.Get(w, pe, component.InputComponent.Kind())
	if !ok || player.Body.DashCharges() == 0 {
		return
	}

	const danger = 90.0
	pos := player.Body.Position
	ecs.ForEach2(w, component.LaserComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, l *component.Laser, t *component.Transform) {
		if in.DashPressed {
			return
		}
		gap := cp.Vector{X: pos.X - t.X, Y: pos.Y - t.Y}
		if l.Velocity.Dot(gap) <= 0 {
			return
		}
		reach := system.LaserBounds(l, t)
		reach.L -= danger
		reach.B -= danger
		reach.R += danger
		reach.T += danger
		if !reach.Intersects(player.Body.Bounds()) {
			return
		}
		in.DashPressed = true
		if l.Velocity.X != 0 {
			in.DashDir = cp.Vector{Y: sign(gap.Y)}
		} else {
			in.DashDir = cp.Vector{X: sign(gap.X)}
		}
	})
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func eventsOf(w *ecs.World, kind ecs.EventKind) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Events() {
		if evt.Kind == kind {
			out = append(out, evt)
		}
	}
	return out
}
