package system

import (
	"log"

	"github.com/milk9111/fieldrunner/ecs"
)

// RunSystem advances the distance counter and declares the run won once the
// required distance is covered.
type RunSystem struct {
	Dt float64
}

func NewRunSystem() *RunSystem { return &RunSystem{Dt: DefaultDt} }

func (s *RunSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	run, ok := runStateOf(w)
	if !ok || run.Over {
		return
	}

	run.Distance += run.ScrollSpeed * stepOr(s.Dt) * run.DistanceScale
	if run.RequiredDistance > 0 && run.Distance >= run.RequiredDistance {
		run.Over = true
		run.Won = true
		log.Printf("run: won at distance %.1f with %d scrolls", run.Distance, run.CollectedCount())
		w.Events().Push(ecs.Event{Kind: ecs.EventRunWon, Data: run.Distance})
	}
}
