package system

import (
	"log"

	"github.com/milk9111/fieldrunner/ecs"
)

// ChargeSystem applies the charge commands from Input to the player body.
// Debug logs every change.
type ChargeSystem struct {
	Debug bool
}

func NewChargeSystem() *ChargeSystem { return &ChargeSystem{} }

func (s *ChargeSystem) Update(w *ecs.World) {
	if w == nil || !runActive(w) {
		return
	}

	in, ok := inputOf(w)
	if !ok {
		return
	}
	e, player, ok := playerOf(w)
	if !ok {
		return
	}

	before := player.Body.Charge()
	if in.DecreaseCharge {
		player.Body.DecreaseCharge()
	}
	if in.IncreaseCharge {
		player.Body.IncreaseCharge()
	}
	if in.ToggleSign {
		player.Body.ToggleChargeSign()
	}
	in.IncreaseCharge, in.DecreaseCharge, in.ToggleSign = false, false, false

	if after := player.Body.Charge(); after != before {
		if s.Debug {
			log.Printf("charge: %.1f -> %.1f", before, after)
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventChargeChanged, Entity: e, Data: after})
	}
}
