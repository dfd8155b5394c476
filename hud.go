package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

const (
	hudPadding = 16
	hudLine    = 26
	hudScale   = 1.5
)

func drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, hudFace, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	pe, ok := ecs.First(g.world, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(g.world, pe, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	run := g.runState()
	if run == nil {
		return
	}

	y := float64(hudPadding)
	drawText(screen, fmt.Sprintf("Charge  %+.1f", p.Body.Charge()), hudPadding, y, hudScale, colornames.White)
	y += hudLine
	drawText(screen, fmt.Sprintf("Dashes  %d/%d", p.Body.DashCharges(), p.Body.DashLimits.MaxCharges), hudPadding, y, hudScale, colornames.White)
	y += hudLine
	drawText(screen, fmt.Sprintf("Scrolls %d/%d", run.CollectedCount(), len(run.Collected)), hudPadding, y, hudScale, colornames.Wheat)

	// distance bar along the top right
	const barW, barH = 300, 12
	bx := float32(g.width - hudPadding - barW)
	by := float32(hudPadding)
	progress := 0.0
	if run.RequiredDistance > 0 {
		progress = min(1, run.Distance/run.RequiredDistance)
	}
	vector.StrokeRect(screen, bx, by, barW, barH, 1, colornames.White, false)
	vector.FillRect(screen, bx, by, float32(progress)*barW, barH, colornames.Limegreen, false)
	drawText(screen, fmt.Sprintf("%.0f / %.0f", run.Distance, run.RequiredDistance), float64(bx), float64(by)+barH+6, 1, colornames.White)

	if fe, ok := ecs.First(g.world, component.FieldComponent.Kind()); ok {
		if f, ok := ecs.Get(g.world, fe, component.FieldComponent.Kind()); ok {
			s := fmt.Sprintf("E (%.1f, %.1f)  Bz %.2f", f.State.Electric.X, f.State.Electric.Y, f.State.MagneticZ)
			drawText(screen, s, hudPadding, g.height-hudPadding-20, 1, colornames.Lightgray)
		}
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f    Entities: %d    Scene: %s",
		g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(), len(ecs.Entities(g.world)), g.scene)
	if e, ok := ecs.First(g.world, component.PlayerComponent.Kind()); ok {
		if p, ok := ecs.Get(g.world, e, component.PlayerComponent.Kind()); ok {
			msg += fmt.Sprintf("\npos (%.1f, %.1f)  vel (%.1f, %.1f)  |v| %.1f",
				p.Body.Position.X, p.Body.Position.Y, p.Body.Velocity.X, p.Body.Velocity.Y, p.Body.Speed())
			bb := p.Body.Bounds()
			vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, colornames.Yellow, false)
		}
	}
	ebitenutil.DebugPrintAt(screen, msg, hudPadding, int(g.height)-60)
}
