package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"github.com/milk9111/fieldrunner/field"
	"golang.org/x/image/colornames"
)

const (
	gridSpacing = 80
	arrowHead   = 10
)

var (
	backgroundColor = color.RGBA{R: 0x0b, G: 0x0e, B: 0x1a, A: 0xff}
	gridColor       = color.RGBA{R: 0x1c, G: 0x24, B: 0x3a, A: 0xff}
	fieldOutColor   = color.RGBA{R: 255, G: 100, B: 100, A: 180}
	fieldInColor    = color.RGBA{R: 180, G: 50, B: 50, A: 180}
	electricColor   = colornames.Cyan
)

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawBackground(screen)
	g.drawField(screen)

	ecs.ForEach2(g.world, component.ScrollComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, sc *component.Scroll, t *component.Transform) {
		g.drawScroll(screen, sc, t)
	})
	ecs.ForEach2(g.world, component.LaserComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, l *component.Laser, t *component.Transform) {
		g.drawLaser(screen, l, t)
	})

	if e, ok := ecs.First(g.world, component.PlayerComponent.Kind()); ok {
		if p, ok := ecs.Get(g.world, e, component.PlayerComponent.Kind()); ok {
			g.drawPlayer(screen, p)
		}
	}
}

// drawBackground scrolls a grid left at the run's scroll speed.
func (g *Game) drawBackground(screen *ebiten.Image) {
	off := math.Mod(g.bgOffset, gridSpacing)
	for x := -off; x < g.width; x += gridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(g.height), 1, gridColor, false)
	}
	for y := 0.0; y < g.height; y += gridSpacing {
		vector.StrokeLine(screen, 0, float32(y), float32(g.width), float32(y), 1, gridColor, false)
	}
}

func (g *Game) drawField(screen *ebiten.Image) {
	e, ok := ecs.First(g.world, component.FieldComponent.Kind())
	if !ok {
		return
	}
	f, ok := ecs.Get(g.world, e, component.FieldComponent.Kind())
	if !ok {
		return
	}

	for _, s := range field.MagneticSymbols(f.State.MagneticZ, g.width, g.height) {
		x, y := float32(s.X), float32(s.Y)
		if s.Out {
			vector.FillCircle(screen, x, y, 4, fieldOutColor, true)
			vector.StrokeCircle(screen, x, y, 10, 1.5, fieldOutColor, true)
			continue
		}
		vector.StrokeLine(screen, x-8, y-8, x+8, y+8, 2, fieldInColor, true)
		vector.StrokeLine(screen, x-8, y+8, x+8, y-8, 2, fieldInColor, true)
	}

	for _, a := range field.ElectricArrows(f.State.Electric, g.width, g.height) {
		vector.StrokeLine(screen, float32(a.From.X), float32(a.From.Y), float32(a.To.X), float32(a.To.Y), 1, electricColor, true)

		dir := a.To.Sub(a.From).Normalize()
		back := a.To.Sub(dir.Mult(arrowHead))
		side := dir.Perp().Mult(arrowHead / 2)
		for _, tip := range []float64{1, -1} {
			wing := back.Add(side.Mult(tip))
			vector.StrokeLine(screen, float32(a.To.X), float32(a.To.Y), float32(wing.X), float32(wing.Y), 2, electricColor, true)
		}
	}
}

func (g *Game) drawLaser(screen *ebiten.Image, l *component.Laser, t *component.Transform) {
	c := g.specs.Spawner.Laser.Color.Or(colornames.Red)
	r, gg, b, _ := c.RGBA()
	glow := color.RGBA{R: uint8(r >> 8), G: uint8(gg >> 8), B: uint8(b >> 8), A: 70}

	x := float32(t.X - l.Width/2)
	y := float32(t.Y - l.Height/2)
	vector.FillRect(screen, x-3, y-3, float32(l.Width)+6, float32(l.Height)+6, glow, false)
	vector.FillRect(screen, x, y, float32(l.Width), float32(l.Height), c, false)
}

func (g *Game) drawScroll(screen *ebiten.Image, sc *component.Scroll, t *component.Transform) {
	img := g.lib.Scroll
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(sc.Size/float64(w), sc.Size/float64(h))
	// gentle bob so scrolls read as pickups
	op.GeoM.Translate(t.X, t.Y+3*math.Sin(float64(g.frames)/15))
	op.ColorScale.ScaleWithColor(g.specs.Spawner.Scroll.Color.Or(colornames.White))
	screen.DrawImage(img, op)
}

func (g *Game) drawPlayer(screen *ebiten.Image, p *component.Player) {
	b := p.Body
	img := g.lib.ParticleNeutral
	switch q := b.Charge(); {
	case q > 0:
		img = g.lib.ParticlePositive
	case q < 0:
		img = g.lib.ParticleNegative
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(2*b.HalfWidth/float64(w), 2*b.HalfHeight/float64(h))
	op.GeoM.Translate(b.Position.X, b.Position.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)

	// outline in the player's prefab colour, thicker with more charge
	c := g.specs.Player.Color.Or(colornames.White)
	stroke := 1 + float32(math.Abs(b.Charge())/b.ChargeLimits.Max)*4
	vector.StrokeCircle(screen, float32(b.Position.X), float32(b.Position.Y), float32(b.HalfWidth)+2, stroke, c, true)
}
