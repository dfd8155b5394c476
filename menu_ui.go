package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const wrapColumns = 72

type menuButton struct {
	label   string
	onClick func()
}

var (
	uiWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiGold  = color.NRGBA{R: 0xf5, G: 0xd7, B: 0x6e, A: 0xff}
	uiDim   = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// newMenuUI builds a centered panel with a title, some text lines and a column
// of buttons. Buttons use colored nine-slices, so no theme fonts are needed.
func newMenuUI(g *Game, title string, lines []string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x5a, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: uiWhite}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(g.width)/2, int(g.height)/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, uiGold),
		widget.TextOpts.WidgetOpts(center),
	))
	for _, line := range lines {
		c := uiWhite
		if strings.HasPrefix(line, "?") {
			c = uiDim
		}
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, c),
			widget.TextOpts.WidgetOpts(center),
		))
	}

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func NewMainMenuUI(g *Game) *ebitenui.UI {
	lines := []string{
		"Ride the field to the exit. Lasers end the run.",
		"Q / E  charge down / up     Space  flip sign",
		"W A S D  dash (limited)     Esc  pause",
		"",
		fmt.Sprintf("Volume %d", g.volume),
	}
	return newMenuUI(g, "FIELDRUNNER", lines, []menuButton{
		{"Play", g.startRun},
		{"Scrolls", func() { g.setScene(sceneScrolls) }},
		{"Volume -", func() { g.setVolume(g.volume - 10); g.setScene(sceneMenu) }},
		{"Volume +", func() { g.setVolume(g.volume + 10); g.setScene(sceneMenu) }},
		{"Quit", func() { g.quit = true }},
	})
}

func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI(g, "Paused", nil, []menuButton{
		{"Resume", func() { g.setScene(scenePlaying) }},
		{"Restart", g.startRun},
		{"Scrolls", func() { g.setScene(sceneScrolls) }},
		{"Main menu", func() { g.setScene(sceneMenu) }},
	})
}

func NewResultUI(g *Game, won bool) *ebitenui.UI {
	title := "Run lost"
	if won {
		title = "You made it out"
	}

	var lines []string
	if run := g.runState(); run != nil {
		lines = append(lines,
			fmt.Sprintf("Distance %.0f / %.0f", run.Distance, run.RequiredDistance),
			fmt.Sprintf("Scrolls %d / %d", run.CollectedCount(), len(run.Collected)),
		)
		for _, id := range run.NewlyCollected {
			if id < len(g.specs.Scrolls.Scrolls) {
				lines = append(lines, "New: "+g.specs.Scrolls.Scrolls[id].Title)
			}
		}
	}

	return newMenuUI(g, title, lines, []menuButton{
		{"Run again", g.startRun},
		{"Scrolls", func() { g.setScene(sceneScrolls) }},
		{"Main menu", func() { g.setScene(sceneMenu) }},
	})
}

func NewScrollsUI(g *Game) *ebitenui.UI {
	var collected []bool
	if run := g.runState(); run != nil {
		collected = run.Collected
	}

	var lines []string
	for i, s := range g.specs.Scrolls.Scrolls {
		if i >= len(collected) || !collected[i] {
			lines = append(lines, fmt.Sprintf("? Scroll %d not found yet", i+1))
			continue
		}
		lines = append(lines, s.Title)
		lines = append(lines, wrap(s.Text, wrapColumns)...)
		lines = append(lines, "")
	}

	return newMenuUI(g, "Scrolls", lines, []menuButton{
		{"Back", func() { g.setScene(g.scrollsBack) }},
	})
}

// wrap splits text into lines no longer than width on word boundaries.
func wrap(s string, width int) []string {
	var out []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			out = append(out, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		out = append(out, line.String())
	}
	return out
}
