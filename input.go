package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fieldrunner/ecs/component"
)

const dashStickThreshold = 0.6

// readInput records this frame's one-shot commands. Keys pressed together in
// one frame combine into a diagonal dash.
func readInput(in *component.Input) {
	in.DecreaseCharge = in.DecreaseCharge || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	in.IncreaseCharge = in.IncreaseCharge || inpututil.IsKeyJustPressed(ebiten.KeyE)
	in.ToggleSign = in.ToggleSign || inpututil.IsKeyJustPressed(ebiten.KeySpace)

	var dir cp.Vector
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dir.X++
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		in.DecreaseCharge = in.DecreaseCharge || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
		in.IncreaseCharge = in.IncreaseCharge || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		in.ToggleSign = in.ToggleSign || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)

		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			dir.Y--
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			dir.Y++
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			dir.X--
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			dir.X++
		}

		// A right-stick flick dashes the way it points.
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightStick) {
			stick := cp.Vector{
				X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
				Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
			}
			if stick.Length() > dashStickThreshold {
				dir = dir.Add(stick)
			}
		}
	}

	if dir.X != 0 || dir.Y != 0 {
		in.DashPressed = true
		in.DashDir = dir
	}
}
