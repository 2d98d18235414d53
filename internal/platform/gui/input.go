package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/iced/internal/core"
)

// Key bindings per action. Movement is level-triggered, the rest edge-triggered.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput fills f from the keyboard state of the current tick.
func readInput(f *core.InputFrame) {
	f.Clear()
	if anyPressed(leftKeys) {
		f.Hold(core.ActionLeft)
	}
	if anyPressed(rightKeys) {
		f.Hold(core.ActionRight)
	}
	if anyJustPressed(jumpKeys) {
		f.Press(core.ActionJump)
	}
	if anyJustPressed(restartKeys) {
		f.Press(core.ActionRestart)
	}
	if anyJustPressed(quitKeys) {
		f.Press(core.ActionQuit)
	}
}
