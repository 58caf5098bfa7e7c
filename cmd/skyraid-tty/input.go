package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/skyraid/internal/application/system"
)

// holdWindow is how long one key press keeps moving the player.
// Terminals report presses only, never releases.
const holdWindow = 0.15

// action is a non-movement command from the keyboard
type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionConfirm
)

// keyInput turns terminal key presses into intents
type keyInput struct {
	dx, dy float64
	hold   float64
	bomb   bool
}

// handle records a key event and reports any command it carries
func (k *keyInput) handle(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyEnter:
		return actionConfirm
	case tcell.KeyLeft:
		k.press(-1, 0)
	case tcell.KeyRight:
		k.press(1, 0)
	case tcell.KeyUp:
		k.press(0, -1)
	case tcell.KeyDown:
		k.press(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return actionQuit
		case 'p':
			return actionPause
		case 'r', 'z':
			return actionConfirm
		case ' ', 'b', 'x':
			k.bomb = true
		case 'a':
			k.press(-1, 0)
		case 'd':
			k.press(1, 0)
		case 'w':
			k.press(0, -1)
		case 's':
			k.press(0, 1)
		}
	}
	return actionNone
}

func (k *keyInput) press(dx, dy float64) {
	k.dx, k.dy = dx, dy
	k.hold = holdWindow
}

// intents returns this tick's intents and consumes the pending bomb
func (k *keyInput) intents(dt float64) []system.Intent {
	var out []system.Intent
	if k.bomb {
		out = append(out, system.BombIntent{})
		k.bomb = false
	}
	if k.hold > 0 {
		out = append(out, system.MoveIntent{DX: k.dx, DY: k.dy})
		k.hold -= dt
	}
	return out
}

// reset drops any held movement
func (k *keyInput) reset() {
	*k = keyInput{}
}
