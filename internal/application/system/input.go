package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// doubleTapWindow is the max gap between two presses that detonates a bomb
const doubleTapWindow = 0.3

// InputSystem turns raw keyboard and pointer state into intents
type InputSystem struct {
	clock   float64
	lastTap float64
	tapped  bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left         bool
	Right        bool
	Up           bool
	Down         bool
	Bomb         bool
	MouseX       int
	MouseY       int
	MouseDown    bool
	MousePressed bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:         ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:           ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:         ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Bomb:         inpututil.IsKeyJustPressed(ebiten.KeyB) || inpututil.IsKeyJustPressed(ebiten.KeyX),
		MouseX:       mx,
		MouseY:       my,
		MouseDown:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MousePressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// Intents converts one frame of input into player intents.
// Dragging wins over keys; a double tap detonates a bomb.
func (s *InputSystem) Intents(in InputState, dt float64) []Intent {
	s.clock += dt
	var intents []Intent

	if in.Bomb {
		intents = append(intents, BombIntent{})
	}

	if in.MousePressed {
		if s.tapped && s.clock-s.lastTap <= doubleTapWindow {
			intents = append(intents, BombIntent{})
			s.tapped = false
		} else {
			s.tapped = true
			s.lastTap = s.clock
		}
	}

	if in.MouseDown {
		intents = append(intents, DragIntent{X: float64(in.MouseX), Y: float64(in.MouseY)})
		return intents
	}

	move := MoveIntent{}
	if in.Left {
		move.DX--
	}
	if in.Right {
		move.DX++
	}
	if in.Up {
		move.DY--
	}
	if in.Down {
		move.DY++
	}
	if move.DX != 0 || move.DY != 0 {
		intents = append(intents, move)
	}
	return intents
}
