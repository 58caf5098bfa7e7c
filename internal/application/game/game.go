// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/skyraid/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	focused  func() bool
	hadFocus bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current:  initialScene,
		screenW:  screenW,
		screenH:  screenH,
		dt:       1.0 / 60.0, // Default to 60 FPS
		focused:  ebiten.IsFocused,
		hadFocus: true,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// While the window is unfocused no ticks are delivered; losing focus
// pauses a scene that implements scene.Pauser.
func (g *Game) Update() error {
	if !g.focused() {
		if g.hadFocus {
			if p, ok := g.current.(scene.Pauser); ok {
				p.Pause()
			}
		}
		g.hadFocus = false
		return nil
	}
	g.hadFocus = true

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetFocusFunc replaces the window focus query
func (g *Game) SetFocusFunc(focused func() bool) {
	g.focused = focused
}
