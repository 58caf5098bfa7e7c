// Package state tracks what the playing scene is currently doing.
package state

// GameState represents the current state of a run
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateLevelClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateLevelClear:
		return "LevelClear"
	default:
		return "Unknown"
	}
}

// Ticking reports whether the simulation advances in this state
func (s GameState) Ticking() bool {
	return s == StatePlaying
}

// Terminal reports whether the run has ended
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateLevelClear
}

// TogglePause flips between playing and paused. Other states are unchanged.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
