package system

// Intent represents an action the player wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent is a 4-directional movement request.
// DX and DY are -1, 0 or 1; diagonals are normalized when applied.
type MoveIntent struct {
	DX, DY float64
}

func (MoveIntent) isIntent() {}

// DragIntent moves the player to a pointer position
type DragIntent struct {
	X, Y float64
}

func (DragIntent) isIntent() {}

// BombIntent requests detonating one bomb
type BombIntent struct{}

func (BombIntent) isIntent() {}
