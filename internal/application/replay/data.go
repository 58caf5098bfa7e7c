// Package replay records the intents of a run and plays them back headlessly.
//
// A run is fully determined by its config, level, seed, tick length and the
// intents delivered on each tick, so a recording only stores those.
package replay

import (
	"github.com/younwookim/skyraid/internal/application/system"
)

// Version is written into every recording
const Version = "2.0"

// Frame records the intents of a single tick
type Frame struct {
	F    int     `json:"f"`              // Tick number
	DX   float64 `json:"dx,omitempty"`   // Move direction X
	DY   float64 `json:"dy,omitempty"`   // Move direction Y
	Drag bool    `json:"drag,omitempty"` // Pointer drag active
	X    float64 `json:"x,omitempty"`    // Drag target X
	Y    float64 `json:"y,omitempty"`    // Drag target Y
	Bomb bool    `json:"bomb,omitempty"` // Bomb requested
}

// Data contains all data needed to replay a run
type Data struct {
	Version   string  `json:"version"`
	Seed      int64   `json:"seed"`
	Level     int     `json:"level"`
	DT        float64 `json:"dt"`
	StartTime string  `json:"startTime"`
	Frames    []Frame `json:"frames"`
}

// NewFrame encodes the intents of tick f
func NewFrame(f int, intents []system.Intent) Frame {
	fr := Frame{F: f}
	for _, in := range intents {
		switch in := in.(type) {
		case system.MoveIntent:
			fr.DX, fr.DY = in.DX, in.DY
		case system.DragIntent:
			fr.Drag = true
			fr.X, fr.Y = in.X, in.Y
		case system.BombIntent:
			fr.Bomb = true
		}
	}
	return fr
}

// Intents decodes the frame in the order the input system produces them
func (fr Frame) Intents() []system.Intent {
	var out []system.Intent
	if fr.Bomb {
		out = append(out, system.BombIntent{})
	}
	if fr.Drag {
		out = append(out, system.DragIntent{X: fr.X, Y: fr.Y})
	}
	if fr.DX != 0 || fr.DY != 0 {
		out = append(out, system.MoveIntent{DX: fr.DX, DY: fr.DY})
	}
	return out
}
