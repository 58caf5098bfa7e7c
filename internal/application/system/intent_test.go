package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentTypes(t *testing.T) {
	intents := []Intent{
		MoveIntent{DX: 1, DY: -1},
		DragIntent{X: 100, Y: 200},
		BombIntent{},
	}

	for _, i := range intents {
		i.isIntent() // Should not panic
	}

	move := intents[0].(MoveIntent)
	assert.Equal(t, 1.0, move.DX)
	assert.Equal(t, -1.0, move.DY)
}
