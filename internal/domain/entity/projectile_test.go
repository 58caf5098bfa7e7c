package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProjectile(t *testing.T) {
	p := NewProjectile(SidePlayer, 100, 200, 0, -400, 10, 4, 8)

	assert.True(t, p.Active)
	assert.Equal(t, SidePlayer, p.Side)
	assert.Equal(t, 10, p.Damage)
	assert.Equal(t, -400.0, p.VY)
}

func TestProjectile_Update(t *testing.T) {
	p := NewProjectile(SideEnemy, 100, 100, 40, 300, 15, 6, 6)

	p.Update(0.5)

	assert.Equal(t, 120.0, p.X)
	assert.Equal(t, 250.0, p.Y)
}

func TestProjectile_OutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		side Side
		x, y float64
		want bool
	}{
		{"player shot on screen", SidePlayer, 100, 10, false},
		{"player shot above top", SidePlayer, 100, -20, true},
		{"player shot below bottom is still live", SidePlayer, 100, 700, false},
		{"enemy shot on screen", SideEnemy, 100, 300, false},
		{"enemy shot below bottom", SideEnemy, 100, 700, true},
		{"enemy shot above top", SideEnemy, 100, -40, true},
		{"enemy shot off left edge", SideEnemy, -40, 300, true},
		{"enemy shot inside margin", SideEnemy, -5, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(tt.side, tt.x, tt.y, 0, 0, 1, 4, 8)
			assert.Equal(t, tt.want, p.OutOfBounds(testField, 10))
		})
	}
}

func TestProjectile_GetHitbox(t *testing.T) {
	p := NewProjectile(SidePlayer, 100, 200, 0, 0, 1, 4, 8)

	x, y, w, h := p.GetHitbox()
	assert.Equal(t, 98.0, x)
	assert.Equal(t, 196.0, y)
	assert.Equal(t, 4.0, w)
	assert.Equal(t, 8.0, h)
}

func TestProjectile_Deactivate(t *testing.T) {
	p := NewProjectile(SidePlayer, 0, 0, 0, 0, 1, 4, 8)
	p.Deactivate()
	assert.False(t, p.Active)
}
