package entity

// Side tells which team fired a projectile
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Projectile represents a bullet fired by the player or an enemy
type Projectile struct {
	ID     EntityID
	Owner  EntityID
	Side   Side
	X, Y   float64 // center
	VX, VY float64
	Damage int
	Active bool

	// Hitbox
	Width  float64
	Height float64
}

// NewProjectile creates an active projectile
func NewProjectile(side Side, x, y, vx, vy float64, damage int, w, h float64) *Projectile {
	return &Projectile{
		Side:   side,
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Damage: damage,
		Active: true,
		Width:  w,
		Height: h,
	}
}

// Update moves the projectile along its velocity
func (p *Projectile) Update(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// OutOfBounds reports whether the projectile has left the playfield.
// Player shots only travel upward so they expire past the top edge;
// enemy shots can travel in any direction.
func (p *Projectile) OutOfBounds(field Playfield, margin float64) bool {
	if p.Side == SidePlayer {
		return p.Y+p.Height/2 < -margin
	}
	return !field.Contains(p.X, p.Y, margin)
}

// Deactivate removes the projectile from play
func (p *Projectile) Deactivate() {
	p.Active = false
}

// GetHitbox returns the hitbox in world coordinates
func (p *Projectile) GetHitbox() (x, y, w, h float64) {
	return centerBox(p.X, p.Y, p.Width, p.Height)
}
