package entity

// PickupType identifies what a pickup grants
type PickupType int

const (
	PickupHealth PickupType = iota
	PickupShield
	PickupBomb
	PickupAttackBoost
	PickupFireRateBoost
	PickupMultiShot
)

var pickupNames = [...]string{
	PickupHealth:        "health",
	PickupShield:        "shield",
	PickupBomb:          "bomb",
	PickupAttackBoost:   "attackBoost",
	PickupFireRateBoost: "fireRateBoost",
	PickupMultiShot:     "multiShot",
}

func (t PickupType) String() string {
	if t < 0 || int(t) >= len(pickupNames) {
		return "unknown"
	}
	return pickupNames[t]
}

// ParsePickupType maps a config name back to its PickupType
func ParsePickupType(name string) (PickupType, bool) {
	for t, n := range pickupNames {
		if n == name {
			return PickupType(t), true
		}
	}
	return 0, false
}

// Boost returns the boost a pickup levels up, if any
func (t PickupType) Boost() (BoostType, bool) {
	switch t {
	case PickupAttackBoost:
		return BoostAttack, true
	case PickupFireRateBoost:
		return BoostFireRate, true
	case PickupMultiShot:
		return BoostMultiShot, true
	}
	return 0, false
}

// Pickup is a falling power-up
type Pickup struct {
	ID        EntityID
	Type      PickupType
	X, Y      float64 // center
	FallSpeed float64
	Size      float64
	Active    bool
}

// NewPickup creates a new pickup
func NewPickup(id EntityID, t PickupType, x, y, fallSpeed, size float64) *Pickup {
	return &Pickup{
		ID:        id,
		Type:      t,
		X:         x,
		Y:         y,
		FallSpeed: fallSpeed,
		Size:      size,
		Active:    true,
	}
}

// Update moves the pickup down
func (p *Pickup) Update(dt float64) {
	p.Y += p.FallSpeed * dt
}

// Deactivate removes the pickup from play
func (p *Pickup) Deactivate() {
	p.Active = false
}

// GetHitbox returns the hitbox in world coordinates
func (p *Pickup) GetHitbox() (x, y, w, h float64) {
	return centerBox(p.X, p.Y, p.Size, p.Size)
}
