package entity

import "math"

// PlayerStats holds the player's base tuning
type PlayerStats struct {
	MaxHealth    int
	Attack       int
	Defense      int
	Speed        float64
	Bombs        int
	FireInterval float64
	BulletSpeed  float64
	ShotSpacing  float64
	ShotWidth    float64
	ShotHeight   float64
	MaxShotScale float64
	Width        float64
	Height       float64
	// Margin keeps the player this far from the playfield edges
	Margin float64
}

// BoostTuning describes how boost levels translate into stats
type BoostTuning struct {
	Duration       float64
	AttackPerLevel int
	FireRateFactor float64
	MaxShots       int
}

// PickupRewards holds the flat amounts granted by resource pickups
type PickupRewards struct {
	Heal   int
	Shield int
	Bombs  int
}

// Player represents the player craft
type Player struct {
	ID     EntityID
	X, Y   float64 // center
	Active bool

	Health    int
	MaxHealth int
	Shield    int
	Defense   int
	Bombs     int

	Boosts Boosts

	// Timers
	FireTimer float64
	HitTimer  float64

	Stats   PlayerStats
	Tuning  BoostTuning
	Rewards PickupRewards
}

// NewPlayer creates a new player with full health
func NewPlayer(id EntityID, x, y float64, stats PlayerStats, tuning BoostTuning, rewards PickupRewards) *Player {
	return &Player{
		ID:        id,
		X:         x,
		Y:         y,
		Active:    true,
		Health:    stats.MaxHealth,
		MaxHealth: stats.MaxHealth,
		Defense:   stats.Defense,
		Bombs:     stats.Bombs,
		Stats:     stats,
		Tuning:    tuning,
		Rewards:   rewards,
	}
}

// TakeDamage drains the shield first, then applies the overflow minus defense to health.
// Returns true only on the call that defeated the player.
func (p *Player) TakeDamage(amount int, out *Events) bool {
	if !p.Active || amount <= 0 {
		return false
	}

	absorbed := 0
	if p.Shield > 0 {
		if amount <= p.Shield {
			p.Shield -= amount
			out.Add(PlayerHit{Absorbed: amount})
			return false
		}
		absorbed = p.Shield
		amount -= p.Shield
		p.Shield = 0
	}

	damage := amount - p.Defense
	if damage < 0 {
		damage = 0
	}
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
	if damage > 0 {
		p.HitTimer = hitFlashDuration
	}
	out.Add(PlayerHit{Damage: damage, Absorbed: absorbed})

	if p.Health > 0 {
		return false
	}
	p.Active = false
	p.Boosts.Reset()
	out.Add(PlayerDefeated{})
	return true
}

// IsAlive returns true if the player can still act
func (p *Player) IsAlive() bool {
	return p.Active && p.Health > 0
}

// Attack returns the current shot damage including the attack boost
func (p *Player) Attack() int {
	return p.Stats.Attack + p.Boosts.Attack.Level*p.Tuning.AttackPerLevel
}

// FireInterval returns seconds between volleys including the fire-rate boost
func (p *Player) FireInterval() float64 {
	return p.Stats.FireInterval / (1 + float64(p.Boosts.FireRate.Level)*p.Tuning.FireRateFactor)
}

// ShotCount returns the number of bullets per volley
func (p *Player) ShotCount() int {
	n := p.Boosts.MultiShot.Level + 1
	if p.Tuning.MaxShots > 0 && n > p.Tuning.MaxShots {
		n = p.Tuning.MaxShots
	}
	return n
}

// ShotSize scales bullet size with attack power, capped at MaxShotScale
func (p *Player) ShotSize() (w, h float64) {
	scale := 1 + float64(p.Attack()-p.Stats.Attack)*0.1
	if p.Stats.MaxShotScale > 0 {
		scale = math.Min(scale, p.Stats.MaxShotScale)
	}
	return p.Stats.ShotWidth * scale, p.Stats.ShotHeight * scale
}

// ReadyToFire advances the fire accumulator and reports whether a volley is due.
// Excess time is discarded when firing.
func (p *Player) ReadyToFire(dt float64) bool {
	if !p.Active {
		return false
	}
	p.FireTimer += dt
	if p.FireTimer < p.FireInterval() {
		return false
	}
	p.FireTimer = 0
	return true
}

// Move shifts the player by a direction scaled by speed and clamps it to the playfield
func (p *Player) Move(dx, dy, dt float64, field Playfield) {
	p.X += dx * p.Stats.Speed * dt
	p.Y += dy * p.Stats.Speed * dt
	p.X, p.Y = field.Clamp(p.X, p.Y, p.Stats.Margin)
}

// MoveTo places the player at a pointer position clamped to the playfield
func (p *Player) MoveTo(x, y float64, field Playfield) {
	p.X, p.Y = field.Clamp(x, y, p.Stats.Margin)
}

// UseBomb spends one bomb. Returns false when none are left.
func (p *Player) UseBomb(out *Events) bool {
	if !p.Active || p.Bombs <= 0 {
		return false
	}
	p.Bombs--
	out.Add(BombUsed{Remaining: p.Bombs})
	return true
}

// ApplyPickup grants a pickup's effect and emits the collection event
func (p *Player) ApplyPickup(t PickupType, out *Events) {
	switch t {
	case PickupHealth:
		p.Health += p.Rewards.Heal
		if p.Health > p.MaxHealth {
			p.Health = p.MaxHealth
		}
	case PickupShield:
		p.Shield += p.Rewards.Shield
	case PickupBomb:
		p.Bombs += p.Rewards.Bombs
	default:
		if b, ok := t.Boost(); ok {
			p.Boosts.Apply(b, p.Tuning.Duration)
		}
	}
	out.Add(PowerUpCollected{Type: t})
}

// UpdateTimers advances boosts and visual timers
func (p *Player) UpdateTimers(dt float64, out *Events) {
	if p.HitTimer > 0 {
		p.HitTimer -= dt
	}
	if !p.Active {
		return
	}
	p.Boosts.Tick(dt, p.Tuning.Duration, out)
}

// GetHitbox returns the hitbox in world coordinates
func (p *Player) GetHitbox() (x, y, w, h float64) {
	return centerBox(p.X, p.Y, p.Stats.Width, p.Stats.Height)
}
