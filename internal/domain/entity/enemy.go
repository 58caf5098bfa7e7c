package entity

import "math"

// hitFlashDuration is how long an enemy flashes after taking damage
const hitFlashDuration = 0.1

// EnemyStats holds the per-variant tuning copied onto each enemy at spawn
type EnemyStats struct {
	MaxHealth     int
	ContactDamage int
	Score         int

	// Movement
	Speed         float64
	SwayAmplitude float64
	SwayFrequency float64
	Lifetime      float64

	// Firing
	FireInterval  float64
	BulletSpeed   float64
	BulletDamage  int
	SpreadCount   int
	SpreadSpacing float64
	BarrelLength  float64

	// Hitbox
	Width  float64
	Height float64
}

// Enemy represents an enemy entity of any variant
type Enemy struct {
	ID     EntityID
	Kind   Kind
	X, Y   float64 // center
	Active bool

	MaxHealth     int
	Health        int
	ContactDamage int
	Score         int
	Stats         EnemyStats

	// State
	Age       float64
	FireTimer float64
	AimAngle  float64
	Dir       float64
	HitTimer  float64

	// Boss is non-nil only for the boss variant
	Boss *BossState

	// Shots holds projectiles this enemy fired that are still alive
	Shots []*Projectile
}

// NewEnemy creates a new enemy at full health
func NewEnemy(id EntityID, kind Kind, x, y float64, stats EnemyStats) *Enemy {
	return &Enemy{
		ID:            id,
		Kind:          kind,
		X:             x,
		Y:             y,
		Active:        true,
		MaxHealth:     stats.MaxHealth,
		Health:        stats.MaxHealth,
		ContactDamage: stats.ContactDamage,
		Score:         stats.Score,
		Stats:         stats,
		Dir:           1,
	}
}

// TakeDamage applies damage and performs the destruction transition at most once.
// Returns true only on the call that destroyed the enemy.
func (e *Enemy) TakeDamage(amount int, out *Events) bool {
	caps := e.Kind.Capabilities()
	if !e.Active || caps.Indestructible {
		return false
	}
	if amount > 0 {
		e.Health -= amount
		if e.Health < 0 {
			e.Health = 0
		}
		e.HitTimer = hitFlashDuration
	}

	if e.Health > 0 {
		if caps.PhaseHook && e.Boss != nil && e.Boss.Advance(e.HealthFraction()) {
			out.Add(BossPhaseChanged{Phase: e.Boss.Phase, Text: e.Boss.Current().Text})
		}
		return false
	}

	e.Active = false
	if caps.Scored {
		out.Add(EnemyDestroyed{ID: e.ID, Kind: e.Kind, Score: e.Score, X: e.X, Y: e.Y})
	}
	if e.Boss != nil {
		out.Add(BossDefeated{Name: e.Boss.Name})
	}
	return true
}

// Remove takes the enemy out of play without a combat death
func (e *Enemy) Remove() {
	e.Active = false
}

// IsAlive returns true if enemy is still in play
func (e *Enemy) IsAlive() bool {
	return e.Active && (e.Health > 0 || e.Kind.Capabilities().Indestructible)
}

// HealthFraction returns current health over max health
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// BarrelTip returns where an aimed shot leaves the barrel
func (e *Enemy) BarrelTip() (x, y float64) {
	return e.X + math.Cos(e.AimAngle)*e.Stats.BarrelLength, e.Y + math.Sin(e.AimAngle)*e.Stats.BarrelLength
}

// GetHitbox returns the hitbox in world coordinates
func (e *Enemy) GetHitbox() (x, y, w, h float64) {
	return centerBox(e.X, e.Y, e.Stats.Width, e.Stats.Height)
}

// AddShot records a projectile fired by this enemy
func (e *Enemy) AddShot(p *Projectile) {
	p.Owner = e.ID
	e.Shots = append(e.Shots, p)
}

// PruneShots drops dead projectiles from the enemy's own list
func (e *Enemy) PruneShots() {
	live := e.Shots[:0]
	for _, p := range e.Shots {
		if p.Active {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(e.Shots); i++ {
		e.Shots[i] = nil
	}
	e.Shots = live
}
