package system

import (
	"math"

	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/ecs"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// AttackSystem runs fire accumulators and produces volleys
type AttackSystem struct {
	bulletSize float64
}

// NewAttackSystem creates a new attack system
func NewAttackSystem(cfg *config.EntitiesConfig) *AttackSystem {
	return &AttackSystem{
		bulletSize: cfg.EnemyBullet.Size,
	}
}

// Update advances the player's auto-fire and every live enemy's attack pattern
func (s *AttackSystem) Update(w *ecs.World, dt float64) {
	if p := w.Player; p != nil && p.ReadyToFire(dt) {
		s.firePlayer(w, p)
	}

	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		s.updateEnemy(w, e, dt)
	}
}

// firePlayer spawns one volley of parallel shots centered on the player
func (s *AttackSystem) firePlayer(w *ecs.World, p *entity.Player) {
	n := p.ShotCount()
	width, height := p.ShotSize()
	damage := p.Attack()
	spacing := p.Stats.ShotSpacing
	start := p.X - float64(n-1)*spacing/2
	y := p.Y - p.Stats.Height/2

	for i := 0; i < n; i++ {
		shot := entity.NewProjectile(entity.SidePlayer, start+float64(i)*spacing, y, 0, -p.Stats.BulletSpeed, damage, width, height)
		w.AddPlayerShot(shot)
	}
}

func (s *AttackSystem) updateEnemy(w *ecs.World, e *entity.Enemy, dt float64) {
	pattern := e.Kind.Capabilities().Attack
	if pattern == entity.AttackNone {
		return
	}

	if pattern == entity.AttackAimed {
		p := w.Player
		if p == nil || !p.Active {
			return
		}
		e.AimAngle = math.Atan2(p.Y-e.Y, p.X-e.X)
	}

	interval := e.Stats.FireInterval
	if pattern == entity.AttackBossPhase && e.Boss != nil {
		interval = e.Boss.Current().FireInterval
	}
	if interval <= 0 {
		return
	}

	e.FireTimer += dt
	if e.FireTimer < interval {
		return
	}
	e.FireTimer = 0

	switch pattern {
	case entity.AttackSingle, entity.AttackSpread:
		s.fireSpread(w, e)
	case entity.AttackAimed:
		s.fireAimed(w, e)
	case entity.AttackBossPhase:
		s.fireBoss(w, e)
	}
}

// fireSpread fires SpreadCount parallel downward shots
func (s *AttackSystem) fireSpread(w *ecs.World, e *entity.Enemy) {
	n := e.Stats.SpreadCount
	if n < 1 {
		n = 1
	}
	start := e.X - float64(n-1)*e.Stats.SpreadSpacing/2
	y := e.Y + e.Stats.Height/2

	for i := 0; i < n; i++ {
		s.spawnShot(w, e, start+float64(i)*e.Stats.SpreadSpacing, y, 0, e.Stats.BulletSpeed)
	}
}

// fireAimed fires one shot from the barrel tip along the aim angle
func (s *AttackSystem) fireAimed(w *ecs.World, e *entity.Enemy) {
	cos, sin := math.Cos(e.AimAngle), math.Sin(e.AimAngle)
	x, y := e.BarrelTip()
	s.spawnShot(w, e, x, y, cos*e.Stats.BulletSpeed, sin*e.Stats.BulletSpeed)
}

// fireBoss fires the current phase's fan or ring
func (s *AttackSystem) fireBoss(w *ecs.World, e *entity.Enemy) {
	phase := e.Boss.Current()

	if phase.Ring > 0 {
		for i := 0; i < phase.Ring; i++ {
			a := 2 * math.Pi * float64(i) / float64(phase.Ring)
			s.spawnShot(w, e, e.X, e.Y, math.Cos(a)*phase.BulletSpeed, math.Sin(a)*phase.BulletSpeed)
		}
		return
	}

	y := e.Y + phase.OriginOffsetY
	for _, a := range phase.Angles {
		s.spawnShot(w, e, e.X, y, math.Sin(a)*phase.BulletSpeed, math.Cos(a)*phase.BulletSpeed)
	}
}

func (s *AttackSystem) spawnShot(w *ecs.World, e *entity.Enemy, x, y, vx, vy float64) {
	shot := entity.NewProjectile(entity.SideEnemy, x, y, vx, vy, e.Stats.BulletDamage, s.bulletSize, s.bulletSize)
	shot.ID = w.NewEntity()
	e.AddShot(shot)
}
