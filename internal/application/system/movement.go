package system

import (
	"math"

	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/ecs"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// MovementSystem applies each variant's movement policy
type MovementSystem struct {
	field      entity.Playfield
	exitMargin float64
	bossMinX   float64
	bossMaxX   float64
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(rules *config.RulesConfig) *MovementSystem {
	return &MovementSystem{
		field:      entity.Playfield{Width: rules.Playfield.Width, Height: rules.Playfield.Height},
		exitMargin: rules.Playfield.ExitMargin,
		bossMinX:   rules.Waves.BossMargin,
		bossMaxX:   rules.Playfield.Width - rules.Waves.BossMargin,
	}
}

// Playfield returns the area entities move in
func (s *MovementSystem) Playfield() entity.Playfield {
	return s.field
}

// ApplyIntent moves the player according to an input intent
func (s *MovementSystem) ApplyIntent(p *entity.Player, intent Intent, dt float64) {
	if p == nil || !p.Active {
		return
	}

	switch in := intent.(type) {
	case MoveIntent:
		dx, dy := in.DX, in.DY
		if l := math.Hypot(dx, dy); l > 1 {
			dx, dy = dx/l, dy/l
		}
		p.Move(dx, dy, dt, s.field)
	case DragIntent:
		p.MoveTo(in.X, in.Y, s.field)
	}
}

// Update moves every live enemy, projectile and pickup.
// now is the elapsed simulation time used by oscillating policies.
func (s *MovementSystem) Update(w *ecs.World, now, dt float64) {
	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		s.moveEnemy(e, now, dt)
	}

	for _, p := range w.PlayerShots {
		if !p.Active {
			continue
		}
		p.Update(dt)
		if p.OutOfBounds(s.field, s.exitMargin) {
			p.Deactivate()
		}
	}

	for _, p := range w.EnemyShots {
		if !p.Active {
			continue
		}
		p.Update(dt)
		if p.OutOfBounds(s.field, s.exitMargin) {
			p.Deactivate()
		}
	}

	for _, pk := range w.Pickups {
		if !pk.Active {
			continue
		}
		pk.Update(dt)
		if pk.Y-pk.Size/2 > s.field.Height {
			pk.Deactivate()
		}
	}
}

func (s *MovementSystem) moveEnemy(e *entity.Enemy, now, dt float64) {
	caps := e.Kind.Capabilities()
	e.Age += dt
	if e.HitTimer > 0 {
		e.HitTimer -= dt
	}

	switch caps.Movement {
	case entity.MoveDrift:
		e.Y += e.Stats.Speed * dt
	case entity.MoveSway:
		e.Y += e.Stats.Speed * dt
		e.X += e.Stats.SwayAmplitude * math.Sin(now*e.Stats.SwayFrequency) * dt
	case entity.MoveStationary:
		// Turrets never translate
	case entity.MoveBounce:
		s.bounce(e, dt)
	}

	if caps.Expires && e.Stats.Lifetime > 0 && e.Age >= e.Stats.Lifetime {
		e.Remove()
		return
	}

	// Housekeeping exit past the far boundary
	if e.Y-e.Stats.Height/2 > s.field.Height+s.exitMargin {
		e.Remove()
	}
}

// bounce moves a boss horizontally between the two x bounds
func (s *MovementSystem) bounce(e *entity.Enemy, dt float64) {
	speed := e.Stats.Speed
	if e.Boss != nil && e.Boss.Current().Speed > 0 {
		speed = e.Boss.Current().Speed
	}

	e.X += e.Dir * speed * dt
	if e.X <= s.bossMinX {
		e.X = s.bossMinX
		e.Dir = 1
	} else if e.X >= s.bossMaxX {
		e.X = s.bossMaxX
		e.Dir = -1
	}
}
