package system

import (
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/ecs"
)

// CollisionSystem resolves overlaps between live entities
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Update runs every overlap rule once. Entities deactivated by an earlier rule
// are skipped by the later ones.
func (s *CollisionSystem) Update(w *ecs.World, out *entity.Events) {
	s.playerShotsVsEnemies(w, out)

	p := w.Player
	if p == nil || !p.Active {
		return
	}
	s.playerVsEnemies(w, p, out)
	if !p.Active {
		return
	}
	s.playerVsEnemyShots(w, p, out)
	if !p.Active {
		return
	}
	s.playerVsPickups(w, p, out)
}

func (s *CollisionSystem) playerShotsVsEnemies(w *ecs.World, out *entity.Events) {
	for _, shot := range w.PlayerShots {
		if !shot.Active {
			continue
		}

		ax, ay, aw, ah := shot.GetHitbox()

		for _, enemy := range w.Enemies {
			if !enemy.Active {
				continue
			}

			ex, ey, ew, eh := enemy.GetHitbox()

			if rectsOverlap(ax, ay, aw, ah, ex, ey, ew, eh) {
				// Shots are consumed even by indestructible targets
				shot.Deactivate()
				enemy.TakeDamage(shot.Damage, out)
				break
			}
		}
	}
}

// playerVsEnemies is a mutual-destruction collision
func (s *CollisionSystem) playerVsEnemies(w *ecs.World, p *entity.Player, out *entity.Events) {
	px, py, pw, ph := p.GetHitbox()

	for _, enemy := range w.Enemies {
		if !enemy.Active {
			continue
		}

		ex, ey, ew, eh := enemy.GetHitbox()

		if rectsOverlap(ex, ey, ew, eh, px, py, pw, ph) {
			p.TakeDamage(enemy.ContactDamage, out)
			enemy.TakeDamage(enemy.Health, out)
			if !p.Active {
				return
			}
		}
	}
}

func (s *CollisionSystem) playerVsEnemyShots(w *ecs.World, p *entity.Player, out *entity.Events) {
	px, py, pw, ph := p.GetHitbox()

	for _, shot := range w.EnemyShots {
		if !shot.Active {
			continue
		}

		ax, ay, aw, ah := shot.GetHitbox()

		if rectsOverlap(ax, ay, aw, ah, px, py, pw, ph) {
			shot.Deactivate()
			p.TakeDamage(shot.Damage, out)
			if !p.Active {
				return
			}
		}
	}
}

func (s *CollisionSystem) playerVsPickups(w *ecs.World, p *entity.Player, out *entity.Events) {
	px, py, pw, ph := p.GetHitbox()

	for _, pk := range w.Pickups {
		if !pk.Active {
			continue
		}

		ax, ay, aw, ah := pk.GetHitbox()

		if rectsOverlap(ax, ay, aw, ah, px, py, pw, ph) {
			pk.Deactivate()
			p.ApplyPickup(pk.Type, out)
		}
	}
}

// rectsOverlap tests two top-left boxes for strict overlap
func rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}
