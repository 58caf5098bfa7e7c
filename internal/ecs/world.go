// Package ecs holds the entity arena for one simulation run.
//
// Entities live in side-specific collections. Destruction only flips an
// entity's Active flag, so systems iterate the collections and skip inactive
// members. Compact reclaims storage at the end of a tick.
package ecs

import "github.com/younwookim/skyraid/internal/domain/entity"

// World holds every entity collection and the next entity ID
type World struct {
	nextID entity.EntityID

	Player      *entity.Player
	Enemies     []*entity.Enemy
	PlayerShots []*entity.Projectile
	EnemyShots  []*entity.Projectile
	Pickups     []*entity.Pickup

	// merged tracks enemy projectiles already moved into EnemyShots
	merged map[entity.EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:      1, // 0 is "nil"
		Enemies:     make([]*entity.Enemy, 0, 32),
		PlayerShots: make([]*entity.Projectile, 0, 64),
		EnemyShots:  make([]*entity.Projectile, 0, 64),
		Pickups:     make([]*entity.Pickup, 0, 8),
		merged:      make(map[entity.EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// SetPlayer installs the player, assigning an ID if it has none
func (w *World) SetPlayer(p *entity.Player) {
	if p.ID == 0 {
		p.ID = w.NewEntity()
	}
	w.Player = p
}

// AddEnemy adds an enemy, assigning an ID if it has none
func (w *World) AddEnemy(e *entity.Enemy) {
	if e.ID == 0 {
		e.ID = w.NewEntity()
	}
	w.Enemies = append(w.Enemies, e)
}

// AddPlayerShot adds a player projectile
func (w *World) AddPlayerShot(p *entity.Projectile) {
	if p.ID == 0 {
		p.ID = w.NewEntity()
	}
	w.PlayerShots = append(w.PlayerShots, p)
}

// AddPickup adds a pickup
func (w *World) AddPickup(p *entity.Pickup) {
	if p.ID == 0 {
		p.ID = w.NewEntity()
	}
	w.Pickups = append(w.Pickups, p)
}

// MergeEnemyShots moves live projectiles from each live enemy's own list
// into EnemyShots. Projectiles already merged are skipped.
// Returns how many projectiles were added.
func (w *World) MergeEnemyShots() int {
	added := 0
	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		for _, p := range e.Shots {
			if !p.Active {
				continue
			}
			if p.ID == 0 {
				p.ID = w.NewEntity()
			}
			if _, ok := w.merged[p.ID]; ok {
				continue
			}
			w.merged[p.ID] = struct{}{}
			w.EnemyShots = append(w.EnemyShots, p)
			added++
		}
		e.PruneShots()
	}
	return added
}

// ClearEnemyShots deactivates every enemy projectile, merged or not
func (w *World) ClearEnemyShots() {
	for _, p := range w.EnemyShots {
		p.Deactivate()
	}
	for _, e := range w.Enemies {
		for _, p := range e.Shots {
			p.Deactivate()
		}
	}
}

// LiveEnemies counts active enemies
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// Boss returns the active boss, or nil
func (w *World) Boss() *entity.Enemy {
	for _, e := range w.Enemies {
		if e.Active && e.Boss != nil {
			return e
		}
	}
	return nil
}

// Compact drops inactive entities from every collection.
// Unmerged shots of dead enemies are merged first so they outlive their creator.
func (w *World) Compact() {
	for _, e := range w.Enemies {
		if e.Active {
			continue
		}
		for _, p := range e.Shots {
			if _, ok := w.merged[p.ID]; !ok && p.Active {
				w.merged[p.ID] = struct{}{}
				w.EnemyShots = append(w.EnemyShots, p)
			}
		}
		e.Shots = nil
	}

	w.Enemies = compact(w.Enemies, func(e *entity.Enemy) bool { return e.Active })
	w.PlayerShots = compact(w.PlayerShots, func(p *entity.Projectile) bool { return p.Active })
	w.Pickups = compact(w.Pickups, func(p *entity.Pickup) bool { return p.Active })

	live := w.EnemyShots[:0]
	for _, p := range w.EnemyShots {
		if p.Active {
			live = append(live, p)
			continue
		}
		delete(w.merged, p.ID)
	}
	clear(w.EnemyShots[len(live):])
	w.EnemyShots = live
}

func compact[T any](items []T, keep func(T) bool) []T {
	live := items[:0]
	for _, it := range items {
		if keep(it) {
			live = append(live, it)
		}
	}
	clear(items[len(live):])
	return live
}
