package system

import (
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/ecs"
)

// DetonateBomb spends one of the player's bombs, deals lethal damage to every
// live enemy and clears enemy fire. Returns false when no bomb was available.
func DetonateBomb(w *ecs.World, out *entity.Events) bool {
	p := w.Player
	if p == nil || !p.UseBomb(out) {
		return false
	}

	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		e.TakeDamage(e.Health, out)
	}
	w.ClearEnemyShots()
	return true
}
