package system

import (
	"log"

	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// LoadLevel converts the level table entry for id into a Level.
// Unknown ids fall back to the first defined level.
func LoadLevel(cfg *config.LevelsConfig, id int) entity.Level {
	lc, ok := cfg.Find(id)
	if !ok {
		log.Printf("[LevelLoader] level %d not found, using level %d", id, lc.ID)
	}

	return entity.Level{
		ID:          lc.ID,
		Name:        lc.Name,
		Theme:       lc.Theme,
		NormalWaves: lc.NormalWaves,
		BossHP:      lc.BossHP,
		BossName:    lc.BossName,
	}
}

// NextLevel returns the id unlocked by clearing level id, capped at the last level
func NextLevel(cfg *config.LevelsConfig, id int) int {
	if id < cfg.MaxID() {
		return id + 1
	}
	return cfg.MaxID()
}
