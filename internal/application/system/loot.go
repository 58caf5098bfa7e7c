package system

import (
	"math/rand"

	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

type lootEntry struct {
	Type   entity.PickupType
	Chance float64
}

// LootTable rolls pickup drops for destroyed enemies
type LootTable struct {
	dropChance float64
	entries    []lootEntry
}

// NewLootTable builds a loot table from the pickup rules
func NewLootTable(rules config.PickupRules) LootTable {
	t := LootTable{dropChance: rules.DropChance}
	for _, e := range rules.Table {
		pt, ok := entity.ParsePickupType(e.Type)
		if !ok {
			continue
		}
		t.entries = append(t.entries, lootEntry{Type: pt, Chance: e.Chance})
	}
	return t
}

// Roll decides whether a drop happens and which pickup it is
func (t LootTable) Roll(rng *rand.Rand) (entity.PickupType, bool) {
	if len(t.entries) == 0 || rng.Float64() >= t.dropChance {
		return 0, false
	}
	return t.Pick(rng.Float64()), true
}

// Pick maps a roll in [0,1) onto the cumulative table
func (t LootTable) Pick(roll float64) entity.PickupType {
	acc := 0.0
	for _, e := range t.entries {
		acc += e.Chance
		if roll < acc {
			return e.Type
		}
	}
	return t.entries[len(t.entries)-1].Type
}
