package system

import (
	"sort"

	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// SpawnWeight is one kind's share of a tier
type SpawnWeight struct {
	Kind   entity.Kind
	Chance float64
}

// SpawnTier applies to waves up to MaxWave; MaxWave 0 means unbounded
type SpawnTier struct {
	MaxWave int
	Weights []SpawnWeight
}

// SpawnTable picks enemy kinds from cumulative probabilities keyed on wave number
type SpawnTable struct {
	tiers []SpawnTier
}

// NewSpawnTable builds a table from config. Bounded tiers are sorted by MaxWave
// and the unbounded tier, if any, goes last.
func NewSpawnTable(tiers []config.SpawnTierConfig) SpawnTable {
	t := SpawnTable{}
	for _, tc := range tiers {
		tier := SpawnTier{MaxWave: tc.MaxWave}
		for _, wc := range tc.Weights {
			kind, ok := entity.ParseKind(wc.Kind)
			if !ok {
				continue
			}
			tier.Weights = append(tier.Weights, SpawnWeight{Kind: kind, Chance: wc.Chance})
		}
		t.tiers = append(t.tiers, tier)
	}

	sort.SliceStable(t.tiers, func(i, j int) bool {
		a, b := t.tiers[i].MaxWave, t.tiers[j].MaxWave
		if a == 0 || b == 0 {
			return b == 0 && a != 0
		}
		return a < b
	})
	return t
}

// tierFor returns the first tier covering the wave
func (t SpawnTable) tierFor(wave int) (SpawnTier, bool) {
	for _, tier := range t.tiers {
		if tier.MaxWave == 0 || wave <= tier.MaxWave {
			return tier, true
		}
	}
	if len(t.tiers) == 0 {
		return SpawnTier{}, false
	}
	return t.tiers[len(t.tiers)-1], true
}

// Pick chooses a kind for a roll in [0,1)
func (t SpawnTable) Pick(wave int, roll float64) entity.Kind {
	tier, ok := t.tierFor(wave)
	if !ok || len(tier.Weights) == 0 {
		return entity.KindSmall
	}

	acc := 0.0
	for _, w := range tier.Weights {
		acc += w.Chance
		if roll < acc {
			return w.Kind
		}
	}
	return tier.Weights[len(tier.Weights)-1].Kind
}
