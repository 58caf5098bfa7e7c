package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

func createTestLevels() *config.LevelsConfig {
	return &config.LevelsConfig{Levels: []config.LevelConfig{
		{ID: 1, Name: "City Skies", Theme: "city", NormalWaves: 3, BossHP: 1000, BossName: "Iron Gull"},
		{ID: 2, Name: "Desert Storm", Theme: "desert", NormalWaves: 3, BossHP: 1200, BossName: "Sand Wyrm"},
		{ID: 3, Name: "Jungle Canopy", Theme: "jungle", NormalWaves: 4, BossHP: 1400, BossName: "Canopy Hornet"},
	}}
}

func TestLoadLevel(t *testing.T) {
	lvl := LoadLevel(createTestLevels(), 2)

	assert.Equal(t, 2, lvl.ID)
	assert.Equal(t, "Desert Storm", lvl.Name)
	assert.Equal(t, "desert", lvl.Theme)
	assert.Equal(t, 3, lvl.NormalWaves)
	assert.Equal(t, 1200, lvl.BossHP)
	assert.Equal(t, "Sand Wyrm", lvl.BossName)
}

func TestLoadLevel_FallsBackToFirst(t *testing.T) {
	for _, id := range []int{0, -1, 99} {
		lvl := LoadLevel(createTestLevels(), id)
		assert.Equal(t, 1, lvl.ID)
		assert.Equal(t, 1000, lvl.BossHP)
	}
}

func TestNextLevel(t *testing.T) {
	levels := createTestLevels()

	assert.Equal(t, 2, NextLevel(levels, 1))
	assert.Equal(t, 3, NextLevel(levels, 2))
	assert.Equal(t, 3, NextLevel(levels, 3))
}
