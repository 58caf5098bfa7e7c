package system

import (
	"math/rand"

	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/ecs"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Rules: &config.RulesConfig{
			Playfield: config.PlayfieldConfig{Width: 375, Height: 667, ExitMargin: 50},
			Waves: config.WaveRules{
				Duration:     10,
				Break:        2,
				BaseInterval: 1.2,
				IntervalStep: 0.05,
				MinInterval:  0.6,
				SpawnY:       -50,
				SpawnMargin:  30,
				TurretMinY:   80,
				TurretMaxY:   220,
				BossY:        100,
				BossMargin:   60,
			},
			SpawnTable: []config.SpawnTierConfig{
				{MaxWave: 0, Weights: []config.SpawnWeightConfig{{Kind: "small", Chance: 1}}},
			},
			Boosts: config.BoostRules{Duration: 10, AttackPerLevel: 5, FireRateFactor: 0.5, MaxShots: 5},
			Pickups: config.PickupRules{
				FallSpeed:  50,
				Size:       20,
				DropChance: 0.3,
				Heal:       20,
				Shield:     50,
				Bombs:      1,
				Table: []config.LootEntryConfig{
					{Type: "health", Chance: 0.25},
					{Type: "shield", Chance: 0.15},
					{Type: "bomb", Chance: 0.1},
					{Type: "attackBoost", Chance: 0.2},
					{Type: "fireRateBoost", Chance: 0.2},
					{Type: "multiShot", Chance: 0.1},
				},
			},
		},
		Entities: &config.EntitiesConfig{
			Player: config.PlayerConfig{
				Stats:  config.PlayerStats{MaxHealth: 100, Attack: 10, Speed: 200, Bombs: 3, FireInterval: 0.2},
				Shot:   config.ShotConfig{Speed: 400, Spacing: 15, Width: 4, Height: 8, MaxScale: 3},
				Size:   config.SizeConfig{Width: 40, Height: 40},
				Margin: 20,
				SpawnY: 567,
			},
			EnemyBullet: config.BulletConfig{Size: 6},
			Enemies: map[string]config.EnemyConfig{
				"small": {MaxHealth: 20, ContactDamage: 10, Score: 10, Speed: 100, SpreadCount: 1,
					Size: config.SizeConfig{Width: 30, Height: 30}},
				"medium": {MaxHealth: 30, ContactDamage: 15, Score: 20, Speed: 80, SwayAmplitude: 60, SwayFrequency: 2,
					FireInterval: 1.5, BulletSpeed: 300, BulletDamage: 15, SpreadCount: 1,
					Size: config.SizeConfig{Width: 40, Height: 40}},
				"large": {MaxHealth: 50, ContactDamage: 20, Score: 50, Speed: 60, SwayAmplitude: 90, SwayFrequency: 1,
					FireInterval: 1.0, BulletSpeed: 300, BulletDamage: 20, SpreadCount: 3, SpreadSpacing: 20,
					Size: config.SizeConfig{Width: 60, Height: 50}},
				"turret": {MaxHealth: 50, ContactDamage: 15, Score: 25, FireInterval: 1.5, BulletSpeed: 250,
					BulletDamage: 15, BarrelLength: 20, SpreadCount: 1, Size: config.SizeConfig{Width: 40, Height: 40}},
				"hazard": {MaxHealth: 1, ContactDamage: 20, Speed: 30, Lifetime: 15, SpreadCount: 1,
					Size: config.SizeConfig{Width: 120, Height: 60}},
				"boss": {MaxHealth: 1000, ContactDamage: 30, Score: 500, BulletDamage: 10, SpreadCount: 1,
					Size: config.SizeConfig{Width: 120, Height: 80}},
			},
			Boss: config.BossConfig{Phases: []config.BossPhaseConfig{
				{Threshold: 1.0, FireInterval: 1.0, Speed: 80, BulletSpeed: 200, Angles: []float64{-0.3, 0, 0.3}, OriginOffsetY: 40},
				{Threshold: 0.6, FireInterval: 0.7, Speed: 100, BulletSpeed: 250, Angles: []float64{-0.5, -0.25, 0, 0.25, 0.5},
					OriginOffsetY: 40, Text: "Phase 2: Enraged!"},
				{Threshold: 0.3, FireInterval: 0.5, Speed: 120, BulletSpeed: 200, Ring: 8, Text: "Phase 3: Berserk!"},
			}},
		},
		Levels: &config.LevelsConfig{Levels: []config.LevelConfig{
			{ID: 1, Name: "City Skies", Theme: "city", NormalWaves: 3, BossHP: 1000, BossName: "Iron Gull"},
		}},
	}
}

func testLevel() entity.Level {
	return entity.Level{ID: 1, Name: "City Skies", Theme: "city", NormalWaves: 3, BossHP: 1000, BossName: "Iron Gull"}
}

// newTestArena returns a world with a player and the spawner that built it
func newTestArena(cfg *config.GameConfig) (*ecs.World, *Spawner) {
	w := ecs.NewWorld()
	sp := NewSpawner(cfg)
	sp.SpawnPlayer(w)
	return w, sp
}

// eventsOf filters drained events down to one concrete type
func eventsOf[T entity.Event](events []entity.Event) []T {
	var out []T
	for _, ev := range events {
		if t, ok := ev.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
