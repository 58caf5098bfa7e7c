// Package simulation runs one level of the shooter as a headless, tick-driven core.
//
// Every tick runs in a fixed order: player intents, the wave scheduler,
// movement and attacks, collision resolution, then score and loot
// bookkeeping. The events produced by the tick are returned to the caller,
// which owns all presentation side effects.
package simulation

import (
	"log"
	"math/rand"

	"github.com/google/uuid"

	"github.com/younwookim/skyraid/internal/application/system"
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/ecs"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// Simulation owns the world and every system for one level run
type Simulation struct {
	RunID uuid.UUID

	config *config.GameConfig
	level  entity.Level
	rng    *rand.Rand

	world     *ecs.World
	spawner   *system.Spawner
	scheduler *system.WaveScheduler
	movement  *system.MovementSystem
	attack    *system.AttackSystem
	collision *system.CollisionSystem
	loot      system.LootTable

	events   entity.Events
	score    int
	kills    int
	elapsed  float64
	over     bool
	complete bool
}

// New creates a run of the given level. Unknown level ids fall back to the first level.
func New(cfg *config.GameConfig, levelID int, rng *rand.Rand) *Simulation {
	level := system.LoadLevel(cfg.Levels, levelID)
	spawner := system.NewSpawner(cfg)

	s := &Simulation{
		RunID:     uuid.New(),
		config:    cfg,
		level:     level,
		rng:       rng,
		world:     ecs.NewWorld(),
		spawner:   spawner,
		scheduler: system.NewWaveScheduler(cfg, spawner, level, rng),
		movement:  system.NewMovementSystem(cfg.Rules),
		attack:    system.NewAttackSystem(cfg.Entities),
		collision: system.NewCollisionSystem(),
		loot:      system.NewLootTable(cfg.Rules.Pickups),
	}

	spawner.SpawnPlayer(s.world)
	s.scheduler.Start(s.world, &s.events)
	log.Printf("[Simulation] run %s: level %d (%s)", s.RunID, level.ID, level.Name)
	return s
}

// Update advances the simulation by dt seconds. now is the elapsed simulation
// time used by oscillating movement. Returns the events emitted during the tick.
// A finished run ignores further ticks.
func (s *Simulation) Update(now, dt float64, intents ...system.Intent) []entity.Event {
	if s.over || s.complete {
		return s.events.Drain()
	}
	s.elapsed += dt
	start := len(s.events)

	s.applyIntents(intents, dt)

	s.scheduler.Update(s.world, dt, &s.events)

	s.movement.Update(s.world, now, dt)
	if p := s.world.Player; p != nil {
		p.UpdateTimers(dt, &s.events)
	}
	s.attack.Update(s.world, dt)

	s.collision.Update(s.world, &s.events)

	s.settle(s.events[start:])
	s.world.Compact()

	return s.events.Drain()
}

func (s *Simulation) applyIntents(intents []system.Intent, dt float64) {
	for _, in := range intents {
		if _, ok := in.(system.BombIntent); ok {
			system.DetonateBomb(s.world, &s.events)
			continue
		}
		s.movement.ApplyIntent(s.world.Player, in, dt)
	}
}

// settle scores kills, rolls loot and latches terminal states
func (s *Simulation) settle(events []entity.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case entity.EnemyDestroyed:
			s.score += e.Score
			s.kills++
			if t, ok := s.loot.Roll(s.rng); ok {
				s.spawner.SpawnPickup(s.world, t, e.X, e.Y)
			}
		case entity.PlayerDefeated:
			s.over = true
			log.Printf("[Simulation] run %s: player defeated at wave %d, score %d", s.RunID, s.scheduler.Wave(), s.score)
		case entity.LevelCleared:
			s.complete = true
			log.Printf("[Simulation] run %s: level %d cleared, score %d", s.RunID, s.level.ID, s.score)
		}
	}
}

// World returns the entity arena
func (s *Simulation) World() *ecs.World { return s.world }

// Player returns the player entity
func (s *Simulation) Player() *entity.Player { return s.world.Player }

// Boss returns the live boss, or nil
func (s *Simulation) Boss() *entity.Enemy { return s.world.Boss() }

// Level returns the level being played
func (s *Simulation) Level() entity.Level { return s.level }

// Score returns the points earned this run
func (s *Simulation) Score() int { return s.score }

// Kills returns how many scored enemies were destroyed
func (s *Simulation) Kills() int { return s.kills }

// Elapsed returns the total simulated time
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Wave returns the current wave number
func (s *Simulation) Wave() int { return s.scheduler.Wave() }

// WavePhase returns the scheduler state
func (s *Simulation) WavePhase() system.WavePhase { return s.scheduler.Phase() }

// BossWave reports whether the boss wave is running
func (s *Simulation) BossWave() bool { return s.scheduler.Kind() == system.WaveBoss }

// Over reports whether the player was defeated
func (s *Simulation) Over() bool { return s.over }

// Complete reports whether the level was cleared
func (s *Simulation) Complete() bool { return s.complete }
