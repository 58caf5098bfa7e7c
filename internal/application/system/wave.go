package system

import (
	"log"
	"math"
	"math/rand"

	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/ecs"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// WavePhase is the scheduler's top-level state
type WavePhase int

const (
	WaveInProgress WavePhase = iota
	WaveBreak
	LevelComplete
)

// String returns the string representation of the phase
func (p WavePhase) String() string {
	switch p {
	case WaveInProgress:
		return "InProgress"
	case WaveBreak:
		return "Break"
	case LevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// WaveKind distinguishes timed waves from the boss encounter
type WaveKind int

const (
	WaveNormal WaveKind = iota
	WaveBoss
)

// WaveScheduler drives timed enemy composition across one level
type WaveScheduler struct {
	rules   config.WaveRules
	width   float64
	table   SpawnTable
	spawner *Spawner
	level   entity.Level
	rng     *rand.Rand

	wave        int
	kind        WaveKind
	phase       WavePhase
	elapsed     float64
	spawnTimer  float64
	interval    float64
	spawned     int
	breakTimer  float64
	bossSpawned bool
}

// NewWaveScheduler creates a scheduler for one level
func NewWaveScheduler(cfg *config.GameConfig, spawner *Spawner, level entity.Level, rng *rand.Rand) *WaveScheduler {
	return &WaveScheduler{
		rules:   cfg.Rules.Waves,
		width:   cfg.Rules.Playfield.Width,
		table:   NewSpawnTable(cfg.Rules.SpawnTable),
		spawner: spawner,
		level:   level,
		rng:     rng,
		phase:   WaveBreak,
	}
}

// Wave returns the current wave number, starting at 1
func (s *WaveScheduler) Wave() int { return s.wave }

// Phase returns the current scheduler state
func (s *WaveScheduler) Phase() WavePhase { return s.phase }

// Kind returns whether the current wave is a boss wave
func (s *WaveScheduler) Kind() WaveKind { return s.kind }

// Spawned returns how many enemies the current wave has produced
func (s *WaveScheduler) Spawned() int { return s.spawned }

// Interval returns the current wave's spawn interval in seconds
func (s *WaveScheduler) Interval() float64 { return s.interval }

// Elapsed returns time spent in the current wave window
func (s *WaveScheduler) Elapsed() float64 { return s.elapsed }

// Start enters wave 1
func (s *WaveScheduler) Start(w *ecs.World, out *entity.Events) {
	s.wave = 0
	s.startNextWave(w, out)
}

// Update advances the wave state by dt seconds
func (s *WaveScheduler) Update(w *ecs.World, dt float64, out *entity.Events) {
	w.MergeEnemyShots()

	switch s.phase {
	case WaveInProgress:
		if s.kind == WaveBoss {
			s.updateBossWave(w, out)
			return
		}
		s.updateNormalWave(w, dt, out)
	case WaveBreak:
		s.breakTimer += dt
		if s.breakTimer >= s.rules.Break {
			s.startNextWave(w, out)
		}
	case LevelComplete:
	}
}

func (s *WaveScheduler) updateNormalWave(w *ecs.World, dt float64, out *entity.Events) {
	s.elapsed += dt
	s.spawnTimer += dt

	if s.elapsed < s.rules.Duration && s.spawnTimer >= s.interval {
		s.spawnEnemy(w)
		s.spawnTimer = 0
	}

	if s.elapsed >= s.rules.Duration && w.LiveEnemies() == 0 {
		s.endWave(out)
	}
}

func (s *WaveScheduler) updateBossWave(w *ecs.World, out *entity.Events) {
	if w.LiveEnemies() > 0 {
		return
	}
	s.endWave(out)
	s.phase = LevelComplete
	out.Add(entity.LevelCleared{Level: s.level.ID})
	log.Printf("[WaveScheduler] level %d cleared", s.level.ID)
}

func (s *WaveScheduler) startNextWave(w *ecs.World, out *entity.Events) {
	s.wave++
	s.phase = WaveInProgress
	s.elapsed = 0
	s.spawnTimer = 0
	s.breakTimer = 0
	s.spawned = 0
	s.bossSpawned = false

	if s.wave > s.level.NormalWaves {
		s.kind = WaveBoss
		s.interval = 0
		s.spawnBoss(w)
		out.Add(entity.BossWaveStarted{Wave: s.wave, Name: s.level.BossName})
		log.Printf("[WaveScheduler] boss wave %d: %s", s.wave, s.level.BossName)
		return
	}

	s.kind = WaveNormal
	s.interval = math.Max(s.rules.MinInterval, s.rules.BaseInterval-float64(s.wave)*s.rules.IntervalStep)
	out.Add(entity.WaveStarted{Wave: s.wave})
	log.Printf("[WaveScheduler] wave %d started, interval %.2fs", s.wave, s.interval)
}

func (s *WaveScheduler) endWave(out *entity.Events) {
	s.phase = WaveBreak
	s.breakTimer = 0
	out.Add(entity.WaveCompleted{Wave: s.wave})
	log.Printf("[WaveScheduler] wave %d complete, %d spawned", s.wave, s.spawned)
}

func (s *WaveScheduler) spawnBoss(w *ecs.World) {
	if s.bossSpawned {
		return
	}
	s.spawner.SpawnBoss(w, s.level, s.width/2, s.rules.BossY)
	s.bossSpawned = true
	s.spawned = 1
}

func (s *WaveScheduler) spawnEnemy(w *ecs.World) {
	kind := s.table.Pick(s.wave, s.rng.Float64())
	x := s.rules.SpawnMargin + s.rng.Float64()*(s.width-2*s.rules.SpawnMargin)
	y := s.rules.SpawnY

	// Turrets never move, so they appear inside the field
	if kind == entity.KindTurret {
		y = s.rules.TurretMinY + s.rng.Float64()*(s.rules.TurretMaxY-s.rules.TurretMinY)
	}

	if s.spawner.SpawnEnemy(w, kind, x, y) != nil {
		s.spawned++
	}
}
