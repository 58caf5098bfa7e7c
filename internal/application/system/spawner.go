package system

import (
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/ecs"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// Spawner creates entities from configuration and adds them to a world
type Spawner struct {
	config *config.GameConfig
	stats  map[entity.Kind]entity.EnemyStats
	phases []entity.BossPhase
}

// NewSpawner creates a spawner, converting enemy configs once
func NewSpawner(cfg *config.GameConfig) *Spawner {
	s := &Spawner{
		config: cfg,
		stats:  make(map[entity.Kind]entity.EnemyStats),
	}

	for name, ec := range cfg.Entities.Enemies {
		kind, ok := entity.ParseKind(name)
		if !ok {
			continue
		}
		s.stats[kind] = entity.EnemyStats{
			MaxHealth:     ec.MaxHealth,
			ContactDamage: ec.ContactDamage,
			Score:         ec.Score,
			Speed:         ec.Speed,
			SwayAmplitude: ec.SwayAmplitude,
			SwayFrequency: ec.SwayFrequency,
			Lifetime:      ec.Lifetime,
			FireInterval:  ec.FireInterval,
			BulletSpeed:   ec.BulletSpeed,
			BulletDamage:  ec.BulletDamage,
			SpreadCount:   ec.SpreadCount,
			SpreadSpacing: ec.SpreadSpacing,
			BarrelLength:  ec.BarrelLength,
			Width:         ec.Size.Width,
			Height:        ec.Size.Height,
		}
	}

	for _, pc := range cfg.Entities.Boss.Phases {
		s.phases = append(s.phases, entity.BossPhase{
			Threshold:     pc.Threshold,
			FireInterval:  pc.FireInterval,
			Speed:         pc.Speed,
			BulletSpeed:   pc.BulletSpeed,
			Angles:        append([]float64(nil), pc.Angles...),
			Ring:          pc.Ring,
			OriginOffsetY: pc.OriginOffsetY,
			Text:          pc.Text,
		})
	}

	return s
}

// Stats returns the tuning for a kind
func (s *Spawner) Stats(kind entity.Kind) (entity.EnemyStats, bool) {
	st, ok := s.stats[kind]
	return st, ok
}

// SpawnEnemy adds a regular enemy of the given kind. Returns nil if the kind is not configured.
func (s *Spawner) SpawnEnemy(w *ecs.World, kind entity.Kind, x, y float64) *entity.Enemy {
	stats, ok := s.stats[kind]
	if !ok {
		return nil
	}

	enemy := entity.NewEnemy(w.NewEntity(), kind, x, y, stats)
	w.AddEnemy(enemy)
	return enemy
}

// SpawnBoss adds the level boss with the level's health budget
func (s *Spawner) SpawnBoss(w *ecs.World, level entity.Level, x, y float64) *entity.Enemy {
	stats := s.stats[entity.KindBoss]
	if level.BossHP > 0 {
		stats.MaxHealth = level.BossHP
	}

	boss := entity.NewEnemy(w.NewEntity(), entity.KindBoss, x, y, stats)
	phases := make([]entity.BossPhase, len(s.phases))
	copy(phases, s.phases)
	boss.Boss = entity.NewBossState(level.BossName, phases)
	w.AddEnemy(boss)
	return boss
}

// SpawnPlayer installs a fresh player at the bottom center of the playfield
func (s *Spawner) SpawnPlayer(w *ecs.World) *entity.Player {
	pc := s.config.Entities.Player
	rules := s.config.Rules

	stats := entity.PlayerStats{
		MaxHealth:    pc.Stats.MaxHealth,
		Attack:       pc.Stats.Attack,
		Defense:      pc.Stats.Defense,
		Speed:        pc.Stats.Speed,
		Bombs:        pc.Stats.Bombs,
		FireInterval: pc.Stats.FireInterval,
		BulletSpeed:  pc.Shot.Speed,
		ShotSpacing:  pc.Shot.Spacing,
		ShotWidth:    pc.Shot.Width,
		ShotHeight:   pc.Shot.Height,
		MaxShotScale: pc.Shot.MaxScale,
		Width:        pc.Size.Width,
		Height:       pc.Size.Height,
		Margin:       pc.Margin,
	}
	tuning := entity.BoostTuning{
		Duration:       rules.Boosts.Duration,
		AttackPerLevel: rules.Boosts.AttackPerLevel,
		FireRateFactor: rules.Boosts.FireRateFactor,
		MaxShots:       rules.Boosts.MaxShots,
	}
	rewards := entity.PickupRewards{
		Heal:   rules.Pickups.Heal,
		Shield: rules.Pickups.Shield,
		Bombs:  rules.Pickups.Bombs,
	}

	y := pc.SpawnY
	if y == 0 {
		y = rules.Playfield.Height - 100
	}
	player := entity.NewPlayer(w.NewEntity(), rules.Playfield.Width/2, y, stats, tuning, rewards)
	w.SetPlayer(player)
	return player
}

// SpawnPickup drops a pickup at the given position
func (s *Spawner) SpawnPickup(w *ecs.World, t entity.PickupType, x, y float64) *entity.Pickup {
	pr := s.config.Rules.Pickups
	pk := entity.NewPickup(w.NewEntity(), t, x, y, pr.FallSpeed, pr.Size)
	w.AddPickup(pk)
	return pk
}
