package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrNoLevels is returned when levels.yaml defines no level
var ErrNoLevels = errors.New("no levels defined")

// chanceTolerance absorbs rounding in hand-written probability tables
const chanceTolerance = 1e-6

// Known names accepted in config files
var (
	enemyKinds  = []string{"small", "medium", "large", "turret", "hazard", "boss"}
	pickupTypes = []string{"health", "shield", "bomb", "attackBoost", "fireRateBoost", "multiShot"}
)

// Validate checks rules.yaml for values the scheduler cannot run with
func (c *RulesConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield size must be positive: %.0fx%.0f", c.Playfield.Width, c.Playfield.Height))
	}
	w := c.Waves
	if w.Duration <= 0 {
		errs = append(errs, fmt.Errorf("wave duration must be positive: %.2f", w.Duration))
	}
	if w.MinInterval <= 0 || w.BaseInterval < w.MinInterval {
		errs = append(errs, fmt.Errorf("spawn interval invalid: base(%.2f) min(%.2f)", w.BaseInterval, w.MinInterval))
	}
	if w.TurretMinY > w.TurretMaxY {
		errs = append(errs, fmt.Errorf("turret spawn band invalid: min(%.1f) > max(%.1f)", w.TurretMinY, w.TurretMaxY))
	}
	if 2*w.SpawnMargin >= c.Playfield.Width {
		errs = append(errs, fmt.Errorf("spawn margin %.1f leaves no room", w.SpawnMargin))
	}

	if len(c.SpawnTable) == 0 {
		errs = append(errs, errors.New("spawn table is empty"))
	}
	for i, tier := range c.SpawnTable {
		sum := 0.0
		for _, wt := range tier.Weights {
			if !slices.Contains(enemyKinds, wt.Kind) || wt.Kind == "boss" {
				errs = append(errs, fmt.Errorf("spawn tier %d: unknown kind %q", i, wt.Kind))
			}
			sum += wt.Chance
		}
		if math.Abs(sum-1) > chanceTolerance {
			errs = append(errs, fmt.Errorf("spawn tier %d: chances sum to %.3f, want 1", i, sum))
		}
	}

	if c.Pickups.DropChance < 0 || c.Pickups.DropChance > 1 {
		errs = append(errs, fmt.Errorf("drop chance out of range: %.2f", c.Pickups.DropChance))
	}
	sum := 0.0
	for _, e := range c.Pickups.Table {
		if !slices.Contains(pickupTypes, e.Type) {
			errs = append(errs, fmt.Errorf("loot table: unknown pickup %q", e.Type))
		}
		sum += e.Chance
	}
	if len(c.Pickups.Table) > 0 && math.Abs(sum-1) > chanceTolerance {
		errs = append(errs, fmt.Errorf("loot table: chances sum to %.3f, want 1", sum))
	}

	return errors.Join(errs...)
}

// Validate checks entities.yaml
func (c *EntitiesConfig) Validate() error {
	var errs []error

	if c.Player.Stats.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player maxHealth must be positive: %d", c.Player.Stats.MaxHealth))
	}
	if c.Player.Stats.FireInterval <= 0 {
		errs = append(errs, fmt.Errorf("player fireInterval must be positive: %.2f", c.Player.Stats.FireInterval))
	}
	for name, e := range c.Enemies {
		if !slices.Contains(enemyKinds, name) {
			errs = append(errs, fmt.Errorf("unknown enemy kind %q", name))
		}
		if e.MaxHealth <= 0 {
			errs = append(errs, fmt.Errorf("enemy %s: maxHealth must be positive", name))
		}
	}
	for _, kind := range enemyKinds {
		if _, ok := c.Enemies[kind]; !ok {
			errs = append(errs, fmt.Errorf("enemy %s is not configured", kind))
		}
	}

	if len(c.Boss.Phases) == 0 {
		errs = append(errs, errors.New("boss has no phases"))
	}
	for i, ph := range c.Boss.Phases {
		if i > 0 && ph.Threshold >= c.Boss.Phases[i-1].Threshold {
			errs = append(errs, fmt.Errorf("boss phase %d: threshold %.2f must be below the previous phase", i, ph.Threshold))
		}
		if ph.FireInterval <= 0 {
			errs = append(errs, fmt.Errorf("boss phase %d: fireInterval must be positive", i))
		}
		if ph.Ring == 0 && len(ph.Angles) == 0 {
			errs = append(errs, fmt.Errorf("boss phase %d: needs angles or ring", i))
		}
	}

	return errors.Join(errs...)
}

// Validate checks levels.yaml
func (c *LevelsConfig) Validate() error {
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}

	var errs []error
	seen := make(map[int]bool)
	for _, l := range c.Levels {
		if seen[l.ID] {
			errs = append(errs, fmt.Errorf("level %d defined twice", l.ID))
		}
		seen[l.ID] = true
		if l.NormalWaves < 0 {
			errs = append(errs, fmt.Errorf("level %d: normalWaves must not be negative", l.ID))
		}
		if l.BossHP <= 0 {
			errs = append(errs, fmt.Errorf("level %d: bossHp must be positive", l.ID))
		}
	}
	return errors.Join(errs...)
}
