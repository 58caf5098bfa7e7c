// Package audio turns simulation events into short synthesized sound effects.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/younwookim/skyraid/internal/domain/entity"
)

// Sound identifies a sound effect
type Sound int

const (
	SoundExplosion Sound = iota
	SoundHit
	SoundDefeat
	SoundBomb
	SoundPowerUp
	SoundWave
	SoundBossAlarm
	SoundBossPhase
	SoundVictory
)

func (s Sound) String() string {
	switch s {
	case SoundExplosion:
		return "Explosion"
	case SoundHit:
		return "Hit"
	case SoundDefeat:
		return "Defeat"
	case SoundBomb:
		return "Bomb"
	case SoundPowerUp:
		return "PowerUp"
	case SoundWave:
		return "Wave"
	case SoundBossAlarm:
		return "BossAlarm"
	case SoundBossPhase:
		return "BossPhase"
	case SoundVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// SoundFor maps an event to its sound. Silent events return false.
func SoundFor(ev entity.Event) (Sound, bool) {
	switch ev.(type) {
	case entity.EnemyDestroyed:
		return SoundExplosion, true
	case entity.PlayerHit:
		return SoundHit, true
	case entity.PlayerDefeated:
		return SoundDefeat, true
	case entity.BombUsed:
		return SoundBomb, true
	case entity.PowerUpCollected:
		return SoundPowerUp, true
	case entity.WaveStarted:
		return SoundWave, true
	case entity.BossWaveStarted:
		return SoundBossAlarm, true
	case entity.BossPhaseChanged:
		return SoundBossPhase, true
	case entity.BossDefeated, entity.LevelCleared:
		return SoundVictory, true
	}
	return 0, false
}

// note is one tone of a sound effect
type note struct {
	freq float64
	dur  time.Duration
}

var sounds = map[Sound][]note{
	SoundExplosion: {{110, 60 * time.Millisecond}, {70, 80 * time.Millisecond}},
	SoundHit:       {{220, 50 * time.Millisecond}},
	SoundDefeat:    {{392, 150 * time.Millisecond}, {311, 150 * time.Millisecond}, {196, 300 * time.Millisecond}},
	SoundBomb:      {{90, 250 * time.Millisecond}},
	SoundPowerUp:   {{659, 60 * time.Millisecond}, {988, 90 * time.Millisecond}},
	SoundWave:      {{523, 100 * time.Millisecond}},
	SoundBossAlarm: {{440, 200 * time.Millisecond}, {330, 200 * time.Millisecond}, {440, 200 * time.Millisecond}},
	SoundBossPhase: {{294, 120 * time.Millisecond}, {370, 160 * time.Millisecond}},
	SoundVictory:   {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 240 * time.Millisecond}},
}

// Duration returns how long a sound plays
func Duration(s Sound) time.Duration {
	var d time.Duration
	for _, n := range sounds[s] {
		d += n.dur
	}
	return d
}

// Streamer builds a fresh streamer for a sound at the given volume (0..1)
func Streamer(s Sound, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := sounds[s]
	if !ok {
		return nil, fmt.Errorf("unknown sound %d", s)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s tone: %w", s, err)
		}
		parts = append(parts, beep.Take(rate.N(n.dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales a streamer linearly; zero or less is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
