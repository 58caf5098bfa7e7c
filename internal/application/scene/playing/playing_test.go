package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyraid/internal/application/replay"
	"github.com/younwookim/skyraid/internal/application/scene"
	"github.com/younwookim/skyraid/internal/application/state"
	"github.com/younwookim/skyraid/internal/application/system"
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

const frame = 1.0 / 60.0

// recordingSink is a test double for SoundSink
type recordingSink struct {
	batches int
	events  []entity.Event
}

func (r *recordingSink) Handle(events []entity.Event) {
	r.batches++
	r.events = append(r.events, events...)
}

// memoryStore is a test double for ProgressStore
type memoryStore struct {
	best     int
	unlocked []int
	err      error
}

func (m *memoryStore) HighScore() int { return m.best }

func (m *memoryStore) RecordScore(score int) (bool, error) {
	if score <= m.best {
		return false, m.err
	}
	m.best = score
	return true, m.err
}

func (m *memoryStore) UnlockLevel(id int) (bool, error) {
	m.unlocked = append(m.unlocked, id)
	return true, m.err
}

func loadConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	return cfg
}

func newTestScene(t *testing.T) (*Playing, *recordingSink, *memoryStore) {
	t.Helper()
	sink := &recordingSink{}
	store := &memoryStore{}
	return New(loadConfig(t), 1, 42, sink, store), sink, store
}

func TestNew(t *testing.T) {
	p, _, _ := newTestScene(t)

	assert.Implements(t, (*scene.Scene)(nil), p)
	assert.Implements(t, (*scene.Pauser)(nil), p)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 1, p.Simulation().Level().ID)
	assert.Zero(t, p.Now())

	banner, ok := p.Banner()
	assert.True(t, ok)
	assert.Equal(t, "City Skies", banner)

	w, h := p.Layout(1000, 1000)
	assert.Equal(t, 375, w)
	assert.Equal(t, 667, h)
}

func TestPlaying_StepForwardsEvents(t *testing.T) {
	p, sink, _ := newTestScene(t)

	p.step(frame)

	assert.InDelta(t, frame, p.Now(), 1e-12)
	assert.Equal(t, 1, sink.batches)
	assert.Contains(t, sink.events, entity.Event(entity.WaveStarted{Wave: 1}))

	banner, ok := p.Banner()
	assert.True(t, ok)
	assert.Equal(t, "WAVE 1", banner)
}

func TestPlaying_PauseFreezesClock(t *testing.T) {
	p, sink, _ := newTestScene(t)
	p.step(frame)

	p.Pause()
	assert.Equal(t, state.StatePaused, p.State())

	elapsed := p.Simulation().Elapsed()
	for i := 0; i < 10; i++ {
		p.step(frame)
	}
	assert.InDelta(t, frame, p.Now(), 1e-12)
	assert.Equal(t, elapsed, p.Simulation().Elapsed())
	assert.Equal(t, 1, sink.batches)

	p.state = p.state.TogglePause()
	p.step(frame)
	assert.InDelta(t, 2*frame, p.Now(), 1e-12)
}

func TestPlaying_Feedback(t *testing.T) {
	tests := []struct {
		name   string
		events []entity.Event
		shake  float64
		banner string
	}{
		{"hit", []entity.Event{entity.PlayerHit{Damage: 10}}, shakeHit, "City Skies"},
		{"bomb outshakes hit", []entity.Event{entity.PlayerHit{Damage: 10}, entity.BombUsed{Remaining: 1}}, shakeBomb, "City Skies"},
		{"boss wave", []entity.Event{entity.BossWaveStarted{Wave: 4, Name: "Iron Gull"}}, 0, "WARNING: Iron Gull"},
		{"boss phase", []entity.Event{entity.BossPhaseChanged{Phase: 1, Text: "ANGRY!"}}, shakePhase, "ANGRY!"},
		{"silent", []entity.Event{entity.WaveCompleted{Wave: 1}}, 0, "City Skies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := newTestScene(t)

			p.handleEvents(tt.events)

			assert.Equal(t, tt.shake, p.shake)
			banner, _ := p.Banner()
			assert.Equal(t, tt.banner, banner)
		})
	}
}

func TestPlaying_ShakeDecays(t *testing.T) {
	p, _, _ := newTestScene(t)
	p.handleEvents([]entity.Event{entity.BombUsed{}})

	for i := 0; i < 120; i++ {
		p.step(frame)
	}

	assert.Less(t, p.shake, shakeBomb)
}

func TestPlaying_GameOverAndRestart(t *testing.T) {
	p, _, store := newTestScene(t)
	first := p.Simulation()

	// Score something so the high score moves
	first.World().AddEnemy(entity.NewEnemy(0, entity.KindSmall, 100, 200, entity.EnemyStats{MaxHealth: 10, Score: 25, Width: 30, Height: 30}))
	p.step(frame, system.BombIntent{})
	p.handleEvents([]entity.Event{entity.PlayerDefeated{}})

	assert.Equal(t, state.StateGameOver, p.State())
	assert.Equal(t, 25, store.best)
	assert.True(t, p.newBest)

	now := p.Now()
	p.step(frame)
	assert.Equal(t, now, p.Now(), "a finished run does not tick")

	p.Restart()
	assert.Equal(t, state.StatePlaying, p.State())
	assert.NotSame(t, first, p.Simulation())
	assert.Equal(t, 1, p.Simulation().Level().ID)
	assert.Zero(t, p.Simulation().Score())
	assert.Zero(t, p.Now())
	assert.False(t, p.newBest)
	assert.Equal(t, int64(43), p.seed)
}

func TestPlaying_LevelClearAndAdvance(t *testing.T) {
	p, _, store := newTestScene(t)

	p.handleEvents([]entity.Event{entity.LevelCleared{Level: 1}})

	assert.Equal(t, state.StateLevelClear, p.State())
	assert.Equal(t, []int{2}, store.unlocked)

	p.Advance()
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 2, p.Simulation().Level().ID)

	banner, _ := p.Banner()
	assert.Equal(t, p.Simulation().Level().Name, banner)
}

func TestPlaying_LastLevelRepeats(t *testing.T) {
	cfg := loadConfig(t)
	last := cfg.Levels.MaxID()
	p := New(cfg, last, 1, nil, nil)

	p.handleEvents([]entity.Event{entity.LevelCleared{Level: last}})
	p.Advance()

	assert.Equal(t, last, p.Simulation().Level().ID)
}

func TestPlaying_StoreErrorsAreNotFatal(t *testing.T) {
	p, _, store := newTestScene(t)
	store.err = assert.AnError

	assert.NotPanics(t, func() {
		p.handleEvents([]entity.Event{entity.LevelCleared{Level: 1}})
	})
	assert.Equal(t, state.StateLevelClear, p.State())
}

func TestPlaying_NilCollaborators(t *testing.T) {
	p := New(loadConfig(t), 1, 7, nil, nil)

	assert.NotPanics(t, func() {
		p.step(frame)
		p.handleEvents([]entity.Event{entity.PlayerDefeated{}})
	})
	assert.Equal(t, state.StateGameOver, p.State())
}

func TestPlaying_PauseOnlyFromPlaying(t *testing.T) {
	p, _, _ := newTestScene(t)
	p.handleEvents([]entity.Event{entity.PlayerDefeated{}})

	p.Pause()

	assert.Equal(t, state.StateGameOver, p.State())
}

func TestPlaying_RecordingReplaysToSameScore(t *testing.T) {
	cfg := loadConfig(t)
	path := filepath.Join(t.TempDir(), "run.json")
	p := New(cfg, 1, 5, nil, nil)
	p.EnableRecording(path)

	for i := 0; i < 600; i++ {
		var intents []system.Intent
		if i%120 < 60 {
			intents = append(intents, system.MoveIntent{DX: 1})
		} else {
			intents = append(intents, system.MoveIntent{DX: -1})
		}
		if i == 300 {
			intents = append([]system.Intent{system.BombIntent{}}, intents...)
		}
		p.step(p.tick(), intents...)
	}
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, p.recorder.FrameCount(), len(data.Frames))
	assert.Equal(t, int64(5), data.Seed)

	res, err := replay.Run(cfg, *data)
	require.NoError(t, err)
	assert.Equal(t, p.Simulation().Score(), res.Score)
	assert.Equal(t, p.Simulation().Kills(), res.Kills)
	assert.Equal(t, p.Simulation().Wave(), res.Wave)
}
