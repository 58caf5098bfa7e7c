package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyraid/internal/application/system"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

func loadConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	return cfg
}

func TestFrame_Intents(t *testing.T) {
	tests := []struct {
		name    string
		intents []system.Intent
		frame   Frame
	}{
		{"idle", nil, Frame{F: 3}},
		{"move", []system.Intent{system.MoveIntent{DX: -1, DY: 1}}, Frame{F: 3, DX: -1, DY: 1}},
		{"drag", []system.Intent{system.DragIntent{X: 120, Y: 300}}, Frame{F: 3, Drag: true, X: 120, Y: 300}},
		{"bomb and move", []system.Intent{system.BombIntent{}, system.MoveIntent{DY: 1}}, Frame{F: 3, DY: 1, Bomb: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr := NewFrame(3, tt.intents)
			assert.Equal(t, tt.frame, fr)
			assert.Equal(t, tt.intents, fr.Intents())
		})
	}
}

func TestRecorder_RecordAndStop(t *testing.T) {
	r := NewRecorder(7, 2, 0.5)
	assert.True(t, r.IsRecording())

	r.Record([]system.Intent{system.MoveIntent{DX: 1}})
	r.Record(nil)
	r.Stop()
	r.Record([]system.Intent{system.BombIntent{}})

	assert.False(t, r.IsRecording())
	assert.Equal(t, 2, r.FrameCount())

	data := r.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, 2, data.Level)
	assert.Equal(t, 0.5, data.DT)
	assert.Equal(t, []Frame{{F: 0, DX: 1}, {F: 1}}, data.Frames)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder(99, 1, 1.0/60.0)
	r.Record([]system.Intent{system.DragIntent{X: 10, Y: 20}})
	r.Record([]system.Intent{system.BombIntent{}})

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, r.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, r.Data(), *loaded)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1, 1, 1.0/60.0)
	assert.Error(t, r.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestLoadReplay_Missing(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReplayer_Next(t *testing.T) {
	data := Data{
		Seed: 42,
		Frames: []Frame{
			{F: 0, DX: -1},
			{F: 1, Bomb: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)
	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, int64(42), replayer.Seed())

	intents, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, []system.Intent{system.MoveIntent{DX: -1}}, intents)

	intents, ok = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, []system.Intent{system.BombIntent{}}, intents)

	intents, ok = replayer.Next()
	require.True(t, ok)
	assert.Empty(t, intents)
	assert.Equal(t, 3, replayer.CurrentFrame())

	_, ok = replayer.Next()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	_, ok = replayer.Next()
	assert.True(t, ok)
}

func TestRun_Deterministic(t *testing.T) {
	cfg := loadConfig(t)
	data := CreateTestReplayData(1200, 1)
	for i := range data.Frames {
		if i%90 < 45 {
			data.Frames[i].DX = 1
		} else {
			data.Frames[i].DX = -1
		}
	}
	data.Frames[600].Bomb = true

	first, err := Run(cfg, data)
	require.NoError(t, err)
	second, err := Run(cfg, data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Positive(t, first.Frames)
	assert.GreaterOrEqual(t, first.Wave, 1)
}

func TestRun_StopsWhenFramesRunOut(t *testing.T) {
	res, err := Run(loadConfig(t), CreateTestReplayData(30, 1))

	require.NoError(t, err)
	assert.Equal(t, 30, res.Frames)
	assert.Equal(t, 1, res.Wave)
	assert.False(t, res.Over)
	assert.False(t, res.Complete)
}

func TestRun_BadTick(t *testing.T) {
	data := CreateTestReplayData(10, 1)
	data.DT = 0

	_, err := Run(loadConfig(t), data)
	assert.ErrorIs(t, err, ErrBadTick)
}
