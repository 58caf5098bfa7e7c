package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/younwookim/skyraid/internal/application/simulation"
	"github.com/younwookim/skyraid/internal/application/system"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// ErrBadTick is returned for recordings without a positive tick length
var ErrBadTick = errors.New("replay tick length must be positive")

// Replayer hands out recorded intents tick by tick
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the intents for the current tick and advances
func (r *Replayer) Next() ([]system.Intent, bool) {
	if r.frame >= len(r.data.Frames) {
		return nil, false
	}
	fr := r.data.Frames[r.frame]
	r.frame++
	return fr.Intents(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Result summarizes a replayed run
type Result struct {
	Frames   int
	Score    int
	Kills    int
	Wave     int
	Over     bool
	Complete bool
}

// Run replays data against cfg without a window. Playback stops at the
// last frame or when the run ends.
func Run(cfg *config.GameConfig, data Data) (Result, error) {
	if data.DT <= 0 {
		return Result{}, ErrBadTick
	}

	sim := simulation.New(cfg, data.Level, rand.New(rand.NewSource(data.Seed)))
	r := NewReplayer(data)
	now := 0.0

	for !sim.Over() && !sim.Complete() {
		intents, ok := r.Next()
		if !ok {
			break
		}
		sim.Update(now, data.DT, intents...)
		now += data.DT
	}

	return Result{
		Frames:   r.CurrentFrame(),
		Score:    sim.Score(),
		Kills:    sim.Kills(),
		Wave:     sim.Wave(),
		Over:     sim.Over(),
		Complete: sim.Complete(),
	}, nil
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, level int) Data {
	data := Data{
		Version: Version,
		Seed:    12345,
		Level:   level,
		DT:      1.0 / 60.0,
		Frames:  make([]Frame, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = Frame{F: i}
	}
	return data
}
