package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/skyraid/internal/application/system"
)

// Recorder handles intent recording for replay
type Recorder struct {
	data      Data
	recording bool
}

// NewRecorder creates a new recorder for a run of level with seed
func NewRecorder(seed int64, level int, dt float64) *Recorder {
	return &Recorder{
		data: Data{
			Version:   Version,
			Seed:      seed,
			Level:     level,
			DT:        dt,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// Record appends one tick's intents
func (r *Recorder) Record(intents []system.Intent) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, NewFrame(len(r.data.Frames), intents))
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording
func (r *Recorder) Data() Data {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
