package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/skyraid/internal/domain/entity"
)

const sampleRate = beep.SampleRate(44100)

// SoundPlayer plays event sounds through the system speaker.
// Until Init succeeds it drops every sound.
type SoundPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundPlayer creates a player with the given volume (0..1)
func NewSoundPlayer(volume float64) *SoundPlayer {
	return &SoundPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *SoundPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[Audio] Speaker ready at %d Hz", sampleRate)
	return nil
}

// SetMuted silences or restores playback
func (p *SoundPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether playback is silenced
func (p *SoundPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Handle queues the sound of every audible event
func (p *SoundPlayer) Handle(events []entity.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	played := make(map[Sound]bool)
	for _, ev := range events {
		s, ok := SoundFor(ev)
		if !ok || played[s] {
			continue
		}
		played[s] = true

		st, err := Streamer(s, sampleRate, p.volume)
		if err != nil {
			log.Printf("[Audio] Warning: %v", err)
			continue
		}
		speaker.Lock()
		p.mixer.Add(st)
		speaker.Unlock()
	}
}

// Close stops playback and releases the speaker
func (p *SoundPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
