// Package storage persists player progress between runs.
//
// Progress is a single YAML document kept in a gdata object property.
// A Store without a gdata manager keeps progress in memory only.
package storage

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrCorrupt is returned when saved progress cannot be decoded
var ErrCorrupt = errors.New("corrupt progress data")

const (
	progressObject   = "progress"
	progressProperty = "best"
)

// Progress is everything remembered across runs
type Progress struct {
	HighScore        int `yaml:"highScore"`
	MaxUnlockedLevel int `yaml:"maxUnlockedLevel"`
}

// DefaultProgress returns the progress of a fresh install
func DefaultProgress() Progress {
	return Progress{MaxUnlockedLevel: 1}
}

// Store loads and saves Progress
type Store struct {
	manager  *gdata.Manager // nil means memory only
	progress Progress
}

// NewStore creates a store and loads saved progress.
// Load failures are logged and leave the defaults in place.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{
		manager:  manager,
		progress: DefaultProgress(),
	}
	if err := s.Load(); err != nil {
		log.Printf("[Storage] Warning: %v (using defaults)", err)
	}
	return s
}

// Load reads saved progress. Missing data is not an error.
func (s *Store) Load() error {
	s.progress = DefaultProgress()
	if s.manager == nil || !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if p.HighScore < 0 {
		p.HighScore = 0
	}
	if p.MaxUnlockedLevel < 1 {
		p.MaxUnlockedLevel = 1
	}
	s.progress = p
	log.Printf("[Storage] Progress loaded: high score %d, level %d", p.HighScore, p.MaxUnlockedLevel)
	return nil
}

// Progress returns a copy of the current progress
func (s *Store) Progress() Progress {
	return s.progress
}

// HighScore returns the best score so far
func (s *Store) HighScore() int {
	return s.progress.HighScore
}

// MaxUnlockedLevel returns the highest playable level id
func (s *Store) MaxUnlockedLevel() int {
	return s.progress.MaxUnlockedLevel
}

// RecordScore keeps score if it beats the high score.
// Returns true when a new high score was written.
func (s *Store) RecordScore(score int) (bool, error) {
	if score <= s.progress.HighScore {
		return false, nil
	}
	s.progress.HighScore = score
	return true, s.save()
}

// UnlockLevel raises the unlocked level to id. Returns true when it changed.
func (s *Store) UnlockLevel(id int) (bool, error) {
	if id <= s.progress.MaxUnlockedLevel {
		return false, nil
	}
	s.progress.MaxUnlockedLevel = id
	return true, s.save()
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}
