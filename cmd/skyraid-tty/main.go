// Command skyraid-tty plays the shooter in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/younwookim/skyraid/internal/application/simulation"
	"github.com/younwookim/skyraid/internal/application/system"
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/infrastructure/audio"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
	"github.com/younwookim/skyraid/internal/infrastructure/storage"
)

const (
	tick           = time.Second / 30
	bannerDuration = 2.0
)

// session drives one terminal play session across runs
type session struct {
	cfg    *config.GameConfig
	sim    *simulation.Simulation
	seed   int64
	store  *storage.Store
	sounds *audio.SoundPlayer
	input  keyInput

	now         float64
	paused      bool
	banner      string
	bannerTimer float64
}

func newSession(cfg *config.GameConfig, level int, seed int64, store *storage.Store, sounds *audio.SoundPlayer) *session {
	s := &session{cfg: cfg, seed: seed, store: store, sounds: sounds}
	s.start(level)
	return s
}

func (s *session) start(level int) {
	s.sim = simulation.New(s.cfg, level, rand.New(rand.NewSource(s.seed)))
	s.now = 0
	s.paused = false
	s.input.reset()
	s.show(s.sim.Level().Name)
}

func (s *session) show(text string) {
	s.banner = text
	s.bannerTimer = bannerDuration
}

// finished reports whether the current run has ended
func (s *session) finished() bool {
	return s.sim.Over() || s.sim.Complete()
}

// confirm restarts a lost run or advances past a cleared one
func (s *session) confirm() {
	switch {
	case s.sim.Over():
		s.seed++
		s.start(s.sim.Level().ID)
	case s.sim.Complete():
		s.seed++
		s.start(system.NextLevel(s.cfg.Levels, s.sim.Level().ID))
	}
}

// step advances the run by dt unless it is paused or finished
func (s *session) step(dt float64) {
	if s.paused || s.finished() {
		return
	}
	events := s.sim.Update(s.now, dt, s.input.intents(dt)...)
	s.now += dt
	if s.bannerTimer > 0 {
		s.bannerTimer -= dt
	}

	if s.sounds != nil {
		s.sounds.Handle(events)
	}
	for _, ev := range events {
		switch e := ev.(type) {
		case entity.WaveStarted:
			s.show(fmt.Sprintf("WAVE %d", e.Wave))
		case entity.BossWaveStarted:
			s.show(fmt.Sprintf("WARNING: %s", e.Name))
		case entity.BossPhaseChanged:
			s.show(e.Text)
		case entity.PlayerDefeated:
			s.record(false)
		case entity.LevelCleared:
			s.record(true)
		}
	}
}

func (s *session) record(cleared bool) {
	if s.store == nil {
		return
	}
	if _, err := s.store.RecordScore(s.sim.Score()); err != nil {
		log.Printf("[TTY] Failed to record score: %v", err)
	}
	if cleared {
		next := system.NextLevel(s.cfg.Levels, s.sim.Level().ID)
		if _, err := s.store.UnlockLevel(next); err != nil {
			log.Printf("[TTY] Failed to unlock level %d: %v", next, err)
		}
	}
}

// status returns the centered message for the current frame
func (s *session) status() string {
	switch {
	case s.sim.Over():
		return fmt.Sprintf("GAME OVER  score %d  best %d  [r] retry", s.sim.Score(), s.best())
	case s.sim.Complete():
		return fmt.Sprintf("LEVEL CLEAR  score %d  best %d  [enter] next", s.sim.Score(), s.best())
	case s.paused:
		return "PAUSED  [p] resume"
	case s.bannerTimer > 0:
		return s.banner
	}
	return ""
}

func (s *session) best() int {
	if s.store == nil {
		return s.sim.Score()
	}
	return max(s.store.HighScore(), s.sim.Score())
}

func main() {
	configDir := flag.String("config", "cmd/game/configs", "Config directory")
	levelFlag := flag.Int("level", 1, "Level to start")
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 = time based)")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	logFile := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	// The terminal is the display; keep log output off it
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.NewLoader(*configDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	manager, err := gdata.Open(gdata.Config{AppName: "skyraid"})
	if err != nil {
		log.Printf("[TTY] Warning: save data unavailable: %v", err)
		manager = nil
	}
	store := storage.NewStore(manager)

	sounds := audio.NewSoundPlayer(0.4)
	if *muteFlag {
		sounds.SetMuted(true)
	} else if err := sounds.Init(); err != nil {
		log.Printf("[TTY] Warning: audio disabled: %v", err)
	}
	defer sounds.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	level := min(max(*levelFlag, 1), store.MaxUnlockedLevel())
	run(screen, newSession(cfg, level, seed, store, sounds))
}

// run is the terminal event loop. It returns when the player quits.
func run(screen tcell.Screen, s *session) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	field := s.cfg.Rules.Playfield
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch s.input.handle(ev) {
				case actionQuit:
					return
				case actionPause:
					if !s.finished() {
						s.paused = !s.paused
					}
				case actionConfirm:
					s.confirm()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			s.step(tick.Seconds())
			cols, rows := screen.Size()
			render(screen, viewport{fieldW: field.Width, fieldH: field.Height, cols: cols, rows: rows}, s.sim, s.status())
		}
	}
}
