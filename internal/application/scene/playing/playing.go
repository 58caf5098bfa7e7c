// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/skyraid/internal/application/replay"
	"github.com/younwookim/skyraid/internal/application/scene"
	"github.com/younwookim/skyraid/internal/application/simulation"
	"github.com/younwookim/skyraid/internal/application/state"
	"github.com/younwookim/skyraid/internal/application/system"
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// Feedback tuning
const (
	bannerDuration = 2.0
	shakeDecay     = 0.9
	shakeHit       = 4.0
	shakeBomb      = 10.0
	shakePhase     = 8.0
)

// SoundSink receives every tick's events for audio playback
type SoundSink interface {
	Handle(events []entity.Event)
}

// ProgressStore persists the high score and level unlocks
type ProgressStore interface {
	HighScore() int
	RecordScore(score int) (bool, error)
	UnlockLevel(id int) (bool, error)
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	sim     *simulation.Simulation
	state   state.GameState
	levelID int
	seed    int64

	inputSystem *system.InputSystem
	sounds      SoundSink
	store       ProgressStore

	screenW int
	screenH int

	// now is the scene's simulation clock; it only advances while playing
	now float64

	// Feedback
	shake       float64
	shakeRNG    *rand.Rand
	banner      string
	bannerTimer float64
	newBest     bool

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene for levelID.
// sounds and store may be nil.
func New(cfg *config.GameConfig, levelID int, seed int64, sounds SoundSink, store ProgressStore) *Playing {
	p := &Playing{
		config:      cfg,
		levelID:     levelID,
		seed:        seed,
		inputSystem: system.NewInputSystem(),
		sounds:      sounds,
		store:       store,
		screenW:     cfg.Rules.Display.ScreenWidth,
		screenH:     cfg.Rules.Display.ScreenHeight,
		shakeRNG:    rand.New(rand.NewSource(seed)),
	}
	p.start(levelID)
	return p
}

// start begins a fresh run of levelID
func (p *Playing) start(levelID int) {
	p.sim = simulation.New(p.config, levelID, rand.New(rand.NewSource(p.seed)))
	p.levelID = p.sim.Level().ID
	p.state = state.StatePlaying
	p.now = 0
	p.shake = 0
	p.newBest = false
	p.showBanner(p.sim.Level().Name)

	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.seed, p.levelID, p.tick())
		log.Printf("[Playing] Recording level %d (seed: %d)", p.levelID, p.seed)
	}
}

// EnableRecording records every run to filename, restarting the current run
func (p *Playing) EnableRecording(filename string) {
	p.recordFilename = filename
	p.start(p.levelID)
}

// tick is the fixed update length from the display framerate
func (p *Playing) tick() float64 {
	if fr := p.config.Rules.Display.Framerate; fr > 0 {
		return 1.0 / float64(fr)
	}
	return 1.0 / 60.0
}

// saveRecording writes the current recording, if any
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}
	p.recorder.Stop()

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("[Playing] Failed to save recording: %v", err)
		return
	}
	log.Printf("[Playing] Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			p.state = p.state.TogglePause()
			return nil, nil
		}
		input := p.inputSystem.GetInput()
		p.step(dt, p.inputSystem.Intents(input, dt)...)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			p.state = p.state.TogglePause()
		}
	case state.StateGameOver:
		if confirmPressed() {
			p.Restart()
		}
	case state.StateLevelClear:
		if confirmPressed() {
			p.Advance()
		}
	}

	return nil, nil // nil = stay on this scene
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyZ) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// step advances the simulation one tick and applies presentation feedback
func (p *Playing) step(dt float64, intents ...system.Intent) {
	if !p.state.Ticking() {
		return
	}

	if p.recorder != nil {
		p.recorder.Record(intents)
	}
	events := p.sim.Update(p.now, dt, intents...)
	p.now += dt

	p.shake *= shakeDecay
	if p.shake < 0.1 {
		p.shake = 0
	}
	if p.bannerTimer > 0 {
		p.bannerTimer -= dt
	}

	p.handleEvents(events)
}

func (p *Playing) handleEvents(events []entity.Event) {
	if p.sounds != nil {
		p.sounds.Handle(events)
	}

	for _, ev := range events {
		switch e := ev.(type) {
		case entity.PlayerHit:
			p.addShake(shakeHit)
		case entity.BombUsed:
			p.addShake(shakeBomb)
		case entity.WaveStarted:
			p.showBanner(fmt.Sprintf("WAVE %d", e.Wave))
		case entity.BossWaveStarted:
			p.showBanner(fmt.Sprintf("WARNING: %s", e.Name))
		case entity.BossPhaseChanged:
			p.showBanner(e.Text)
			p.addShake(shakePhase)
		case entity.PlayerDefeated:
			p.state = state.StateGameOver
			p.recordScore()
			p.saveRecording()
		case entity.LevelCleared:
			p.state = state.StateLevelClear
			p.recordScore()
			p.unlockNext()
			p.saveRecording()
		}
	}
}

func (p *Playing) addShake(amount float64) {
	if amount > p.shake {
		p.shake = amount
	}
}

func (p *Playing) showBanner(text string) {
	p.banner = text
	p.bannerTimer = bannerDuration
}

func (p *Playing) recordScore() {
	if p.store == nil {
		return
	}
	best, err := p.store.RecordScore(p.sim.Score())
	if err != nil {
		log.Printf("[Playing] Failed to record score: %v", err)
	}
	p.newBest = best
}

func (p *Playing) unlockNext() {
	if p.store == nil {
		return
	}
	next := system.NextLevel(p.config.Levels, p.levelID)
	if _, err := p.store.UnlockLevel(next); err != nil {
		log.Printf("[Playing] Failed to unlock level %d: %v", next, err)
	}
}

// Restart replays the current level with a new seed
func (p *Playing) Restart() {
	p.seed++
	log.Printf("[Playing] Restarting level %d (seed: %d)", p.levelID, p.seed)
	p.start(p.levelID)
}

// Advance starts the level after the one just cleared.
// The last level repeats.
func (p *Playing) Advance() {
	p.seed++
	next := system.NextLevel(p.config.Levels, p.levelID)
	log.Printf("[Playing] Advancing to level %d", next)
	p.start(next)
}

// Pause freezes the run if it is playing (implements scene.Pauser)
func (p *Playing) Pause() {
	if p.state == state.StatePlaying {
		p.state = state.StatePaused
	}
}

// State returns the scene state
func (p *Playing) State() state.GameState { return p.state }

// Simulation returns the running simulation
func (p *Playing) Simulation() *simulation.Simulation { return p.sim }

// Now returns the scene's simulation clock
func (p *Playing) Now() float64 { return p.now }

// Banner returns the banner text while it is showing
func (p *Playing) Banner() (string, bool) {
	return p.banner, p.bannerTimer > 0
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
