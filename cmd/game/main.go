package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/younwookim/skyraid/internal/application/game"
	"github.com/younwookim/skyraid/internal/application/scene/playing"
	"github.com/younwookim/skyraid/internal/infrastructure/audio"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
	"github.com/younwookim/skyraid/internal/infrastructure/storage"
)

const appName = "skyraid"

// loadConfig reads configs from dir, or from the embedded copy when dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// startLevel clamps the requested level to what the player has unlocked
func startLevel(requested, unlocked int) int {
	if requested < 1 {
		return 1
	}
	if requested > unlocked {
		log.Printf("[Main] Level %d is locked, starting level %d", requested, unlocked)
		return unlocked
	}
	return requested
}

func main() {
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded set")
	levelFlag := flag.Int("level", 1, "Level to start")
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 = time based)")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the result")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, *replayFlag); err != nil {
			log.Fatal(err)
		}
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Main] Warning: save data unavailable: %v", err)
		manager = nil
	}
	store := storage.NewStore(manager)

	sounds := audio.NewSoundPlayer(0.4)
	if *muteFlag {
		sounds.SetMuted(true)
	} else if err := sounds.Init(); err != nil {
		log.Printf("[Main] Warning: audio disabled: %v", err)
	}
	defer sounds.Close()

	level := startLevel(*levelFlag, store.MaxUnlockedLevel())
	scene := playing.New(cfg, level, seed, sounds, store)
	if *recordFlag != "" {
		scene.EnableRecording(*recordFlag)
	}

	display := cfg.Rules.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Sky Raid")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
