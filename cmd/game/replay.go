package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/younwookim/skyraid/internal/application/replay"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// runReplay plays a recording without a window and prints the outcome
func runReplay(cfg *config.GameConfig, filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}
	if data.Version != replay.Version {
		log.Printf("[Replay] Warning: recording version %s, expected %s", data.Version, replay.Version)
	}

	res, err := replay.Run(cfg, *data)
	if err != nil {
		return fmt.Errorf("failed to replay %s: %w", filename, err)
	}
	printResult(os.Stdout, *data, res)
	return nil
}

func printResult(w io.Writer, data replay.Data, res replay.Result) {
	outcome := "incomplete"
	switch {
	case res.Complete:
		outcome = "cleared"
	case res.Over:
		outcome = "defeated"
	}
	fmt.Fprintf(w, "level %d seed %d: %s after %d/%d frames, wave %d, score %d, kills %d\n",
		data.Level, data.Seed, outcome, res.Frames, len(data.Frames), res.Wave, res.Score, res.Kills)
}
