package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/coinrun/internal/application/replay"
	"github.com/younwookim/coinrun/internal/application/session"
	"github.com/younwookim/coinrun/internal/infrastructure/config"
)

// runReplay re-runs a recorded session headless, frame by frame, and
// reports the outcome. The simulation is deterministic, so the same
// recording always ends the same way.
func runReplay(cfg *config.PhysicsConfig, filename string, logger *log.Logger) error {
	data, err := replay.Load(filename)
	if err != nil {
		return fmt.Errorf("load recording: %w", err)
	}
	rp := replay.NewReplayer(*data)
	if rp.Level() != 1 {
		return fmt.Errorf("recording is for level %d, only level 1 exists", rp.Level())
	}

	sess := session.New(cfg, nil, logger)
	if err := sess.Start(); err != nil {
		return err
	}

	logger.Info("replaying", "file", filename, "frames", rp.FrameCount())

	snap := sess.Status()
	var score, coins int
	var ticks uint64
	for {
		in, ok := rp.Next()
		if !ok {
			break
		}
		s := sess.Step(in)
		snap, score, coins, ticks = s.Status, s.Score, s.Coins, s.Ticks
		if s.Status.Terminal() {
			break
		}
	}

	logger.Info("replay finished",
		"status", snap.String(),
		"score", score,
		"coins", coins,
		"ticks", ticks,
	)
	return nil
}
