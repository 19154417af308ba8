package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/coinrun/internal/application/replay"
	"github.com/younwookim/coinrun/internal/application/session"
	"github.com/younwookim/coinrun/internal/application/system"
	"github.com/younwookim/coinrun/internal/infrastructure/config"
)

func loadTestPhysics(t *testing.T) *config.PhysicsConfig {
	t.Helper()
	cfg, err := config.NewLoader("configs").LoadAll()
	require.NoError(t, err)
	return cfg.Physics
}

func TestRunReplay_RoundTrip(t *testing.T) {
	cfg := loadTestPhysics(t)
	logger := log.New(io.Discard)

	// Record a short run: hold right for two seconds of frames.
	rec := replay.NewRecorder(1)
	for i := 0; i < 120; i++ {
		rec.RecordFrame(system.InputState{Right: true, Jump: i < 5})
	}
	rec.Stop()

	file := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(file))

	err := runReplay(cfg, file, logger)
	assert.NoError(t, err)
}

func TestReplay_DeterministicOutcome(t *testing.T) {
	cfg := loadTestPhysics(t)

	rec := replay.NewRecorder(1)
	for i := 0; i < 180; i++ {
		rec.RecordFrame(system.InputState{Right: true, Jump: i%40 < 6})
	}

	// Feed the same recording through two fresh sessions.
	runOnce := func() *session.Snapshot {
		rp := replay.NewReplayer(rec.Data())
		sess := session.New(cfg, nil, nil)
		require.NoError(t, sess.Start())

		var snap *session.Snapshot
		for {
			in, ok := rp.Next()
			if !ok {
				break
			}
			snap = sess.Step(in)
			if snap.Status.Terminal() {
				break
			}
		}
		return snap
	}

	first := runOnce()
	second := runOnce()
	assert.Equal(t, first, second, "identical inputs must produce identical runs")
}

func TestRunReplay_MissingFile(t *testing.T) {
	cfg := loadTestPhysics(t)
	logger := log.New(io.Discard)

	err := runReplay(cfg, filepath.Join(t.TempDir(), "absent.json"), logger)
	assert.Error(t, err)
}

func TestRunReplay_RejectsUnknownLevel(t *testing.T) {
	cfg := loadTestPhysics(t)
	logger := log.New(io.Discard)

	rec := replay.NewRecorder(7)
	rec.RecordFrame(system.InputState{Right: true})
	file := filepath.Join(t.TempDir(), "bad-level.json")
	require.NoError(t, rec.Save(file))

	err := runReplay(cfg, file, logger)
	assert.Error(t, err)
}
