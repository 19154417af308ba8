// Package session owns the authoritative mutable state of one
// playthrough and drives the physics core once per frame. Everything a
// renderer may see is published as an immutable snapshot per tick; the
// session itself is touched only by the frame callback.
package session

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/coinrun/internal/application/state"
	"github.com/younwookim/coinrun/internal/application/system"
	"github.com/younwookim/coinrun/internal/domain/entity"
	"github.com/younwookim/coinrun/internal/infrastructure/config"
	"github.com/younwookim/coinrun/internal/infrastructure/theme"
)

// Session is one playthrough from start or restart to a terminal
// outcome.
type Session struct {
	cfg      *config.PhysicsConfig
	logger   *log.Logger
	provider theme.Provider
	generate func(*config.PhysicsConfig, int) (*entity.Level, error)

	levelIndex int
	status     state.GameState
	paused     bool
	ticks      uint64

	player  *entity.Player
	level   *entity.Level
	physics *system.PhysicsSystem
	cameraX float64

	theme   theme.Theme
	themeCh chan theme.Theme
}

// New creates a session in the menu state. The theme fetch for the
// first level starts immediately so the menu can show it when it lands.
func New(cfg *config.PhysicsConfig, provider theme.Provider, logger *log.Logger) *Session {
	s := &Session{
		cfg:        cfg,
		logger:     logger,
		provider:   provider,
		generate:   system.GenerateLevel,
		levelIndex: 1,
		status:     state.StateMenu,
		theme:      theme.Fallback(),
	}
	s.fetchTheme()
	return s
}

// Start resets all mutable state and enters Playing. It is the restart
// command as well: player and entity arena are fully replaced, never
// merged, so two restarts in a row produce identical worlds.
func (s *Session) Start() error {
	lvl, err := s.generate(s.cfg, s.levelIndex)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	s.level = lvl
	s.player = entity.NewPlayer(lvl.SpawnX, lvl.SpawnY, s.cfg.Player.Width, s.cfg.Player.Height)
	s.physics = system.NewPhysicsSystem(s.cfg, lvl)
	s.cameraX = s.physics.CameraX(s.player)
	s.paused = false
	s.ticks = 0
	s.status = state.StatePlaying
	s.fetchTheme()
	return nil
}

// Restart is the restart command from a terminal state or mid-run.
func (s *Session) Restart() error {
	return s.Start()
}

// Status returns the current session status.
func (s *Session) Status() state.GameState {
	return s.status
}

// Step advances the session by one tick and publishes the snapshot for
// the renderer. While paused or outside Playing the simulation holds
// still, but theme results are still merged.
func (s *Session) Step(in system.InputState) *Snapshot {
	s.mergeTheme()

	if s.status == state.StatePlaying {
		if in.PausePressed {
			s.paused = !s.paused
		}
		if !s.paused {
			s.tick(in)
		}
	}

	return s.snapshot()
}

// tick runs the physics pipeline once and applies any terminal outcome.
func (s *Session) tick(in system.InputState) {
	out := s.physics.Step(s.player, in)
	s.cameraX = s.physics.CameraX(s.player)
	s.ticks++

	switch out {
	case system.OutcomeDied:
		s.status = state.StateGameOver
		if s.logger != nil {
			s.logger.Info("run over", "ticks", s.ticks, "score", s.player.Score, "coins", s.player.Coins)
		}
	case system.OutcomeCleared:
		s.status = state.StateVictory
		if s.logger != nil {
			s.logger.Info("level cleared", "ticks", s.ticks, "score", s.player.Score, "coins", s.player.Coins)
		}
	}
}

// fetchTheme launches the one-shot theme request for this run.
// Replacing the channel is the generation guard: a response racing a
// restart lands on the superseded channel and is never merged.
func (s *Session) fetchTheme() {
	if s.provider == nil {
		return
	}
	ch := make(chan theme.Theme, 1)
	s.themeCh = ch
	seed := fmt.Sprintf("level-%d", s.levelIndex)
	go func() {
		ch <- s.provider.Request(context.Background(), seed)
	}()
}

// mergeTheme applies a finished theme fetch, if one is pending. Only
// the tick owner calls this, so theme fields have a single writer.
func (s *Session) mergeTheme() {
	if s.themeCh == nil {
		return
	}
	select {
	case th := <-s.themeCh:
		s.theme = th
		s.themeCh = nil
		if s.logger != nil {
			s.logger.Info("level theme ready", "name", th.Name, "color", th.ColorToken)
		}
	default:
	}
}
