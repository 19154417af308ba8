package system

import (
	"github.com/younwookim/coinrun/internal/domain/entity"
	"github.com/younwookim/coinrun/internal/infrastructure/config"
)

// Outcome reports the terminal result of a tick, if any.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDied
	OutcomeCleared
)

// PhysicsSystem advances the simulation by one fixed tick. Velocities
// are displacements per tick; every Step fully integrates and resolves
// one frame before the next is scheduled.
type PhysicsSystem struct {
	cfg   *config.PhysicsConfig
	level *entity.Level
}

// NewPhysicsSystem creates a new physics system for one level
func NewPhysicsSystem(cfg *config.PhysicsConfig, level *entity.Level) *PhysicsSystem {
	return &PhysicsSystem{
		cfg:   cfg,
		level: level,
	}
}

// Step runs the fixed per-tick pipeline. The order is load-bearing: the
// horizontal pass fully resolves before the vertical pass begins, which
// is what keeps the player from clipping corners.
func (s *PhysicsSystem) Step(player *entity.Player, in InputState) Outcome {
	s.applyInput(player, in)
	s.applyGravity(player)
	s.moveX(player)
	s.moveY(player)
	s.updateEnemies()

	if out := s.resolveContacts(player); out != OutcomeNone {
		return out
	}
	if player.Y > s.cfg.World.Height+s.cfg.World.FallMargin {
		return OutcomeDied
	}
	return OutcomeNone
}

// applyInput handles horizontal steering, jump, and the jump-cut.
func (s *PhysicsSystem) applyInput(player *entity.Player, in InputState) {
	switch {
	case in.Left:
		player.VX = -s.cfg.Movement.MoveSpeed
		player.FacingRight = false
	case in.Right:
		player.VX = s.cfg.Movement.MoveSpeed
		player.FacingRight = true
	default:
		// No input decays speed toward zero, never an instant stop.
		player.VX *= s.cfg.Movement.Friction
	}

	// Held jump re-triggers every tick the player is grounded; the
	// vertical pass clears OnGround right after, so a single hold
	// still produces a single jump.
	if in.Jump && player.OnGround {
		player.VY = s.cfg.Jump.Impulse
		player.OnGround = false
		player.Jumping = true
	}

	// Early release halves the remaining upward velocity (short hop).
	if in.JumpReleased && player.VY < -s.cfg.Jump.CutThreshold {
		player.VY *= 0.5
	}
}

// applyGravity accelerates the player downward, clamped to terminal
// velocity. There is no clamp on the upward side beyond the jump
// impulse itself.
func (s *PhysicsSystem) applyGravity(player *entity.Player) {
	player.VY += s.cfg.Gravity.Accel
	if player.VY > s.cfg.Gravity.MaxFallSpeed {
		player.VY = s.cfg.Gravity.MaxFallSpeed
	}
}

// moveX integrates horizontal velocity and pushes the player out of any
// platform to its near edge.
func (s *PhysicsSystem) moveX(player *entity.Player) {
	player.X += player.VX

	for _, e := range s.level.Entities {
		if e.Kind != entity.KindPlatform || e.Dead {
			continue
		}
		if !player.Box().Overlaps(e.Box()) {
			continue
		}
		if player.VX > 0 {
			player.X = e.X - player.W
		} else if player.VX < 0 {
			player.X = e.X + e.W
		}
		player.VX = 0
	}
}

// moveY integrates vertical velocity and snaps the player to platform
// tops (landing) or bottoms (head bump).
func (s *PhysicsSystem) moveY(player *entity.Player) {
	player.OnGround = false
	player.Y += player.VY

	for _, e := range s.level.Entities {
		if e.Kind != entity.KindPlatform || e.Dead {
			continue
		}
		if !player.Box().Overlaps(e.Box()) {
			continue
		}
		if player.VY > 0 {
			player.Y = e.Y - player.H
			player.OnGround = true
			player.Jumping = false
			player.VY = 0
		} else if player.VY < 0 {
			player.Y = e.Y + e.H
			player.VY = 0
		}
	}
}

// updateEnemies advances each live enemy along its patrol. Both range
// checks run every tick, so an enemy already outside its range flips
// instead of diverging further.
func (s *PhysicsSystem) updateEnemies() {
	for _, e := range s.level.Entities {
		if e.Kind != entity.KindEnemy || e.Dead {
			continue
		}
		e.VX = float64(e.Dir) * s.cfg.Enemy.Speed
		e.X += e.VX
		if e.X > e.PatrolMax {
			e.Dir = -1
		}
		if e.X < e.PatrolMin {
			e.Dir = 1
		}
	}
}

// resolveContacts evaluates player-vs-entity interactions: stomp or
// death on enemies, coin pickup, and goal detection. Dead entities are
// skipped, so picking up a coin is a one-shot.
func (s *PhysicsSystem) resolveContacts(player *entity.Player) Outcome {
	for _, e := range s.level.Entities {
		if e.Dead || e.Kind == entity.KindPlatform {
			continue
		}
		if !player.Box().Overlaps(e.Box()) {
			continue
		}

		switch e.Kind {
		case entity.KindEnemy:
			// A shallow downward contact is a stomp; anything else
			// kills the player.
			depth := player.Y + player.H - e.Y
			if player.VY > 0 && depth < s.cfg.Combat.StompTolerance {
				e.Dead = true
				player.VY = s.cfg.Combat.BounceImpulse
				player.Score += s.cfg.Scoring.Stomp
			} else {
				return OutcomeDied
			}
		case entity.KindCoin:
			e.Dead = true
			player.Score += s.cfg.Scoring.Coin
			player.Coins++
		case entity.KindFlag:
			return OutcomeCleared
		}
	}
	return OutcomeNone
}

// CameraX returns the horizontal camera offset that keeps the player at
// the configured anchor ratio from the left edge, clamped to the level.
func (s *PhysicsSystem) CameraX(player *entity.Player) float64 {
	cam := player.X - float64(s.cfg.Display.ScreenWidth)*s.cfg.Camera.AnchorRatio
	maxCam := s.level.Width - float64(s.cfg.Display.ScreenWidth)
	if cam > maxCam {
		cam = maxCam
	}
	if cam < 0 {
		cam = 0
	}
	return cam
}
