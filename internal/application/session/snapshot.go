package session

import (
	"github.com/younwookim/coinrun/internal/application/state"
	"github.com/younwookim/coinrun/internal/domain/entity"
	"github.com/younwookim/coinrun/internal/infrastructure/theme"
)

// Snapshot is the read-only view published to the presentation layer
// once per tick. The renderer draws from it and feeds nothing back;
// dead entities are included and filtered at draw time.
type Snapshot struct {
	Status  state.GameState
	Paused  bool
	Ticks   uint64
	Score   int
	Coins   int
	CameraX float64

	LevelWidth  float64
	LevelHeight float64

	Player   PlayerView
	Entities []EntityView
	Theme    theme.Theme
}

// PlayerView is the renderer's view of the player.
type PlayerView struct {
	X, Y, W, H  float64
	VX, VY      float64
	FacingRight bool
	OnGround    bool
}

// EntityView is the renderer's view of one world entity.
type EntityView struct {
	ID         entity.EntityID
	Kind       entity.Kind
	X, Y, W, H float64
	Dead       bool
}

func (s *Session) snapshot() *Snapshot {
	snap := &Snapshot{
		Status:  s.status,
		Paused:  s.paused,
		Ticks:   s.ticks,
		CameraX: s.cameraX,
		Theme:   s.theme,
	}

	// Before the first start there is no world to publish.
	if s.level == nil || s.player == nil {
		return snap
	}

	snap.Score = s.player.Score
	snap.Coins = s.player.Coins
	snap.LevelWidth = s.level.Width
	snap.LevelHeight = s.level.Height
	snap.Player = PlayerView{
		X: s.player.X, Y: s.player.Y,
		W: s.player.W, H: s.player.H,
		VX: s.player.VX, VY: s.player.VY,
		FacingRight: s.player.FacingRight,
		OnGround:    s.player.OnGround,
	}

	snap.Entities = make([]EntityView, 0, len(s.level.Entities))
	for _, e := range s.level.Entities {
		snap.Entities = append(snap.Entities, EntityView{
			ID:   e.ID,
			Kind: e.Kind,
			X:    e.X, Y: e.Y, W: e.W, H: e.H,
			Dead: e.Dead,
		})
	}
	return snap
}
