package entity

import "fmt"

// Level holds the static world for one session: dimensions, spawn point
// and the entity arena. The arena is create-once: entities are never
// removed, only flagged dead, so iteration order and IDs stay stable.
type Level struct {
	Index    int
	Width    float64
	Height   float64
	TileSize float64
	SpawnX   float64
	SpawnY   float64
	Entities []*Entity
}

// Flag returns the goal flag entity, or nil if the level has none.
func (l *Level) Flag() *Entity {
	for _, e := range l.Entities {
		if e.Kind == KindFlag {
			return e
		}
	}
	return nil
}

// Validate checks entity configuration invariants at construction time.
// A malformed patrol range or size is a latent defect; catching it here
// keeps the per-tick path free of assertions.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %d: non-positive dimensions %gx%g", l.Index, l.Width, l.Height)
	}
	for _, e := range l.Entities {
		if e.W <= 0 || e.H <= 0 {
			return fmt.Errorf("entity %d (%s): non-positive size %gx%g", e.ID, e.Kind, e.W, e.H)
		}
		if e.Kind != KindEnemy {
			continue
		}
		if e.PatrolMin > e.PatrolMax {
			return fmt.Errorf("entity %d (%s): patrol range [%g, %g] inverted", e.ID, e.Kind, e.PatrolMin, e.PatrolMax)
		}
		if e.Dir != 1 && e.Dir != -1 {
			return fmt.Errorf("entity %d (%s): patrol direction %d", e.ID, e.Kind, e.Dir)
		}
	}
	return nil
}
