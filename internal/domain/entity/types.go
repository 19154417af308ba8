package entity

// EntityID is a unique identifier for an entity. IDs are assigned
// sequentially by the level generator and stay stable for the whole
// session, so a restart reproduces the exact same IDs.
type EntityID uint32

// Kind classifies a world entity.
type Kind int

const (
	KindPlatform Kind = iota
	KindEnemy
	KindCoin
	KindFlag
)

// String returns the string representation of the entity kind
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "Platform"
	case KindEnemy:
		return "Enemy"
	case KindCoin:
		return "Coin"
	case KindFlag:
		return "Flag"
	default:
		return "Unknown"
	}
}

// AABB is an axis-aligned bounding box in world coordinates.
// Origin is top-left, y grows downward. Boxes never rotate.
type AABB struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes intersect. Touching edges do not
// count as an overlap, and the test is symmetric.
func (a AABB) Overlaps(b AABB) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Entity is a world object: a platform tile, a patrol enemy, a coin, or
// the goal flag. Entities are created once per session and mutated in
// place; dead entities stay in the collection but are skipped by both
// collision and drawing.
type Entity struct {
	ID   EntityID
	Kind Kind
	X, Y float64
	W, H float64

	VX, VY float64
	Dead   bool

	// Patrol state (enemies only). X is steered back into
	// [PatrolMin, PatrolMax] every tick by flipping Dir.
	PatrolMin float64
	PatrolMax float64
	Dir       int // +1 right, -1 left
}

// Box returns the entity's bounding box.
func (e *Entity) Box() AABB {
	return AABB{X: e.X, Y: e.Y, W: e.W, H: e.H}
}
