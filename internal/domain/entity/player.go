package entity

// Player is the controlled entity. Velocity is displacement per tick and
// is added directly to position each frame; the physics system owns all
// kinematic fields.
type Player struct {
	X, Y float64
	W, H float64

	VX, VY float64

	OnGround    bool
	Jumping     bool
	FacingRight bool

	Score int
	Coins int
}

// NewPlayer creates a player at the given spawn position.
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		X:           x,
		Y:           y,
		W:           w,
		H:           h,
		FacingRight: true,
	}
}

// Box returns the player's bounding box.
func (p *Player) Box() AABB {
	return AABB{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
