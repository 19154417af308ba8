package state

// GameState represents the current state of a session
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state ends the tick loop. Terminal states
// accept only a restart command.
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateVictory
}
