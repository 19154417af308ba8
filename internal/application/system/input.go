package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem collapses hardware key events into a held-keys snapshot
// once per frame. The physics core only ever sees InputState and never
// touches the keyboard.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState is the held-keys set for one tick. JumpReleased is the
// one-shot "early jump release" message that enables variable jump
// height; it is delivered to physics, which owns all kinematics.
type InputState struct {
	Left         bool
	Right        bool
	Jump         bool
	JumpReleased bool

	StartPressed   bool
	RestartPressed bool
	PausePressed   bool
	DebugHitboxes  bool
}

// Sample reads the current input state. Arrows and WASD both steer,
// Space also jumps, R or Enter restarts.
func (s *InputSystem) Sample() InputState {
	return InputState{
		Left: ebiten.IsKeyPressed(ebiten.KeyA) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump: ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
			ebiten.IsKeyPressed(ebiten.KeySpace),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeyW) ||
			inpututil.IsKeyJustReleased(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustReleased(ebiten.KeySpace),
		StartPressed: inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),
		RestartPressed: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		PausePressed:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		DebugHitboxes: ebiten.IsKeyPressed(ebiten.KeyTab),
	}
}
