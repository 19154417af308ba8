// Package replay records per-frame input and plays it back. The
// simulation is fully deterministic, so a recorded input stream re-runs
// to the identical outcome without any state snapshots.
package replay

import "github.com/younwookim/coinrun/internal/application/system"

// FrameInput records the input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump held
	JR bool `json:"jr,omitempty"` // Jump released this frame
	RS bool `json:"rs,omitempty"` // Restart pressed
	P  bool `json:"p,omitempty"`  // Pause pressed
}

// ToInput converts a recorded frame back into an input state.
func (fi FrameInput) ToInput() system.InputState {
	return system.InputState{
		Left:           fi.L,
		Right:          fi.R,
		Jump:           fi.J,
		JumpReleased:   fi.JR,
		RestartPressed: fi.RS,
		PausePressed:   fi.P,
	}
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
