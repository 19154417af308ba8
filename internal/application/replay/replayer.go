package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/coinrun/internal/application/system"
)

// Replayer feeds recorded input back, one frame per tick
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Load reads replay data from a file
func Load(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances. The second
// return is false once the recording is exhausted.
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	in := r.data.Frames[r.frame].ToInput()
	r.frame++
	return in, true
}

// Level returns the recorded level index
func (r *Replayer) Level() int {
	return r.data.Level
}

// FrameCount returns the total number of recorded frames
func (r *Replayer) FrameCount() int {
	return len(r.data.Frames)
}
