// Package menu provides the title screen scene.
package menu

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/coinrun/internal/application/replay"
	"github.com/younwookim/coinrun/internal/application/scene"
	"github.com/younwookim/coinrun/internal/application/scene/playing"
	"github.com/younwookim/coinrun/internal/application/session"
	"github.com/younwookim/coinrun/internal/application/system"
)

var (
	colorMenuBG    = color.RGBA{26, 26, 46, 255}
	colorMenuCoin  = color.RGBA{255, 215, 0, 255}
	colorMenuFloor = color.RGBA{80, 80, 100, 255}
)

// Menu shows the title and the fetched level theme until the player
// starts a run. Stepping the idle session here keeps theme results
// merging while the menu is up.
type Menu struct {
	sess        *session.Session
	inputSystem *system.InputSystem
	recordPath  string
	screenW     int
	screenH     int
	snap        *session.Snapshot
}

// New creates the title scene in front of the given session.
// If recordPath is not empty, the run started from here is recorded.
func New(sess *session.Session, recordPath string, screenW, screenH int) *Menu {
	return &Menu{
		sess:        sess,
		inputSystem: system.NewInputSystem(),
		recordPath:  recordPath,
		screenW:     screenW,
		screenH:     screenH,
	}
}

// Update waits for the start command and hands off to the playing
// scene once the session is running.
func (m *Menu) Update() (scene.Scene, error) {
	in := m.inputSystem.Sample()
	m.snap = m.sess.Step(in)

	if !in.StartPressed {
		return nil, nil
	}

	if err := m.sess.Start(); err != nil {
		return nil, fmt.Errorf("start run: %w", err)
	}

	var rec *replay.Recorder
	if m.recordPath != "" {
		rec = replay.NewRecorder(1)
	}
	return playing.New(m.sess, rec, m.recordPath, m.screenW, m.screenH), nil
}

// Draw renders the title screen.
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorMenuBG)

	// A little diorama so the menu is not just text.
	floorY := float64(m.screenH) * 0.75
	ebitenutil.DrawRect(screen, 0, floorY, float64(m.screenW), 8, colorMenuFloor)
	ebitenutil.DrawRect(screen, float64(m.screenW)/2-12, floorY-40, 24, 24, colorMenuCoin)

	themeName, themeDesc := "", ""
	if m.snap != nil {
		themeName = m.snap.Theme.Name
		themeDesc = m.snap.Theme.Description
	}
	title := fmt.Sprintf("COIN RUN\n\nLevel 1: %s\n%s\n\nPress Enter to start",
		themeName, themeDesc)
	ebitenutil.DebugPrintAt(screen, title, m.screenW/2-140, m.screenH/3)

	controls := "A/D or Arrows: Move | W/Up/Space: Jump | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 10, m.screenH-20)
}

// OnEnter is called when entering this scene
func (m *Menu) OnEnter() {}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}
