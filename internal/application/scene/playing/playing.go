// Package playing provides the main gameplay scene. It is a pure
// consumer of session snapshots: input goes in, one snapshot comes out
// per frame, and everything on screen is drawn from that snapshot.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/charmbracelet/log"

	"github.com/younwookim/coinrun/internal/application/replay"
	"github.com/younwookim/coinrun/internal/application/scene"
	"github.com/younwookim/coinrun/internal/application/session"
	"github.com/younwookim/coinrun/internal/application/state"
	"github.com/younwookim/coinrun/internal/application/system"
	"github.com/younwookim/coinrun/internal/domain/entity"
)

// Colors for rendering
var (
	colorPlatform = color.RGBA{80, 80, 100, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorCoin     = color.RGBA{255, 215, 0, 255}
	colorFlag     = color.RGBA{100, 180, 255, 255}
	colorHitbox   = color.RGBA{200, 200, 100, 128}
)

// backgrounds maps the theme color token to a sky color. Unknown
// tokens fall back to the dusk sky so a creative provider cannot
// break rendering.
var backgrounds = map[string]color.RGBA{
	"sky-dusk":   {26, 26, 46, 255},
	"sky-day":    {96, 150, 210, 255},
	"sky-night":  {12, 12, 28, 255},
	"neon-green": {10, 30, 18, 255},
	"lava-red":   {46, 16, 12, 255},
	"cave-gray":  {36, 36, 40, 255},
}

// Playing drives one run of the session and renders its snapshots.
type Playing struct {
	sess        *session.Session
	inputSystem *system.InputSystem
	snap        *session.Snapshot
	screenW     int
	screenH     int

	// Input recording
	recorder   *replay.Recorder
	recordPath string

	debugHitboxes bool
}

// New creates the gameplay scene for an already started session.
// recorder may be nil; when set, every frame's input is recorded and
// saved to recordPath on exit or when the run ends.
func New(sess *session.Session, recorder *replay.Recorder, recordPath string, screenW, screenH int) *Playing {
	return &Playing{
		sess:        sess,
		inputSystem: system.NewInputSystem(),
		screenW:     screenW,
		screenH:     screenH,
		recorder:    recorder,
		recordPath:  recordPath,
	}
}

// Update feeds one frame of input to the session (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	in := p.inputSystem.Sample()
	p.debugHitboxes = in.DebugHitboxes

	if p.recorder != nil && p.sess.Status() == state.StatePlaying {
		p.recorder.RecordFrame(in)
	}

	if p.sess.Status().Terminal() {
		p.saveRecording()
		if in.RestartPressed {
			if err := p.sess.Restart(); err != nil {
				return nil, fmt.Errorf("restart run: %w", err)
			}
			if p.recordPath != "" {
				p.recorder = replay.NewRecorder(1)
			}
		}
	}

	p.snap = p.sess.Step(in)
	return nil, nil
}

// saveRecording stops and writes the current recording, once.
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}
	p.recorder.Stop()

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		log.Error("save recording failed", "err", err)
	} else {
		log.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
	p.recorder = nil
}

// Draw renders the snapshot (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.snap == nil {
		return
	}
	snap := p.snap

	bg, ok := backgrounds[snap.Theme.ColorToken]
	if !ok {
		bg = backgrounds["sky-dusk"]
	}
	screen.Fill(bg)

	camX := snap.CameraX
	p.drawEntities(screen, snap, camX)
	p.drawPlayer(screen, snap, camX)
	p.drawHUD(screen, snap)

	switch {
	case snap.Status == state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nScore: %d  Coins: %d\n\nPress R to restart", snap.Score, snap.Coins))
	case snap.Status == state.StateVictory:
		p.drawOverlay(screen, color.RGBA{0, 80, 40, 180},
			fmt.Sprintf("LEVEL CLEAR!\n\nScore: %d  Coins: %d\n\nPress R to play again", snap.Score, snap.Coins))
	case snap.Paused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	}
}

func (p *Playing) drawEntities(screen *ebiten.Image, snap *session.Snapshot, camX float64) {
	for _, e := range snap.Entities {
		if e.Dead {
			continue
		}
		// Cull off-screen entities
		if e.X+e.W < camX || e.X > camX+float64(p.screenW) {
			continue
		}

		var c color.Color
		switch e.Kind {
		case entity.KindPlatform:
			c = colorPlatform
		case entity.KindEnemy:
			c = colorEnemy
		case entity.KindCoin:
			c = colorCoin
		case entity.KindFlag:
			c = colorFlag
		}

		ebitenutil.DrawRect(screen, e.X-camX, e.Y, e.W, e.H, c)
		if p.debugHitboxes {
			p.drawBoxOutline(screen, e.X-camX, e.Y, e.W, e.H)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, snap *session.Snapshot, camX float64) {
	pl := snap.Player
	x := pl.X - camX
	ebitenutil.DrawRect(screen, x, pl.Y, pl.W, pl.H, colorPlayer)

	// Facing marker: a small block on the leading edge
	eyeW, eyeY := 6.0, pl.Y+10
	if pl.FacingRight {
		ebitenutil.DrawRect(screen, x+pl.W-eyeW, eyeY, eyeW, 6, color.RGBA{255, 255, 255, 255})
	} else {
		ebitenutil.DrawRect(screen, x, eyeY, eyeW, 6, color.RGBA{255, 255, 255, 255})
	}

	if p.debugHitboxes {
		p.drawBoxOutline(screen, x, pl.Y, pl.W, pl.H)
	}
}

func (p *Playing) drawBoxOutline(screen *ebiten.Image, x, y, w, h float64) {
	ebitenutil.DrawLine(screen, x, y, x+w, y, colorHitbox)
	ebitenutil.DrawLine(screen, x+w, y, x+w, y+h, colorHitbox)
	ebitenutil.DrawLine(screen, x+w, y+h, x, y+h, colorHitbox)
	ebitenutil.DrawLine(screen, x, y+h, x, y, colorHitbox)
}

func (p *Playing) drawHUD(screen *ebiten.Image, snap *session.Snapshot) {
	hud := fmt.Sprintf("Score: %d  Coins: %d", snap.Score, snap.Coins)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	if snap.Theme.Name != "" {
		ebitenutil.DebugPrintAt(screen, snap.Theme.Name, 10, 26)
	}
	if p.recorder != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-70, 10)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-80, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
