// Package ebiten drives tweens from the Ebiten game loop and provides the
// Dear ImGui backend used to show the tween inspector on top of a game.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/nanotween/tween"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Loop steps a tween driver once per Ebiten tick. The driver is marked
// inactive while the window is minimized, so tweens started in that state
// complete immediately instead of waiting for frames that the player will
// never see.
type Loop struct {
	Driver *tween.Driver

	// Frame reports the window state; replaceable in tests.
	Frame func() FrameInfo
}

// FrameInfo is the subset of Ebiten's run state that Loop needs.
type FrameInfo struct {
	TPS       int
	Minimized bool
}

// NewLoop creates a loop for driver.
func NewLoop(driver *tween.Driver) *Loop {
	return &Loop{
		Driver: driver,
		Frame:  currentFrame,
	}
}

func currentFrame() FrameInfo {
	return FrameInfo{
		TPS:       ebiten.TPS(),
		Minimized: ebiten.IsWindowMinimized(),
	}
}

// Update advances the driver by one tick. Call it from Game.Update.
//
// With a fixed TPS each tick is 1/TPS seconds, matching how Ebiten calls
// Update. When TPS is synced with the display rate the driver's clock
// measures the frame time instead.
func (l *Loop) Update() {
	frame := l.Frame()
	l.Driver.SetActive(!frame.Minimized)

	if frame.TPS <= 0 {
		l.Driver.Step(l.Driver.Clock.Tick())
		return
	}
	l.Driver.Once(1.0 / float64(frame.TPS))
}
