package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/nanotween/tween"
	"github.com/plus3/nanotween/tween/debugui"
	tweenebiten "github.com/plus3/nanotween/tween/ebiten"
)

// Game implements ebiten.Game, stepping the tween driver every tick and
// drawing the inspector on top of the scene.
type Game struct {
	driver    *tween.Driver
	loop      *tweenebiten.Loop
	imgui     tweenebiten.ImguiBackend
	inspector *debugui.Inspector
	scene     *scene
}

func (g *Game) Update() error {
	g.imgui.BeginFrame()

	g.handleInput()
	g.loop.Update()
	if tps := ebiten.ActualTPS(); tps > 0 {
		g.inspector.Render(g.driver, float32(1/tps))
	} else {
		g.inspector.Render(g.driver, 0)
	}

	g.imgui.EndFrame()
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.scene.moveTo(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.CancelAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.CancelAll()
		g.scene.populate()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 26, 32, 255})
	g.scene.draw(screen)
	g.imgui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
