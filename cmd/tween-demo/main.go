// Command tween-demo opens an Ebiten window with a handful of animated
// shapes and the tween inspector overlay.
//
// Right-click moves the player orb to the cursor, Space cancels every tween
// and R restarts the scene.
package main

import (
	"flag"
	"log"
	"os"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/nanotween/tween"
	"github.com/plus3/nanotween/tween/debugui"
	tweenebiten "github.com/plus3/nanotween/tween/ebiten"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	presetPath := flag.String("presets", "", "Optional YAML file of tween presets used by the scene.")
	tps := flag.Int("tps", ebiten.DefaultTPS, "Ticks per second; a negative value syncs updates with the display.")
	flag.Parse()

	presets, err := loadPresets(*presetPath)
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tween Demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(*tps)

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Tween Demo", ScreenWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("")

	driver := tween.NewDriver()
	game := &Game{
		driver:    driver,
		loop:      tweenebiten.NewLoop(driver),
		imgui:     tweenebiten.ImguiBackend{EbitenBackend: backend},
		inspector: debugui.NewInspector(120, 64),
		scene:     newScene(driver, presets),
	}
	game.scene.populate()

	log.Printf("Running demo with %d tweens", driver.Len())
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadPresets(path string) ([]tween.Preset, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tween.LoadPresets(f)
}
