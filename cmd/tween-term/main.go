// Command tween-term animates a column of progress bars in the terminal,
// one tween per bar, and plays a short tone whenever a bar completes.
//
// Keys: 1-9 cancel a bar, p pauses the clock, +/- change the time scale,
// r restarts every bar, q or Esc quits.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/nanotween/tween"
)

func main() {
	bars := flag.Int("bars", 8, "Number of animated bars (at most 9).")
	fps := flag.Int("fps", 30, "Frames per second.")
	presetPath := flag.String("presets", "", "Optional YAML file of tween presets, one per bar.")
	mute := flag.Bool("mute", false, "Disable the completion tone.")
	flag.Parse()

	presets, err := loadPresets(*presetPath)
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	app := newApp(screen, min(max(*bars, 1), 9), presets)
	if !*mute {
		if err := app.initAudio(); err != nil {
			// Non-fatal, the bars run silently
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer speaker.Close()
		}
	}
	app.restart()
	app.run(time.Second / time.Duration(max(*fps, 1)))
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

const sampleRate = beep.SampleRate(44100)

func (a *app) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audio = true
	}
	return err
}

// playTone plays a short sine tone, higher for lower rows.
func (a *app) playTone(row int) {
	if !a.audio {
		return
	}
	sine, err := generators.SineTone(sampleRate, 440+float64(a.rows()-row)*110)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

func (a *app) run(frame time.Duration) {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.updater.Update(a.clock.Tick())
			a.draw()
		}
	}
}
