package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/nanotween/tween"
)

type orb struct {
	X, Y   float64
	Radius float32
	Color  color.RGBA
}

type bar struct {
	Y     float32
	Width float64
	Color color.RGBA
}

type scene struct {
	driver  *tween.Driver
	presets []tween.Preset

	player orb
	move   tween.Handle
	orbs   []*orb
	bars   []*bar
}

func newScene(driver *tween.Driver, presets []tween.Preset) *scene {
	return &scene{driver: driver, presets: presets}
}

// populate resets every shape and starts its looping tweens.
func (s *scene) populate() {
	s.player = orb{X: ScreenWidth / 2, Y: ScreenHeight / 2, Radius: 18, Color: color.RGBA{240, 200, 80, 255}}
	s.move = tween.Invalid
	s.orbs = s.orbs[:0]
	s.bars = s.bars[:0]

	for i := range 6 {
		o := &orb{
			X:      500,
			Y:      120 + float64(i)*90,
			Radius: 14,
			Color:  color.RGBA{80, 160, 240, 255},
		}
		s.orbs = append(s.orbs, o)

		loopType := tween.LoopYoyo
		if i%2 == 1 {
			loopType = tween.LoopRestart
		}
		s.start(tween.New(500.0, 1180.0, tween.LerpFloat64, func(v float64) { o.X = v },
			s.options(i,
				tween.WithDuration(1+float64(i)*0.25),
				tween.WithDelay(float64(i)*0.2, tween.DelayModeNone),
				tween.WithLoops(math.MaxInt32, loopType),
			)...))
		s.start(tween.New(o.Color, color.RGBA{240, 90, 120, 255}, tween.LerpRGBA, func(c color.RGBA) { o.Color = c },
			tween.WithDuration(2),
			tween.WithLoops(math.MaxInt32, tween.LoopYoyo),
		))
		s.start(tween.New(o.Radius, o.Radius*1.6, tween.LerpFloat32, func(r float32) { o.Radius = r },
			tween.WithDuration(0.4),
			tween.WithLoops(math.MaxInt32, tween.LoopYoyo),
			tween.WithTimeKind(tween.TimeUnscaled),
		))
	}

	for i := range 4 {
		b := &bar{Y: 660 - float32(i)*14, Color: color.RGBA{120, 220, 140, 255}}
		s.bars = append(s.bars, b)
		s.start(tween.New(0.0, 1.0, tween.LerpFloat64, func(v float64) { b.Width = v },
			tween.WithDuration(3),
			tween.WithDelay(float64(i), tween.DelayModeAffectOnDuration),
			tween.WithLoops(3, tween.LoopYoyo),
			tween.WithTimeKind(tween.TimeUnscaled),
			tween.OnComplete(func() { b.Color = color.RGBA{220, 220, 220, 255} }),
		))
	}
}

// options prefers a loaded preset for shape i and falls back to defaults.
func (s *scene) options(i int, defaults ...tween.Option) []tween.Option {
	if len(s.presets) == 0 {
		return defaults
	}
	return s.presets[i%len(s.presets)].Options()
}

// moveTo replaces the player's current movement with one that starts from
// wherever the player is when the new tween begins.
func (s *scene) moveTo(x, y float64) {
	s.driver.Cancel(s.move)

	p := &s.player
	tw := tween.New([2]float64{}, [2]float64{x, y}, lerpPoint, func(v [2]float64) {
		p.X, p.Y = v[0], v[1]
	}, tween.WithDuration(0.6)).
		WithEase(easeOutCubic).
		WithFromGetter(func() [2]float64 { return [2]float64{p.X, p.Y} })

	s.move = s.start(tw)
}

func (s *scene) start(r tween.Runner) tween.Handle {
	h, err := s.driver.Start(r)
	if err != nil {
		panic(err)
	}
	return h
}

func (s *scene) draw(screen *ebiten.Image) {
	for _, o := range s.orbs {
		vector.DrawFilledCircle(screen, float32(o.X), float32(o.Y), o.Radius, o.Color, true)
	}
	for _, b := range s.bars {
		vector.DrawFilledRect(screen, 500, b.Y, 680, 8, color.RGBA{60, 60, 70, 255}, false)
		vector.DrawFilledRect(screen, 500, b.Y, float32(680*b.Width), 8, b.Color, false)
	}
	vector.DrawFilledCircle(screen, float32(s.player.X), float32(s.player.Y), s.player.Radius, s.player.Color, true)
}

func lerpPoint(a, b [2]float64, t float64) [2]float64 {
	return [2]float64{
		tween.LerpFloat64(a[0], b[0], t),
		tween.LerpFloat64(a[1], b[1], t),
	}
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
