package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/nanotween/tween"
)

type row struct {
	handle   tween.Handle
	runner   tween.Runner
	value    float64
	finished string
}

type app struct {
	screen  tcell.Screen
	updater *tween.Updater
	clock   *tween.Clock
	presets []tween.Preset
	bars    []row
	audio   bool
}

func newApp(screen tcell.Screen, bars int, presets []tween.Preset) *app {
	return &app{
		screen:  screen,
		updater: tween.NewUpdater(),
		clock:   tween.NewClock(),
		presets: presets,
		bars:    make([]row, bars),
	}
}

func (a *app) rows() int {
	return len(a.bars)
}

// restart cancels whatever is still running and starts a fresh tween for
// every bar.
func (a *app) restart() {
	for i := range a.bars {
		tween.Cancel(a.bars[i].handle, a.updater)
		a.bars[i] = row{}
		a.start(i)
	}
}

func (a *app) start(i int) {
	b := &a.bars[i]
	tw := tween.New(0.0, 1.0, tween.LerpFloat64, func(v float64) { b.value = v }, a.options(i)...)
	tw.Callbacks.OnComplete = func() {
		// The id is released after this frame.
		b.handle = tween.Invalid
		b.finished = "done"
		a.playTone(i)
	}

	h, err := a.updater.Schedule(tw)
	if err != nil {
		b.finished = err.Error()
		return
	}
	b.handle = h
	b.runner = tw
}

func (a *app) options(i int) []tween.Option {
	if len(a.presets) > 0 {
		return a.presets[i%len(a.presets)].Options()
	}

	loopType := tween.LoopRestart
	if i%2 == 1 {
		loopType = tween.LoopYoyo
	}
	opts := []tween.Option{
		tween.WithDuration(1 + float64(i)*0.5),
		tween.WithLoops(1+i%3, loopType),
		tween.WithDelay(float64(i)*0.25, tween.DelayModeAffectOnDuration),
	}
	if i == 0 {
		opts = append(opts, tween.WithTimeKind(tween.TimeUnscaled))
	}
	return opts
}

// handleEvent reports false once the user asked to quit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return false
		}
		switch r := ev.Rune(); {
		case r >= '1' && r <= '9':
			i := int(r - '1')
			if i < len(a.bars) && tween.Cancel(a.bars[i].handle, a.updater) {
				a.bars[i].handle = tween.Invalid
				a.bars[i].finished = "canceled"
			}
		case r == 'p':
			a.clock.Paused = !a.clock.Paused
		case r == '+':
			a.clock.Scale *= 2
		case r == '-':
			a.clock.Scale /= 2
		case r == 'r':
			a.restart()
		}
	}
	return true
}

func (a *app) draw() {
	a.screen.Clear()
	width, _ := a.screen.Size()
	barWidth := max(width-32, 10)

	header := fmt.Sprintf("scale x%.2f  paused=%t  live=%d", a.clock.Scale, a.clock.Paused, a.updater.Len())
	a.drawText(0, 0, header, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	for i, b := range a.bars {
		y := 2 + i*2
		a.drawText(0, y, fmt.Sprintf("%d", i+1), tcell.StyleDefault.Bold(true))

		filled := int(b.value * float64(barWidth))
		for x := range barWidth {
			ch, style := '░', tcell.StyleDefault.Foreground(tcell.ColorGray)
			if x < filled {
				ch, style = '█', tcell.StyleDefault.Foreground(barColor(b))
			}
			a.screen.SetContent(3+x, y, ch, nil, style)
		}
		a.drawText(4+barWidth, y, a.label(b), tcell.StyleDefault)
	}

	a.screen.Show()
}

func (a *app) label(b row) string {
	if b.finished != "" {
		return b.finished
	}
	if b.runner == nil {
		return ""
	}
	core := b.runner.Timing()
	return fmt.Sprintf("%-9s %d/%d %s", core.State, min(core.CurrentLoopIndex()+1, core.LoopCount), core.LoopCount, core.LoopType)
}

func barColor(b row) tcell.Color {
	switch b.finished {
	case "done":
		return tcell.ColorGreen
	case "canceled":
		return tcell.ColorRed
	}
	if b.runner != nil {
		if core := b.runner.Timing(); core.IsReverseLoop() {
			return tcell.ColorPurple
		}
	}
	return tcell.ColorBlue
}

func (a *app) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
