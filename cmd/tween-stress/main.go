package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/nanotween/tween"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	tweenCount := flag.Int("tweens", 10000, "The number of tweens kept alive at any time.")
	presetPath := flag.String("presets", "", "Optional YAML file of tween presets to draw configurations from.")
	inactiveEvery := flag.Int("inactive-every", 0, "Start every Nth replacement tween on an inactive driver (0 disables).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *inactiveEvery < 0 {
		log.Fatalf("-inactive-every must not be negative, got %d", *inactiveEvery)
	}

	log.Println("Starting tween stress test...")

	presets, err := loadPresets(*presetPath)
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	// 1. Setup drivers and the value sink the tweens write to
	driver := tween.NewDriver()
	offscreen := tween.NewDriver()
	offscreen.SetActive(false)

	spawner := &spawner{
		driver:        driver,
		offscreen:     offscreen,
		presets:       presets,
		values:        make([]float64, *tweenCount),
		inactiveEvery: *inactiveEvery,
	}

	// 2. Populate the driver
	log.Printf("Starting %d tweens...\n", *tweenCount)
	for slot := range *tweenCount {
		spawner.spawn(slot)
	}
	log.Println("Population complete.")

	// 3. Run the frame loop
	report := &Report{
		Duration:       *duration,
		Tweens:         *tweenCount,
		Presets:        len(presets),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running frame loop for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			driver.Once(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Driver = *driver.Stats()
	report.Offscreen = *offscreen.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Frame loop finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
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

// spawner keeps a fixed number of tweens alive: every tween that completes
// starts its replacement from its OnComplete hook.
type spawner struct {
	driver        *tween.Driver
	offscreen     *tween.Driver
	presets       []tween.Preset
	values        []float64
	inactiveEvery int
	spawned       int
}

func (s *spawner) spawn(slot int) {
	s.spawnOn(slot, true)
}

// spawnOn starts the tween for slot. A tween sent to the inactive driver
// completes inside Start, so its replacement always goes to the live driver
// to keep the OnComplete chain finite.
func (s *spawner) spawnOn(slot int, allowOffscreen bool) {
	s.spawned++

	target := s.driver
	if allowOffscreen && s.inactiveEvery > 0 && s.spawned%s.inactiveEvery == 0 {
		target = s.offscreen
	}
	offscreen := target == s.offscreen

	opts := s.options()
	opts = append(opts, tween.OnComplete(func() { s.spawnOn(slot, !offscreen) }))

	tw := tween.New(rand.Float64(), rand.Float64()*100, tween.LerpFloat64, func(v float64) {
		s.values[slot] = v
	}, opts...)

	if _, err := target.Start(tw); err != nil {
		log.Fatalf("Failed to start tween: %v", err)
	}
}

func (s *spawner) options() []tween.Option {
	if len(s.presets) > 0 {
		return s.presets[rand.IntN(len(s.presets))].Options()
	}

	loopType := tween.LoopRestart
	if rand.IntN(2) == 1 {
		loopType = tween.LoopYoyo
	}
	delayMode := tween.DelayModeNone
	if rand.IntN(2) == 1 {
		delayMode = tween.DelayModeAffectOnDuration
	}
	return []tween.Option{
		tween.WithDuration(0.1 + rand.Float64()*2),
		tween.WithLoops(1+rand.IntN(4), loopType),
		tween.WithDelay(rand.Float64()*0.5, delayMode),
		tween.WithSpeed(0.5 + rand.Float64()),
	}
}
