// Package debugui provides a Dear ImGui inspector for tween drivers.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/nanotween/tween"
)

// Inspector renders a window listing a driver's tweens, its clock controls
// and frame statistics. Render must be called between the ImGui backend's
// BeginFrame and EndFrame.
type Inspector struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	maxRows       int
}

// NewInspector creates an inspector keeping historyFrames frame times for
// its graph and listing at most maxRows tweens.
func NewInspector(historyFrames, maxRows int) *Inspector {
	return &Inspector{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		maxRows:       maxRows,
	}
}

func (in *Inspector) Render(driver *tween.Driver, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 360), imgui.CondOnce)
	if !imgui.BeginV("Tween Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	in.frameHistory[in.frameIndex] = deltaTime * 1000.0
	in.frameIndex = (in.frameIndex + 1) % in.historyFrames

	in.renderClock(driver)
	imgui.Separator()
	in.renderStats(driver.Stats())
	imgui.Separator()
	in.renderTweens(driver)

	imgui.End()
}

func (in *Inspector) renderClock(driver *tween.Driver) {
	active := driver.Active()
	if imgui.Checkbox("Active", &active) {
		driver.SetActive(active)
	}
	imgui.SameLine()
	imgui.Checkbox("Paused", &driver.Clock.Paused)

	scale := float32(driver.Clock.Scale)
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat("Time Scale", &scale) && scale >= 0 {
		driver.Clock.Scale = float64(scale)
	}
}

func (in *Inspector) renderStats(stats *tween.DriverStats) {
	imgui.Text(fmt.Sprintf("Active Tweens: %d", stats.Active))
	imgui.Text(fmt.Sprintf("Started: %d  Completed: %d  Canceled: %d  Fast-forwarded: %d",
		stats.Started, stats.Completed, stats.Canceled, stats.FastForwarded))
	imgui.Text(fmt.Sprintf("Step Time: %s avg, %s max", stats.AvgFrame, stats.MaxFrame))

	var avgFrameTime float32
	for _, ft := range in.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(in.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))
	imgui.PlotLinesFloatPtr("##frametime", &in.frameHistory[0], int32(len(in.frameHistory)))
}

func (in *Inspector) renderTweens(driver *tween.Driver) {
	if imgui.Button("Cancel All") {
		driver.CancelAll()
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if !imgui.BeginTableV("TweenTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Token")
	imgui.TableSetupColumn("State")
	imgui.TableSetupColumn("Loop")
	imgui.TableSetupColumn("Progress")
	imgui.TableSetupColumn("")
	imgui.TableHeadersRow()

	rows := 0
	for h, r := range driver.All() {
		if rows == in.maxRows {
			break
		}
		rows++

		core := r.Timing()
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", h.Token()))
		imgui.TableNextColumn()
		imgui.Text(core.State.String())
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d/%d %s", loopNumber(core), core.LoopCount, core.LoopType))
		imgui.TableNextColumn()
		imgui.ProgressBarV(displayProgress(core), imgui.NewVec2(-1, 0), fmt.Sprintf("%.2fs", core.Time))
		imgui.TableNextColumn()
		if imgui.Button(fmt.Sprintf("Cancel##%d", h.Token())) {
			driver.Cancel(h)
		}
	}

	imgui.EndTable()

	if hidden := driver.Len() - rows; hidden > 0 {
		imgui.Text(fmt.Sprintf("... %d more", hidden))
	}
}

func loopNumber(core tween.Core) int {
	if core.State != tween.StateRunning {
		return 0
	}
	return min(core.CurrentLoopIndex()+1, core.LoopCount)
}

// displayProgress is the bar fill for a tween: the delay elapsed while
// delayed, the loop progress while running.
func displayProgress(core tween.Core) float32 {
	switch core.State {
	case tween.StateDelayed:
		return float32(core.Time / core.Delay)
	case tween.StateRunning:
		return float32(core.Progress())
	case tween.StateCompleted:
		return 1
	default:
		return 0
	}
}
