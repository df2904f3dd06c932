package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gobject/object"
)

// LoopStatsComponent plots tick durations and tabulates per-phase timing
// from the driving Loop's stats.
type LoopStatsComponent struct {
	object.Base

	loop          *object.Loop
	historyFrames int
	tickHistory   []float32
	tickIndex     int
}

func NewLoopStatsComponent(loop *object.Loop, historyFrames int) *LoopStatsComponent {
	return &LoopStatsComponent{
		loop:          loop,
		historyFrames: historyFrames,
		tickHistory:   make([]float32, historyFrames),
	}
}

// OnPostUpdate records this tick's total duration into the history ring.
func (ls *LoopStatsComponent) OnPostUpdate() {
	stats := ls.loop.GetStats()

	var last float32
	for _, phase := range stats.Phases {
		last += float32(phase.LastDuration.Seconds()) * 1000.0
	}

	ls.tickHistory[ls.tickIndex] = last
	ls.tickIndex = (ls.tickIndex + 1) % ls.historyFrames
}

// Render draws the stats window. Call inside an ImGui frame.
func (ls *LoopStatsComponent) Render() {
	if !imgui.BeginV("Loop Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ls.loop.GetStats()

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.TickCount))

	var avgTickTime float32
	for _, tt := range ls.tickHistory {
		avgTickTime += tt
	}
	avgTickTime /= float32(ls.historyFrames)
	imgui.Text(fmt.Sprintf("Avg Tick Time: %.2f ms", avgTickTime))

	imgui.Separator()
	imgui.Text("Tick Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##ticktime", &ls.tickHistory[0], int32(len(ls.tickHistory)))

	if imgui.TreeNodeStr("Phase Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, phase := range stats.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Name)
				imgui.TableNextColumn()
				imgui.Text(phase.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
