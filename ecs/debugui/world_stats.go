package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/entworld/ecs"
)

func NewWorldStatsComponent(historyFrames int) WorldStatsComponent {
	return WorldStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ws *WorldStatsComponent) Render(world *ecs.World, deltaTime float32) {
	if !imgui.BeginV("World Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ws.frameHistory[ws.frameIndex] = deltaTime * 1000.0
	ws.frameIndex = (ws.frameIndex + 1) % ws.historyFrames

	stats := world.Stats()

	imgui.Text(fmt.Sprintf("Live Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Slots: %d (%d free)", stats.SlotCount, stats.FreeSlots))
	imgui.Text(fmt.Sprintf("Parent Links: %d", stats.ParentLinks))

	var avgFrameTime float32
	for _, ft := range ws.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ws.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ws.frameHistory[0], int32(len(ws.frameHistory)))

	if imgui.TreeNodeStr("Pending Since Last Commit") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PendingTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Log")
			imgui.TableSetupColumn("Entries")
			imgui.TableHeadersRow()

			rows := []struct {
				name  string
				count int
			}{
				{"added", stats.PendingAdds},
				{"removed", stats.PendingRemovals},
				{"changed", stats.PendingChanges},
			}
			for _, row := range rows {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
