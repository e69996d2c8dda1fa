// Package debugui provides immediate-mode Dear ImGui windows for inspecting
// a live World: an entity browser, a component inspector and a stats panel.
package debugui

import (
	"github.com/plus3/entworld/ecs"
)

// Debugger bundles the three inspection windows so a host application can
// drop the whole suite into its render loop with one call per frame.
type Debugger struct {
	Browser   EntityBrowserComponent
	Inspector ComponentInspectorComponent
	Stats     WorldStatsComponent

	timer *FrameTimer
}

func NewDebugger() *Debugger {
	return &Debugger{
		Browser:   NewEntityBrowserComponent(100),
		Inspector: NewComponentInspectorComponent(),
		Stats:     NewWorldStatsComponent(120),
		timer:     NewFrameTimer(),
	}
}

// Render draws all windows. Call between the backend's frame begin/end.
func (d *Debugger) Render(world *ecs.World) {
	d.Browser.Render(world)
	d.Inspector.Render(world, d.Browser.GetSelectedEntity())
	d.Stats.Render(world, d.timer.GetDeltaTime())
}
