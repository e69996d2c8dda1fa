package debugui

import (
	"github.com/plus3/entworld/ecs"
)

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntity     ecs.Entity
	filterText         string
	showPendingAdds    bool
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntity ecs.Entity
}

type WorldStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
