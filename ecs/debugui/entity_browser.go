package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/entworld/ecs"
)

// EntityInfo is one row of the browser table.
type EntityInfo struct {
	Entity         ecs.Entity
	ComponentTypes []string
	PendingAdd     bool
	PendingRemove  bool
}

type EntityBrowserCache struct {
	entities      []EntityInfo
	lastStats     ecs.WorldStats
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		cache: &EntityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		showPendingAdds:    true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(world)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}
	imgui.SameLine()
	if imgui.Checkbox("Pending adds", &eb.showPendingAdds) {
		eb.cache.entities = nil
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("State")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filteredEntities := eb.getFilteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := startIdx + eb.maxEntitiesPerPage
		if startIdx > len(filteredEntities) {
			startIdx = len(filteredEntities)
			eb.currentPage = 0
		}
		if endIdx > len(filteredEntities) {
			endIdx = len(filteredEntities)
		}

		for i := startIdx; i < endIdx; i++ {
			info := filteredEntities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntity == info.Entity
			label := fmt.Sprintf("%d##%d", info.Entity.Index, info.Entity.Generation)
			if imgui.SelectableBoolV(label, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntity = info.Entity
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Entity.Generation))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(entityState(info))
		}

		imgui.EndTable()
	}

	filteredEntities := eb.getFilteredEntities()

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

func entityState(info EntityInfo) string {
	switch {
	case info.PendingAdd && info.PendingRemove:
		return "added, removing"
	case info.PendingAdd:
		return "added"
	case info.PendingRemove:
		return "removing"
	default:
		return "committed"
	}
}

func (eb *EntityBrowserComponent) rebuildCacheIfNeeded(world *ecs.World) {
	stats := world.Stats()
	if eb.cache.lastStats != stats {
		eb.cache.entities = nil
		eb.cache.lastStats = stats
	}

	if eb.cache.entities == nil {
		eb.rebuildCache(world)
	}
}

func (eb *EntityBrowserComponent) rebuildCache(world *ecs.World) {
	eb.cache.entities = make([]EntityInfo, 0, 1024)

	pendingRemove := make(map[ecs.Entity]bool)
	for _, e := range world.ListRemovals() {
		pendingRemove[e] = true
	}

	appendEntity := func(e ecs.Entity, pendingAdd bool) {
		types := world.ComponentTypes(e)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}
		sort.Strings(names)

		eb.cache.entities = append(eb.cache.entities, EntityInfo{
			Entity:         e,
			ComponentTypes: names,
			PendingAdd:     pendingAdd,
			PendingRemove:  pendingRemove[e],
		})
	}

	for e := range world.Entities() {
		appendEntity(e, false)
	}
	if eb.showPendingAdds {
		for _, e := range world.ListAdditions() {
			appendEntity(e, true)
		}
	}

	eb.sortEntities()
}

func (eb *EntityBrowserComponent) sortEntities() {
	sort.Slice(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 0:
			less = a.Entity.Index < b.Entity.Index
		case 1:
			less = a.Entity.Generation < b.Entity.Generation
		case 2:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 3:
			less = entityState(a) < entityState(b)
		default:
			less = a.Entity.Index < b.Entity.Index
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowserComponent) getFilteredEntities() []EntityInfo {
	if eb.filterText == "" {
		return eb.cache.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, info := range eb.cache.entities {
		idxStr := fmt.Sprintf("%d", info.Entity.Index)
		genStr := fmt.Sprintf("%d", info.Entity.Generation)
		componentsStr := strings.ToLower(strings.Join(info.ComponentTypes, " "))

		if !strings.Contains(idxStr, filterLower) &&
			!strings.Contains(genStr, filterLower) &&
			!strings.Contains(componentsStr, filterLower) {
			continue
		}

		filtered = append(filtered, info)
	}

	return filtered
}

func (eb *EntityBrowserComponent) GetSelectedEntity() ecs.Entity {
	return eb.selectedEntity
}
