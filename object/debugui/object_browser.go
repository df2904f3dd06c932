package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gobject/object"
)

// ObjectInfo is one row of the browser table.
type ObjectInfo struct {
	ID            object.ObjectID
	Name          string
	Active        bool
	ComponentKeys []string
}

// ObjectBrowserComponent shows a sortable, filterable table of the manager's
// live objects. Its row cache refreshes once per tick through OnPreUpdate.
type ObjectBrowserComponent struct {
	object.Base

	manager           *object.Manager
	rows              []ObjectInfo
	selectedID        object.ObjectID
	filterText        string
	sortColumn        int
	sortAscending     bool
	maxObjectsPerPage int
	currentPage       int
}

func NewObjectBrowserComponent(manager *object.Manager, maxObjectsPerPage int) *ObjectBrowserComponent {
	return &ObjectBrowserComponent{
		manager:           manager,
		sortAscending:     true,
		maxObjectsPerPage: maxObjectsPerPage,
	}
}

// OnPreUpdate rebuilds the row cache from the manager's live set.
func (ob *ObjectBrowserComponent) OnPreUpdate() {
	ob.rows = ob.rows[:0]
	for _, obj := range ob.manager.Objects() {
		ob.rows = append(ob.rows, ObjectInfo{
			ID:            obj.ID(),
			Name:          obj.GetName(),
			Active:        obj.IsActive(),
			ComponentKeys: obj.ComponentKeys(),
		})
	}
	ob.sortRows()
}

// Render draws the browser window. Call inside an ImGui frame.
func (ob *ObjectBrowserComponent) Render() {
	if !imgui.BeginV("Object Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &ob.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ob.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Active")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ob.sortColumn = int(spec.ColumnIndex())
			ob.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			ob.sortRows()
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := ob.filteredRows()

		startIdx := ob.currentPage * ob.maxObjectsPerPage
		endIdx := startIdx + ob.maxObjectsPerPage
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}

		for i := startIdx; i < endIdx; i++ {
			row := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := ob.selectedID == row.ID
			if imgui.SelectableBoolV(row.Name, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ob.selectedID = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.ID))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%v", row.Active))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.ComponentKeys, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(row.ComponentKeys)))
		}

		imgui.EndTable()
	}

	filtered := ob.filteredRows()

	if len(filtered) > ob.maxObjectsPerPage {
		totalPages := (len(filtered) + ob.maxObjectsPerPage - 1) / ob.maxObjectsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d objects)", ob.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && ob.currentPage > 0 {
			ob.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && ob.currentPage < totalPages-1 {
			ob.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d objects", len(filtered)))
	}

	imgui.End()
}

func (ob *ObjectBrowserComponent) sortRows() {
	sort.Slice(ob.rows, func(i, j int) bool {
		a, b := ob.rows[i], ob.rows[j]
		var less bool

		switch ob.sortColumn {
		case 0:
			less = a.Name < b.Name
		case 1:
			less = a.ID < b.ID
		case 2:
			less = !a.Active && b.Active
		case 3:
			less = strings.Join(a.ComponentKeys, ",") < strings.Join(b.ComponentKeys, ",")
		case 4:
			less = len(a.ComponentKeys) < len(b.ComponentKeys)
		default:
			less = a.ID < b.ID
		}

		if !ob.sortAscending {
			return !less
		}
		return less
	})
}

func (ob *ObjectBrowserComponent) filteredRows() []ObjectInfo {
	if ob.filterText == "" {
		return ob.rows
	}

	filterLower := strings.ToLower(ob.filterText)
	filtered := make([]ObjectInfo, 0, len(ob.rows))

	for _, row := range ob.rows {
		nameStr := strings.ToLower(row.Name)
		idStr := fmt.Sprintf("%d", row.ID)
		keysStr := strings.ToLower(strings.Join(row.ComponentKeys, " "))

		if !strings.Contains(nameStr, filterLower) &&
			!strings.Contains(idStr, filterLower) &&
			!strings.Contains(keysStr, filterLower) {
			continue
		}

		filtered = append(filtered, row)
	}

	return filtered
}

// GetSelectedID returns the id of the currently selected object, 0 if none.
func (ob *ObjectBrowserComponent) GetSelectedID() object.ObjectID {
	return ob.selectedID
}
