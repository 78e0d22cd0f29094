package ordering

import "tasklist-widget/internal/model"

const (
	ControlSortAscending  = "sort-ascending"
	ControlSortDescending = "sort-descending"
)

// Display tells the host which of the two sort controls to show.
type Display struct {
	Visible string `json:"visible"`
	Hidden  string `json:"hidden"`
}

// DisplayFor maps a direction to display instructions.
func DisplayFor(dir model.SortDirection) Display {
	if dir == model.SortDescending {
		return Display{Visible: ControlSortDescending, Hidden: ControlSortAscending}
	}
	return Display{Visible: ControlSortAscending, Hidden: ControlSortDescending}
}
