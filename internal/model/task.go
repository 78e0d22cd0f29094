package model

// Task is one entry of a to-do list.
type Task struct {
	ID    string // opaque, assigned at creation, stable across reorders
	Label string // trimmed user input
}

// SortDirection is the numeric ordering applied by the sort toggle.
type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// Opposite returns the other direction.
func (d SortDirection) Opposite() SortDirection {
	if d == SortDescending {
		return SortAscending
	}
	return SortDescending
}

// ListState tells the host whether the list has anything to show.
type ListState string

const (
	ListEmpty    ListState = "empty"
	ListNonEmpty ListState = "non_empty"
)
