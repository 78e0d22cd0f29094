package board

import (
	"sync"
	"time"

	"tasklist-widget/internal/model"
	"tasklist-widget/internal/ordering"
)

// Mode is which of the two containers the widget shows.
type Mode string

const (
	ModeInput Mode = "input"
	ModeList  Mode = "list"
)

// --- Board Domain Model ---

// Board is one widget instance: a single task list plus its presentation mode.
// Every forwarded event must run under Lock.
type Board struct {
	ID        string
	Engine    *ordering.Engine
	Mode      Mode
	CreatedAt time.Time
	UpdatedAt time.Time

	mu        sync.Mutex
	discarded bool
}

// NewBoard returns an empty board showing the input container.
func NewBoard(id string, engine *ordering.Engine, now time.Time) *Board {
	return &Board{
		ID:        id,
		Engine:    engine,
		Mode:      ModeInput,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *Board) Lock()   { b.mu.Lock() }
func (b *Board) Unlock() { b.mu.Unlock() }

// Snapshot is everything the host needs to re-render after an event.
type Snapshot struct {
	BoardID   string
	Tasks     []model.Task
	Direction model.SortDirection
	Display   ordering.Display
	State     model.ListState
	Mode      Mode
	Dragging  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type AddTaskInput struct {
	BoardID string
	Label   string
}

type RemoveTaskInput struct {
	BoardID string
	TaskID  string
}

type BeginDragInput struct {
	BoardID string
	TaskID  string
}

type CompleteDragInput struct {
	BoardID  string
	TargetID string
}

// --- UseCase Outputs ---

type AddTaskOutput struct {
	Task     model.Task
	Snapshot Snapshot
}

type RemoveTaskOutput struct {
	Removed  bool
	Snapshot Snapshot
}

type CompleteDragOutput struct {
	Moved    bool
	Snapshot Snapshot
}

type Stats struct {
	LiveBoards int
}

type ExportOutput struct {
	FileName string
	Content  []byte
}
