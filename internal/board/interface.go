package board

import "context"

// UseCase is what the host layer forwards widget events to.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Board lifecycle
	Create(ctx context.Context) (Snapshot, error)
	Get(ctx context.Context, boardID string) (Snapshot, error)
	Discard(ctx context.Context, boardID string) error

	// List editing
	AddTask(ctx context.Context, input AddTaskInput) (AddTaskOutput, error)
	RemoveTask(ctx context.Context, input RemoveTaskInput) (RemoveTaskOutput, error)
	ShowInput(ctx context.Context, boardID string) (Snapshot, error)

	// Drag and drop
	BeginDrag(ctx context.Context, input BeginDragInput) (Snapshot, error)
	CompleteDrag(ctx context.Context, input CompleteDragInput) (CompleteDragOutput, error)
	EndDrag(ctx context.Context, boardID string) (Snapshot, error)

	// Sorting
	ToggleSort(ctx context.Context, boardID string) (Snapshot, error)

	// Export renders the current order as a PDF.
	Export(ctx context.Context, boardID string) (ExportOutput, error)

	Stats(ctx context.Context) Stats
}
