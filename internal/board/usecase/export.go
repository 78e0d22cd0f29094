package usecase

import (
	"context"
	"fmt"

	"tasklist-widget/internal/board"
	"tasklist-widget/pkg/listpdf"
)

// Export renders the board's current order as a PDF.
func (uc *implUseCase) Export(ctx context.Context, boardID string) (board.ExportOutput, error) {
	snap, err := uc.read(ctx, boardID)
	if err != nil {
		return board.ExportOutput{}, err
	}

	items := make([]string, len(snap.Tasks))
	for i, t := range snap.Tasks {
		items[i] = t.Label
	}

	content, err := uc.pdf.Render(listpdf.Document{
		Title:     uc.exportTitle,
		Subtitle:  fmt.Sprintf("%d task(s), sort %s", len(items), snap.Direction),
		Items:     items,
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export Render: %v", err)
		return board.ExportOutput{}, err
	}

	return board.ExportOutput{
		FileName: fmt.Sprintf("tasks-%s.pdf", snap.BoardID),
		Content:  content,
	}, nil
}
