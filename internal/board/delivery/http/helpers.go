package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"tasklist-widget/internal/board"
	"tasklist-widget/pkg/response"
)

// snapshotAction runs a use-case call that only needs the board id.
func (h *handler) snapshotAction(c *gin.Context, name string, fn func(ctx context.Context, boardID string) (board.Snapshot, error)) {
	ctx := c.Request.Context()

	id, err := h.processBoardID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snap, err := fn(ctx, id)
	if err != nil {
		h.l.Debugf(ctx, "%s: %v", name, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBoardResp(snap))
}
