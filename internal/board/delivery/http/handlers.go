package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasklist-widget/pkg/response"
)

// Create godoc
// @Summary     Create a board
// @Description Starts a new empty to-do list. The board lives in memory until it is idle for too long.
// @Tags        Boards
// @Produce     json
// @Success     200 {object} boardResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/boards [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.uc.Create(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBoardResp(snap))
}

// Detail godoc
// @Summary     Get a board
// @Description Returns the current order, sort direction and presentation mode.
// @Tags        Boards
// @Produce     json
// @Param       board_id path string true "Board ID"
// @Success     200 {object} boardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{board_id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processBoardID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snap, err := h.uc.Get(ctx, id)
	if err != nil {
		h.l.Debugf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBoardResp(snap))
}

// Discard godoc
// @Summary     Discard a board
// @Tags        Boards
// @Produce     json
// @Param       board_id path string true "Board ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{board_id} [DELETE]
func (h *handler) Discard(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processBoardID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Discard(ctx, id); err != nil {
		h.l.Debugf(ctx, "uc.Discard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// AddTask godoc
// @Summary     Add a task
// @Description Appends a task to the end of the list. Blank labels are rejected.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       board_id path string     true "Board ID"
// @Param       body     body addTaskReq true "Task label"
// @Success     200 {object} addTaskResp
// @Failure     400 {object} response.Resp "Empty label"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{board_id}/tasks [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.AddTask(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.AddTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddTaskResp(out))
}

// RemoveTask godoc
// @Summary     Remove a task
// @Description Deletes a task. Unknown task ids succeed with removed=false.
// @Tags        Tasks
// @Produce     json
// @Param       board_id path string true "Board ID"
// @Param       task_id  path string true "Task ID"
// @Success     200 {object} removeTaskResp
// @Failure     404 {object} response.Resp "Board Not Found"
// @Router      /api/v1/boards/{board_id}/tasks/{task_id} [DELETE]
func (h *handler) RemoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoveTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.RemoveTask(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.RemoveTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRemoveTaskResp(out))
}

// ShowInput godoc
// @Summary     Show the input container
// @Description The add control pressed while the list is showing.
// @Tags        Boards
// @Produce     json
// @Param       board_id path string true "Board ID"
// @Success     200 {object} boardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{board_id}/input [POST]
func (h *handler) ShowInput(c *gin.Context) {
	h.snapshotAction(c, "uc.ShowInput", h.uc.ShowInput)
}

// BeginDrag godoc
// @Summary     Start dragging a task
// @Tags        Drag and drop
// @Accept      json
// @Produce     json
// @Param       board_id path string       true "Board ID"
// @Param       body     body beginDragReq true "Dragged task"
// @Success     200 {object} boardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{board_id}/drag [POST]
func (h *handler) BeginDrag(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBeginDragReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snap, err := h.uc.BeginDrag(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.BeginDrag: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBoardResp(snap))
}

// CompleteDrag godoc
// @Summary     Drop the dragged task
// @Description Moves the dragged task immediately before the target task.
// @Tags        Drag and drop
// @Accept      json
// @Produce     json
// @Param       board_id path string          true "Board ID"
// @Param       body     body completeDragReq true "Drop target"
// @Success     200 {object} completeDragResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{board_id}/drop [POST]
func (h *handler) CompleteDrag(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteDragReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CompleteDrag(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.CompleteDrag: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteDragResp(out))
}

// EndDrag godoc
// @Summary     End the drag gesture
// @Tags        Drag and drop
// @Produce     json
// @Param       board_id path string true "Board ID"
// @Success     200 {object} boardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{board_id}/drag [DELETE]
func (h *handler) EndDrag(c *gin.Context) {
	h.snapshotAction(c, "uc.EndDrag", h.uc.EndDrag)
}

// ToggleSort godoc
// @Summary     Toggle sort direction
// @Description Flips between ascending and descending numeric order and re-sorts.
// @Tags        Sorting
// @Produce     json
// @Param       board_id path string true "Board ID"
// @Success     200 {object} boardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{board_id}/sort/toggle [POST]
func (h *handler) ToggleSort(c *gin.Context) {
	h.snapshotAction(c, "uc.ToggleSort", h.uc.ToggleSort)
}

// Export godoc
// @Summary     Export as PDF
// @Tags        Boards
// @Produce     application/pdf
// @Param       board_id path string true "Board ID"
// @Success     200 {file} file
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{board_id}/export.pdf [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processBoardID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Export(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.FileName+`"`)
	c.Data(http.StatusOK, "application/pdf", out.Content)
}
