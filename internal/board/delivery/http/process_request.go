package http

import (
	"github.com/gin-gonic/gin"
)

// processBoardID reads the :board_id path param.
func (h *handler) processBoardID(c *gin.Context) (string, error) {
	id := c.Param("board_id")
	if id == "" {
		return "", errBoardIDRequired
	}
	return id, nil
}

// processAddTaskReq binds the add task body. Blank labels are rejected by the
// use case, not here, so the client always sees the same message.
func (h *handler) processAddTaskReq(c *gin.Context) (addTaskReq, error) {
	var req addTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processBoardID(c)
	if err != nil {
		return req, err
	}
	req.BoardID = id
	return req, nil
}

// processRemoveTaskReq reads the board and task ids from the path.
func (h *handler) processRemoveTaskReq(c *gin.Context) (removeTaskReq, error) {
	id, err := h.processBoardID(c)
	if err != nil {
		return removeTaskReq{}, err
	}
	return removeTaskReq{BoardID: id, TaskID: c.Param("task_id")}, nil
}

// processBeginDragReq binds the drag start body.
func (h *handler) processBeginDragReq(c *gin.Context) (beginDragReq, error) {
	var req beginDragReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processBoardID(c)
	if err != nil {
		return req, err
	}
	req.BoardID = id
	return req, nil
}

// processCompleteDragReq binds the drop body.
func (h *handler) processCompleteDragReq(c *gin.Context) (completeDragReq, error) {
	var req completeDragReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processBoardID(c)
	if err != nil {
		return req, err
	}
	req.BoardID = id
	return req, nil
}
