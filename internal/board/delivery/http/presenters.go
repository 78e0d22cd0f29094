package http

import (
	"tasklist-widget/internal/board"
	"tasklist-widget/internal/ordering"
	"tasklist-widget/pkg/response"
)

// --- Request DTOs ---

type addTaskReq struct {
	BoardID string `json:"-"`
	Label   string `json:"label"`
}

func (r addTaskReq) toInput() board.AddTaskInput {
	return board.AddTaskInput{BoardID: r.BoardID, Label: r.Label}
}

type removeTaskReq struct {
	BoardID string
	TaskID  string
}

func (r removeTaskReq) toInput() board.RemoveTaskInput {
	return board.RemoveTaskInput{BoardID: r.BoardID, TaskID: r.TaskID}
}

type beginDragReq struct {
	BoardID string `json:"-"`
	TaskID  string `json:"task_id" binding:"required"`
}

func (r beginDragReq) toInput() board.BeginDragInput {
	return board.BeginDragInput{BoardID: r.BoardID, TaskID: r.TaskID}
}

type completeDragReq struct {
	BoardID  string `json:"-"`
	TargetID string `json:"target_id" binding:"required"`
}

func (r completeDragReq) toInput() board.CompleteDragInput {
	return board.CompleteDragInput{BoardID: r.BoardID, TargetID: r.TargetID}
}

// --- Response DTOs ---

type taskResp struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type boardResp struct {
	ID        string            `json:"id"`
	Tasks     []taskResp        `json:"tasks"`
	Direction string            `json:"direction"`
	Display   ordering.Display  `json:"display"`
	State     string            `json:"state"`
	Mode      string            `json:"mode"`
	Dragging  string            `json:"dragging,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newBoardResp(s board.Snapshot) boardResp {
	tasks := make([]taskResp, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = taskResp{ID: t.ID, Label: t.Label}
	}
	return boardResp{
		ID:        s.BoardID,
		Tasks:     tasks,
		Direction: string(s.Direction),
		Display:   s.Display,
		State:     string(s.State),
		Mode:      string(s.Mode),
		Dragging:  s.Dragging,
		CreatedAt: response.DateTime(s.CreatedAt),
		UpdatedAt: response.DateTime(s.UpdatedAt),
	}
}

type addTaskResp struct {
	Task  taskResp  `json:"task"`
	Board boardResp `json:"board"`
}

func (h *handler) newAddTaskResp(out board.AddTaskOutput) addTaskResp {
	return addTaskResp{
		Task:  taskResp{ID: out.Task.ID, Label: out.Task.Label},
		Board: newBoardResp(out.Snapshot),
	}
}

type removeTaskResp struct {
	Removed bool      `json:"removed"`
	Board   boardResp `json:"board"`
}

func (h *handler) newRemoveTaskResp(out board.RemoveTaskOutput) removeTaskResp {
	return removeTaskResp{Removed: out.Removed, Board: newBoardResp(out.Snapshot)}
}

type completeDragResp struct {
	Moved bool      `json:"moved"`
	Board boardResp `json:"board"`
}

func (h *handler) newCompleteDragResp(out board.CompleteDragOutput) completeDragResp {
	return completeDragResp{Moved: out.Moved, Board: newBoardResp(out.Snapshot)}
}
