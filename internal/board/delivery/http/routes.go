package http

import (
	"tasklist-widget/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	boards := rg.Group("/boards", mw.RateLimit())
	{
		boards.POST("", h.Create)
		boards.GET("/:board_id", h.Detail)
		boards.DELETE("/:board_id", h.Discard)

		boards.POST("/:board_id/tasks", h.AddTask)
		boards.DELETE("/:board_id/tasks/:task_id", h.RemoveTask)
		boards.POST("/:board_id/input", h.ShowInput)

		boards.POST("/:board_id/drag", h.BeginDrag)
		boards.POST("/:board_id/drop", h.CompleteDrag)
		boards.DELETE("/:board_id/drag", h.EndDrag)

		boards.POST("/:board_id/sort/toggle", h.ToggleSort)

		boards.GET("/:board_id/export.pdf", h.Export)
	}
}
