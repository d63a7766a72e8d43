package http

import (
	"github.com/gin-gonic/gin"

	"questlog/internal/middleware"
)

// RegisterRoutes maps goal endpoints under rg. Writes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	goals := rg.Group("/goals", mw.Auth())
	{
		goals.GET("", h.List)
		goals.POST("", mw.RateLimit(), h.Create)
		goals.POST("/refresh", mw.RateLimit(), h.Refresh)
		goals.GET("/:id", h.Detail)
		goals.PUT("/:id", mw.RateLimit(), h.Update)
		goals.DELETE("/:id", mw.RateLimit(), h.Delete)
		goals.GET("/:id/history", h.History)

		goals.PUT("/:id/progress", mw.RateLimit(), h.SetProgress)
		goals.POST("/:id/mode/toggle", mw.RateLimit(), h.ToggleMode)

		goals.POST("/:id/subtasks", mw.RateLimit(), h.AddSubtask)
		goals.POST("/:id/subtasks/:subtask_id/toggle", mw.RateLimit(), h.ToggleSubtask)
		goals.DELETE("/:id/subtasks/:subtask_id", mw.RateLimit(), h.DeleteSubtask)
	}
}
