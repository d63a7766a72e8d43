package http

import (
	"github.com/gin-gonic/gin"

	"questlog/internal/middleware"
)

// RegisterRoutes maps habit endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	habits := rg.Group("/habits", mw.Auth())
	{
		habits.GET("", h.List)
		habits.POST("", mw.RateLimit(), h.Create)
		habits.POST("/refresh", mw.RateLimit(), h.Refresh)
		habits.GET("/:id", h.Detail)
		habits.DELETE("/:id", mw.RateLimit(), h.Delete)
		habits.PUT("/:id/policy", mw.RateLimit(), h.UpdatePolicy)
		habits.POST("/:id/toggle", mw.RateLimit(), h.ToggleCompletion)
	}
}
