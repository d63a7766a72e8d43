package http

import (
	"github.com/gin-gonic/gin"

	"questlog/internal/middleware"
)

// RegisterRoutes maps the notification feed under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notifications := rg.Group("/notifications", mw.Auth())
	{
		notifications.GET("", h.List)
		notifications.DELETE("/:id", h.Dismiss)
	}
}
