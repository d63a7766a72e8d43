package http

import (
	"github.com/gin-gonic/gin"

	"questlog/pkg/response"
)

// List godoc
// @Summary     List notifications
// @Description Returns live notifications, newest first. Rollbacks of optimistic changes appear here.
// @Tags        Notifications
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, h.newListResp(h.uc.List(ctx)))
}

// Dismiss godoc
// @Summary     Dismiss a notification
// @Tags        Notifications
// @Produce     json
// @Param       id path string true "Notification ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notifications/{id} [DELETE]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Dismiss(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "notify.http.Dismiss: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
