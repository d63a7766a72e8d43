package http

import (
	"github.com/gin-gonic/gin"

	"questlog/internal/habit"
	"questlog/pkg/response"
)

// Create godoc
// @Summary     Create a habit
// @Description reset_option defaults to NEVER. time_of_day (HH:MM) is required for every other option.
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Habit data"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/habits [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "habit.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// List godoc
// @Summary     List habits
// @Tags        Habits
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/habits [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "habit.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newListResp(out))
}

// Refresh godoc
// @Summary     Reload habits from the sync service
// @Tags        Habits
// @Produce     json
// @Success     200 {object} listResp
// @Failure     502 {object} response.Resp "Sync service unavailable"
// @Router      /api/v1/habits/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Refresh(ctx)
	if err != nil {
		h.l.Errorf(ctx, "habit.http.Refresh: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a habit
// @Tags        Habits
// @Produce     json
// @Param       id path string true "Habit ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/habits/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	v, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, detailResp{Habit: newHabitResp(v)})
}

// Delete godoc
// @Summary     Delete a habit
// @Description Removed locally only after the sync service confirms.
// @Tags        Habits
// @Produce     json
// @Param       id path string true "Habit ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/habits/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "habit.http.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}

// UpdatePolicy godoc
// @Summary     Change a habit's reset policy
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Habit ID"
// @Param       body body policyReq true "Reset policy"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/habits/{id}/policy [PUT]
func (h *handler) UpdatePolicy(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPolicyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdatePolicy(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "habit.http.UpdatePolicy: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// ToggleCompletion godoc
// @Summary     Toggle a habit's completion
// @Description Applied immediately and reverted if the sync service rejects it.
// @Tags        Habits
// @Produce     json
// @Param       id path string true "Habit ID"
// @Success     200 {object} mutationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/habits/{id}/toggle [POST]
func (h *handler) ToggleCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ToggleCompletion(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "habit.http.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// respondMutation renders a rollback as 409 carrying the restored habit.
func (h *handler) respondMutation(c *gin.Context, out habit.MutationOutput) {
	resp := h.newMutationResp(out)
	if !out.Outcome.Committed() {
		response.Error(c, errRolledBack, map[string]interface{}{
			"habit":   resp.Habit,
			"outcome": resp.Outcome,
		})
		return
	}
	response.OK(c, resp)
}
