package http

import (
	"github.com/gin-gonic/gin"

	"questlog/internal/goal"
	"questlog/pkg/response"
)

// Create godoc
// @Summary     Create a goal
// @Description Creates a goal with optional subtasks. target_date accepts YYYY-MM-DD or phrases like "in 2 weeks".
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Goal data"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/goals [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "goal.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// List godoc
// @Summary     List goals
// @Tags        Goals
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/goals [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "goal.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newListResp(out))
}

// Refresh godoc
// @Summary     Reload goals from the sync service
// @Tags        Goals
// @Produce     json
// @Success     200 {object} listResp
// @Failure     502 {object} response.Resp "Sync service unavailable"
// @Router      /api/v1/goals/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Refresh(ctx)
	if err != nil {
		h.l.Errorf(ctx, "goal.http.Refresh: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a goal
// @Tags        Goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/goals/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	v, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, detailResp{Goal: newGoalResp(v)})
}

// Update godoc
// @Summary     Update goal fields
// @Description Partial update of title, description and target date. Applied immediately and reverted if the sync service rejects it.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Goal ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} mutationResp
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/goals/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "goal.http.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// Delete godoc
// @Summary     Delete a goal
// @Tags        Goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/goals/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "goal.http.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}

// History godoc
// @Summary     List progress and mode edits
// @Tags        Goals
// @Produce     json
// @Param       id    path  string true  "Goal ID"
// @Param       limit query int    false "Max entries (default 50)"
// @Success     200 {object} historyResp
// @Router      /api/v1/goals/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.History(ctx, goal.HistoryInput{GoalID: c.Param("id"), Limit: req.Limit})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newHistoryResp(out))
}

// SetProgress godoc
// @Summary     Set progress manually
// @Description Pins progress and switches the goal to MANUAL mode.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Goal ID"
// @Param       body body progressReq true "Progress 0-100"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/goals/{id}/progress [PUT]
func (h *handler) SetProgress(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProgressReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SetManualProgress(ctx, goal.SetProgressInput{GoalID: c.Param("id"), Progress: *req.Progress})
	if err != nil {
		h.l.Errorf(ctx, "goal.http.SetProgress: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// ToggleMode godoc
// @Summary     Toggle progress mode
// @Description Switches between AUTOMATIC and MANUAL. Switching to AUTOMATIC recomputes progress from subtasks.
// @Tags        Goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} mutationResp
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/goals/{id}/mode/toggle [POST]
func (h *handler) ToggleMode(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ToggleMode(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "goal.http.ToggleMode: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// AddSubtask godoc
// @Summary     Add a subtask
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Goal ID"
// @Param       body body subtaskReq true "Subtask"
// @Success     200 {object} mutationResp
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/goals/{id}/subtasks [POST]
func (h *handler) AddSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubtaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.AddSubtask(ctx, goal.AddSubtaskInput{GoalID: c.Param("id"), Title: req.Title})
	if err != nil {
		h.l.Errorf(ctx, "goal.http.AddSubtask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// ToggleSubtask godoc
// @Summary     Toggle a subtask
// @Tags        Goals
// @Produce     json
// @Param       id         path string true "Goal ID"
// @Param       subtask_id path string true "Subtask ID"
// @Success     200 {object} mutationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/goals/{id}/subtasks/{subtask_id}/toggle [POST]
func (h *handler) ToggleSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ToggleSubtask(ctx, goal.ToggleSubtaskInput{GoalID: c.Param("id"), SubtaskID: c.Param("subtask_id")})
	if err != nil {
		h.l.Errorf(ctx, "goal.http.ToggleSubtask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// DeleteSubtask godoc
// @Summary     Delete a subtask
// @Tags        Goals
// @Produce     json
// @Param       id         path string true "Goal ID"
// @Param       subtask_id path string true "Subtask ID"
// @Success     200 {object} mutationResp
// @Failure     409 {object} response.Resp "Rolled back"
// @Router      /api/v1/goals/{id}/subtasks/{subtask_id} [DELETE]
func (h *handler) DeleteSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.DeleteSubtask(ctx, goal.DeleteSubtaskInput{GoalID: c.Param("id"), SubtaskID: c.Param("subtask_id")})
	if err != nil {
		h.l.Errorf(ctx, "goal.http.DeleteSubtask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.respondMutation(c, out)
}

// respondMutation renders a rollback as 409 carrying the restored goal.
func (h *handler) respondMutation(c *gin.Context, out goal.MutationOutput) {
	resp := h.newMutationResp(out)
	if !out.Outcome.Committed() {
		response.Error(c, errRolledBack, map[string]interface{}{
			"goal":    resp.Goal,
			"outcome": resp.Outcome,
		})
		return
	}
	response.OK(c, resp)
}
