package http

import (
	"questlog/internal/goal"
	"questlog/internal/mutation"
	"questlog/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"       binding:"required,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	TargetDate  string   `json:"target_date" binding:"max=64"`
	Subtasks    []string `json:"subtasks"    binding:"max=100"`
}

func (r createReq) toInput() goal.CreateInput {
	return goal.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		TargetDate:  r.TargetDate,
		Subtasks:    r.Subtasks,
	}
}

// updateReq is a partial update; absent fields stay unchanged.
type updateReq struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"       binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	TargetDate  *string `json:"target_date" binding:"omitempty,max=64"`
}

func (r updateReq) toInput() goal.UpdateInput {
	return goal.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		TargetDate:  r.TargetDate,
	}
}

type progressReq struct {
	Progress *int `json:"progress" binding:"required"`
}

type subtaskReq struct {
	Title string `json:"title" binding:"required,max=255"`
}

type historyReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// --- Response DTOs ---

type subtaskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type goalResp struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	TargetDate   response.Date `json:"target_date"`
	Progress     int           `json:"progress"`
	Mode         string        `json:"mode"`
	CalendarLink string        `json:"calendar_link,omitempty"`
	Subtasks     []subtaskResp `json:"subtasks"`
	Pending      bool          `json:"pending"`
}

func newGoalResp(v goal.View) goalResp {
	g := v.Goal
	subtasks := make([]subtaskResp, len(g.Subtasks))
	for i, st := range g.Subtasks {
		subtasks[i] = subtaskResp{ID: st.ID, Title: st.Title, Completed: st.Completed}
	}
	return goalResp{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		TargetDate:   response.Date(g.TargetDate),
		Progress:     g.Progress,
		Mode:         string(g.EffectiveMode()),
		CalendarLink: g.CalendarLink,
		Subtasks:     subtasks,
		Pending:      v.Pending > 0,
	}
}

type detailResp struct {
	Goal goalResp `json:"goal"`
}

type listResp struct {
	Goals []goalResp `json:"goals"`
}

func (h *handler) newListResp(out goal.ListOutput) listResp {
	goals := make([]goalResp, len(out.Goals))
	for i, v := range out.Goals {
		goals[i] = newGoalResp(v)
	}
	return listResp{Goals: goals}
}

type outcomeResp struct {
	Status string `json:"status"`
	Kind   string `json:"kind"`
	Reason string `json:"reason,omitempty"`
}

type mutationResp struct {
	Goal    goalResp    `json:"goal"`
	Outcome outcomeResp `json:"outcome"`
}

func newOutcomeResp(o mutation.Outcome) outcomeResp {
	resp := outcomeResp{Status: string(o.Status), Kind: o.Kind}
	if o.Reason != nil {
		resp.Reason = o.Reason.Error()
	}
	return resp
}

func (h *handler) newMutationResp(out goal.MutationOutput) mutationResp {
	return mutationResp{
		Goal:    newGoalResp(out.Goal),
		Outcome: newOutcomeResp(out.Outcome),
	}
}

type editResp struct {
	Kind      string            `json:"kind"`
	Mode      string            `json:"mode"`
	Progress  int               `json:"progress"`
	CreatedAt response.DateTime `json:"created_at"`
}

type historyResp struct {
	Edits []editResp `json:"edits"`
}

func (h *handler) newHistoryResp(out goal.HistoryOutput) historyResp {
	edits := make([]editResp, len(out.Edits))
	for i, e := range out.Edits {
		edits[i] = editResp{
			Kind:      string(e.Kind),
			Mode:      string(e.Mode),
			Progress:  e.Progress,
			CreatedAt: response.DateTime(e.CreatedAt),
		}
	}
	return historyResp{Edits: edits}
}
