package http

import (
	"time"

	"questlog/internal/habit"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"         binding:"required,max=255"`
	Description string `json:"description"  binding:"max=2000"`
	ResetOption string `json:"reset_option" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY NEVER daily weekly monthly never"`
	TimeOfDay   string `json:"time_of_day"  binding:"max=5"`
}

func (r createReq) toInput() habit.CreateInput {
	return habit.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		ResetOption: r.ResetOption,
		TimeOfDay:   r.TimeOfDay,
	}
}

type policyReq struct {
	ID          string `json:"-"`
	ResetOption string `json:"reset_option" binding:"required"`
	TimeOfDay   string `json:"time_of_day"  binding:"max=5"`
}

func (r policyReq) toInput() habit.UpdatePolicyInput {
	return habit.UpdatePolicyInput{
		ID:          r.ID,
		ResetOption: r.ResetOption,
		TimeOfDay:   r.TimeOfDay,
	}
}

// --- Response DTOs ---

type policyResp struct {
	Option    string  `json:"option"`
	TimeOfDay *string `json:"time_of_day"`
}

type habitResp struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	ResetPolicy policyResp `json:"reset_policy"`
	Pending     bool       `json:"pending"`
}

func newHabitResp(v habit.View) habitResp {
	h := v.Habit
	policy := policyResp{Option: string(h.ResetPolicy.Option)}
	if h.ResetPolicy.TimeOfDay != "" {
		tod := h.ResetPolicy.TimeOfDay
		policy.TimeOfDay = &tod
	}
	return habitResp{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Completed:   h.Completed,
		CompletedAt: h.CompletedAt,
		ResetPolicy: policy,
		Pending:     v.Pending > 0,
	}
}

type detailResp struct {
	Habit habitResp `json:"habit"`
}

type listResp struct {
	Habits []habitResp `json:"habits"`
}

func (h *handler) newListResp(out habit.ListOutput) listResp {
	habits := make([]habitResp, len(out.Habits))
	for i, v := range out.Habits {
		habits[i] = newHabitResp(v)
	}
	return listResp{Habits: habits}
}

type outcomeResp struct {
	Status string `json:"status"`
	Kind   string `json:"kind"`
	Reason string `json:"reason,omitempty"`
}

type mutationResp struct {
	Habit   habitResp   `json:"habit"`
	Outcome outcomeResp `json:"outcome"`
}

func (h *handler) newMutationResp(out habit.MutationOutput) mutationResp {
	o := outcomeResp{Status: string(out.Outcome.Status), Kind: out.Outcome.Kind}
	if out.Outcome.Reason != nil {
		o.Reason = out.Outcome.Reason.Error()
	}
	return mutationResp{Habit: newHabitResp(out.Habit), Outcome: o}
}
