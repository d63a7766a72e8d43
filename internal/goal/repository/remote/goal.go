package remote

import (
	"context"
	"errors"

	"questlog/internal/goal"
	"questlog/internal/goal/repository"
	"questlog/internal/model"
	pkgRemote "questlog/pkg/remote"
)

const dateLayout = "2006-01-02"

type goalPayload struct {
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	TargetDate   string           `json:"targetDate,omitempty"`
	Progress     int              `json:"progress"`
	CalendarLink string           `json:"calendarLink,omitempty"`
	Subtasks     []subtaskPayload `json:"subtasks,omitempty"`
}

type subtaskPayload struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (r *implRepository) FetchGoals(ctx context.Context) ([]model.Goal, error) {
	raw, err := r.gw.Fetch(ctx, pkgRemote.ResourceGoals, "")
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchGoals"), err)
		return nil, err
	}
	goals, err := decodeGoals(raw, r.loc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchGoals"), err)
		return nil, err
	}
	return goals, nil
}

func (r *implRepository) FetchGoal(ctx context.Context, id string) (model.Goal, error) {
	raw, err := r.gw.Fetch(ctx, pkgRemote.ResourceGoals, id)
	if errors.Is(err, pkgRemote.ErrNotFound) {
		return model.Goal{}, goal.ErrGoalNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchGoal"), err)
		return model.Goal{}, err
	}
	return decodeGoal(raw, r.loc)
}

func (r *implRepository) CreateGoal(ctx context.Context, g model.Goal) error {
	payload := goalPayload{
		Title:        g.Title,
		Description:  g.Description,
		TargetDate:   formatDate(g),
		Progress:     g.Progress,
		CalendarLink: g.CalendarLink,
	}
	for _, st := range g.Subtasks {
		payload.Subtasks = append(payload.Subtasks, subtaskPayload(st))
	}
	return r.perform(ctx, "CreateGoal", pkgRemote.OpCreateGoal, g.ID, payload)
}

func (r *implRepository) UpdateGoal(ctx context.Context, opt repository.UpdateGoalOptions) error {
	payload := map[string]any{
		"title":        opt.Title,
		"description":  opt.Description,
		"calendarLink": opt.CalendarLink,
		"targetDate":   nil,
	}
	if !opt.TargetDate.IsZero() {
		payload["targetDate"] = opt.TargetDate.Format(dateLayout)
	}
	return r.perform(ctx, "UpdateGoal", pkgRemote.OpUpdateGoal, opt.ID, payload)
}

func (r *implRepository) SetProgress(ctx context.Context, id string, progress int) error {
	return r.perform(ctx, "SetProgress", pkgRemote.OpSetGoalProgress, id, map[string]int{"progress": progress})
}

func (r *implRepository) DeleteGoal(ctx context.Context, id string) error {
	return r.perform(ctx, "DeleteGoal", pkgRemote.OpDeleteGoal, id, nil)
}

func (r *implRepository) CreateSubtask(ctx context.Context, goalID string, st model.Subtask) error {
	return r.perform(ctx, "CreateSubtask", pkgRemote.OpCreateSubtask, goalID, subtaskPayload(st))
}

func (r *implRepository) SetSubtaskCompletion(ctx context.Context, goalID, subtaskID string, completed bool) error {
	return r.perform(ctx, "SetSubtaskCompletion", pkgRemote.OpSetSubtaskCompletion, goalID, map[string]any{
		"subtaskId": subtaskID,
		"completed": completed,
	})
}

func (r *implRepository) DeleteSubtask(ctx context.Context, goalID, subtaskID string) error {
	return r.perform(ctx, "DeleteSubtask", pkgRemote.OpDeleteSubtask, goalID, map[string]string{
		"subtaskId": subtaskID,
	})
}

// perform turns both transport failures and success=false into an error.
func (r *implRepository) perform(ctx context.Context, method string, op pkgRemote.Operation, id string, payload any) error {
	res, err := r.gw.Perform(ctx, op, id, payload)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn(method), err)
		return err
	}
	if err := res.Err(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn(method), err)
		return err
	}
	return nil
}

func formatDate(g model.Goal) string {
	if g.TargetDate.IsZero() {
		return ""
	}
	return g.TargetDate.Format(dateLayout)
}
