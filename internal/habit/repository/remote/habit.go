package remote

import (
	"context"
	"errors"
	"time"

	"questlog/internal/habit"
	"questlog/internal/model"
	pkgRemote "questlog/pkg/remote"
)

type policyPayload struct {
	Option    string  `json:"option"`
	TimeOfDay *string `json:"timeOfDay"`
}

type habitPayload struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Completed   bool          `json:"completed"`
	ResetPolicy policyPayload `json:"resetPolicy"`
}

func newPolicyPayload(p model.ResetPolicy) policyPayload {
	out := policyPayload{Option: string(p.Option)}
	if p.TimeOfDay != "" {
		tod := p.TimeOfDay
		out.TimeOfDay = &tod
	}
	return out
}

func (r *implRepository) FetchHabits(ctx context.Context) ([]model.Habit, error) {
	raw, err := r.gw.Fetch(ctx, pkgRemote.ResourceHabits, "")
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchHabits"), err)
		return nil, err
	}
	habits, err := decodeHabits(raw, r.loc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchHabits"), err)
		return nil, err
	}
	return habits, nil
}

func (r *implRepository) FetchHabit(ctx context.Context, id string) (model.Habit, error) {
	raw, err := r.gw.Fetch(ctx, pkgRemote.ResourceHabits, id)
	if errors.Is(err, pkgRemote.ErrNotFound) {
		return model.Habit{}, habit.ErrHabitNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchHabit"), err)
		return model.Habit{}, err
	}
	return decodeHabit(raw, r.loc)
}

func (r *implRepository) CreateHabit(ctx context.Context, h model.Habit) error {
	return r.perform(ctx, "CreateHabit", pkgRemote.OpCreateHabit, h.ID, habitPayload{
		Name:        h.Name,
		Description: h.Description,
		Completed:   h.Completed,
		ResetPolicy: newPolicyPayload(h.ResetPolicy),
	})
}

func (r *implRepository) SetCompletion(ctx context.Context, id string, completed bool, completedAt *time.Time) error {
	payload := map[string]any{
		"completed":   completed,
		"completedAt": nil,
	}
	if completedAt != nil {
		payload["completedAt"] = completedAt.UTC().Format(time.RFC3339)
	}
	return r.perform(ctx, "SetCompletion", pkgRemote.OpSetHabitCompletion, id, payload)
}

func (r *implRepository) UpdatePolicy(ctx context.Context, id string, policy model.ResetPolicy) error {
	return r.perform(ctx, "UpdatePolicy", pkgRemote.OpUpdateHabitPolicy, id, map[string]any{
		"resetPolicy": newPolicyPayload(policy),
	})
}

func (r *implRepository) DeleteHabit(ctx context.Context, id string) error {
	return r.perform(ctx, "DeleteHabit", pkgRemote.OpDeleteHabit, id, nil)
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
