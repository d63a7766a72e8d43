package usecase

import (
	"context"
	"strings"
	"time"

	"questlog/internal/goal"
	repo "questlog/internal/goal/repository"
	"questlog/internal/model"
	"questlog/internal/state"
)

// Update changes descriptive fields optimistically.
func (uc *implUseCase) Update(ctx context.Context, input goal.UpdateInput) (goal.MutationOutput, error) {
	var (
		title  string
		target time.Time
		err    error
	)
	if input.Title != nil {
		if title = strings.TrimSpace(*input.Title); title == "" {
			return goal.MutationOutput{}, goal.ErrInvalidTitle
		}
	}
	if input.TargetDate != nil {
		if target, err = uc.parseTargetDate(*input.TargetDate); err != nil {
			return goal.MutationOutput{}, err
		}
	}

	apply := func(g *model.Goal) error {
		if input.Title != nil {
			g.Title = title
		}
		if input.Description != nil {
			g.Description = strings.TrimSpace(*input.Description)
		}
		if input.TargetDate != nil {
			g.TargetDate = target
		}
		return nil
	}

	persist := func(ctx context.Context, snap state.Snapshot[model.Goal]) error {
		g := snap.Applied
		return uc.remote.UpdateGoal(ctx, repo.UpdateGoalOptions{
			ID:           g.ID,
			Title:        g.Title,
			Description:  g.Description,
			TargetDate:   g.TargetDate,
			CalendarLink: g.CalendarLink,
		})
	}

	return uc.commit(ctx, goal.KindUpdate, input.ID, apply, persist)
}

// Delete waits for the sync service before removing the goal locally.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, ok := uc.goals.Get(id); !ok {
		return goal.ErrGoalNotFound
	}

	if err := uc.remote.DeleteGoal(ctx, id); err != nil {
		uc.l.Errorf(ctx, "goal.usecase.Delete DeleteGoal %s: %v", id, err)
		return err
	}

	uc.goals.Untrack(id)
	if err := uc.history.DeleteGoalHistory(ctx, id); err != nil {
		uc.l.Warnf(ctx, "goal.usecase.Delete DeleteGoalHistory %s: %v", id, err)
	}
	return nil
}
