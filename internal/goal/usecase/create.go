package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"questlog/internal/goal"
	"questlog/internal/model"
	"questlog/internal/mutation"
	"questlog/internal/progress"
	"questlog/internal/state"
	"questlog/pkg/gcalendar"
)

// Create tracks a new goal immediately and removes it again if the sync
// service rejects it.
func (uc *implUseCase) Create(ctx context.Context, input goal.CreateInput) (goal.MutationOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return goal.MutationOutput{}, goal.ErrInvalidTitle
	}
	target, err := uc.parseTargetDate(input.TargetDate)
	if err != nil {
		return goal.MutationOutput{}, err
	}

	g := model.Goal{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		TargetDate:  target,
		Mode:        model.ProgressModeAutomatic,
	}
	for _, st := range input.Subtasks {
		if st = strings.TrimSpace(st); st != "" {
			g.Subtasks = append(g.Subtasks, model.Subtask{ID: uuid.NewString(), Title: st})
		}
	}
	progress.Rederive(&g)

	out, err := uc.coord.Commit(ctx, mutation.Mutation{
		Entity: g.ID,
		Kind:   goal.KindCreate,
		Apply: func() error {
			return uc.goals.Insert(g.ID, g)
		},
		Persist: func(ctx context.Context) error {
			return uc.persistCreate(ctx, g)
		},
		// The goal never existed remotely, so later local edits go too.
		Rollback: func() {
			uc.goals.Untrack(g.ID)
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "goal.usecase.Create: %v", err)
		return goal.MutationOutput{}, err
	}

	v, ok := uc.view(g.ID)
	if !ok {
		v = goal.View{Goal: g}
	}
	return goal.MutationOutput{Goal: v, Outcome: out}, nil
}

func (uc *implUseCase) persistCreate(ctx context.Context, g model.Goal) error {
	event := uc.createDeadline(ctx, g)
	if event != nil {
		g.CalendarLink = event.HtmlLink
	}

	if err := uc.remote.CreateGoal(ctx, g); err != nil {
		if event != nil {
			if derr := uc.calendar.DeleteEvent(ctx, uc.calendarID, event.ID); derr != nil {
				uc.l.Warnf(ctx, "goal.usecase.Create DeleteEvent %s: %v", event.ID, derr)
			}
		}
		return err
	}

	if event != nil {
		_, err := uc.goals.Mutate(g.ID, func(cur *model.Goal) error {
			cur.CalendarLink = event.HtmlLink
			return nil
		})
		if err != nil && !errors.Is(err, state.ErrNotTracked) {
			uc.l.Warnf(ctx, "goal.usecase.Create link %s: %v", g.ID, err)
		}
	}
	return nil
}

// createDeadline mirrors the target date to the calendar. Failures only
// lose the link.
func (uc *implUseCase) createDeadline(ctx context.Context, g model.Goal) *gcalendar.Event {
	if uc.calendar == nil || g.TargetDate.IsZero() {
		return nil
	}
	event, err := uc.calendar.CreateDeadline(ctx, gcalendar.CreateDeadlineRequest{
		CalendarID:  uc.calendarID,
		Summary:     "Goal deadline: " + g.Title,
		Description: g.Description,
		Date:        g.TargetDate,
	})
	if err != nil {
		uc.l.Warnf(ctx, "goal.usecase.Create CreateDeadline %s: %v", g.ID, err)
		return nil
	}
	return event
}
