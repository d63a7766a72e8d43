package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"questlog/internal/goal"
	repo "questlog/internal/goal/repository"
	"questlog/internal/model"
	"questlog/internal/mutation"
	"questlog/internal/state"
)

// errUnchanged aborts an apply that would not change anything.
var errUnchanged = errors.New("goal unchanged")

// commit runs an optimistic change of one goal through the coordinator.
// persist receives the snapshot taken by apply.
func (uc *implUseCase) commit(
	ctx context.Context,
	kind, id string,
	apply func(g *model.Goal) error,
	persist func(ctx context.Context, snap state.Snapshot[model.Goal]) error,
) (goal.MutationOutput, error) {
	var snap state.Snapshot[model.Goal]

	out, err := uc.coord.Commit(ctx, mutation.Mutation{
		Entity: id,
		Kind:   kind,
		Apply: func() error {
			s, err := uc.goals.Mutate(id, apply)
			if err != nil {
				return err
			}
			snap = s
			return nil
		},
		Persist: func(ctx context.Context) error {
			return persist(ctx, snap)
		},
		Rollback: func() {
			uc.restore(ctx, kind, snap)
		},
	})
	if errors.Is(err, state.ErrNotTracked) {
		return goal.MutationOutput{}, goal.ErrGoalNotFound
	}
	if err != nil {
		return goal.MutationOutput{}, err
	}

	v, _ := uc.view(id)
	return goal.MutationOutput{Goal: v, Outcome: out}, nil
}

func (uc *implUseCase) restore(ctx context.Context, kind string, snap state.Snapshot[model.Goal]) {
	if !uc.goals.Restore(snap) {
		uc.l.Warnf(ctx, "goal.usecase.restore: %s on %s superseded by a later write", kind, snap.ID)
	}
}

func (uc *implUseCase) view(id string) (goal.View, bool) {
	g, ok := uc.goals.Get(id)
	if !ok {
		return goal.View{}, false
	}
	return goal.View{Goal: g, Pending: uc.coord.InFlight(id)}, true
}

// persistProgress pushes a changed progress value and records why it changed.
func (uc *implUseCase) persistProgress(ctx context.Context, snap state.Snapshot[model.Goal], kind goal.EditKind) error {
	if snap.Applied.Progress == snap.Prior.Progress {
		return nil
	}
	if err := uc.remote.SetProgress(ctx, snap.ID, snap.Applied.Progress); err != nil {
		return err
	}
	uc.recordEdit(ctx, snap.Applied, kind)
	return nil
}

// recordEdit is best effort. A lost history entry only affects which mode
// is restored after a reload.
func (uc *implUseCase) recordEdit(ctx context.Context, g model.Goal, kind goal.EditKind) {
	err := uc.history.RecordEdit(ctx, repo.RecordEditOptions{
		GoalID:    g.ID,
		Kind:      kind,
		Mode:      g.EffectiveMode(),
		Progress:  g.Progress,
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "goal.usecase.recordEdit %s: %v", g.ID, err)
	}
}

func (uc *implUseCase) parseTargetDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	t, err := uc.dates.Parse(value, uc.now())
	if err != nil {
		return time.Time{}, goal.ErrInvalidTargetDate
	}
	return t, nil
}
