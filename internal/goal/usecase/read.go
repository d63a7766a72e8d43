package usecase

import (
	"context"

	"questlog/internal/goal"
	repo "questlog/internal/goal/repository"
	"questlog/internal/model"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (goal.View, error) {
	v, ok := uc.view(id)
	if !ok {
		return goal.View{}, goal.ErrGoalNotFound
	}
	return v, nil
}

func (uc *implUseCase) List(ctx context.Context) (goal.ListOutput, error) {
	goals := uc.goals.List()
	out := goal.ListOutput{Goals: make([]goal.View, len(goals))}
	for i, g := range goals {
		out.Goals[i] = goal.View{Goal: g, Pending: uc.coord.InFlight(g.ID)}
	}
	return out, nil
}

// Refresh replaces local goals with the sync service's copy. A goal written
// locally after the fetch started, or with an unresolved write, keeps its
// local state. Mode is not stored remotely and is restored from the edit
// history.
func (uc *implUseCase) Refresh(ctx context.Context) (goal.ListOutput, error) {
	revs, busy := uc.settled()

	fetched, err := uc.remote.FetchGoals(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "goal.usecase.Refresh FetchGoals: %v", err)
		return goal.ListOutput{}, err
	}

	seen := make(map[string]bool, len(fetched))
	for _, g := range fetched {
		seen[g.ID] = true
		if busy[g.ID] {
			continue
		}
		g.Mode = uc.restoreMode(ctx, g.ID)
		if !uc.goals.Replace(g.ID, g, revs[g.ID]) {
			uc.l.Debugf(ctx, "goal.usecase.Refresh: %s changed locally, keeping local copy", g.ID)
		}
	}

	for id, rev := range revs {
		if !seen[id] {
			uc.goals.UntrackAt(id, rev)
		}
	}

	uc.l.Infof(ctx, "goal.usecase.Refresh: tracking %d goals", uc.goals.Len())
	return uc.List(ctx)
}

// settled returns the revision of every goal without an unresolved write,
// and the set of goals that have one. Revisions are read before the
// in-flight check, so a commit starting later always moves its goal past
// the recorded revision.
func (uc *implUseCase) settled() (map[string]uint64, map[string]bool) {
	revs := uc.goals.Revisions()
	busy := make(map[string]bool)
	for id := range revs {
		if uc.coord.InFlight(id) > 0 {
			busy[id] = true
			delete(revs, id)
		}
	}
	return revs, busy
}

func (uc *implUseCase) restoreMode(ctx context.Context, id string) model.ProgressMode {
	mode, ok, err := uc.history.LatestMode(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "goal.usecase.Refresh LatestMode %s: %v", id, err)
	}
	if !ok || mode == "" {
		return model.ProgressModeAutomatic
	}
	return mode
}

func (uc *implUseCase) History(ctx context.Context, input goal.HistoryInput) (goal.HistoryOutput, error) {
	if _, ok := uc.goals.Get(input.GoalID); !ok {
		return goal.HistoryOutput{}, goal.ErrGoalNotFound
	}
	edits, err := uc.history.ListEdits(ctx, repo.ListEditsOptions{GoalID: input.GoalID, Limit: input.Limit})
	if err != nil {
		uc.l.Errorf(ctx, "goal.usecase.History ListEdits: %v", err)
		return goal.HistoryOutput{}, err
	}
	return goal.HistoryOutput{Edits: edits}, nil
}
