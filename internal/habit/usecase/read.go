package usecase

import (
	"context"

	"questlog/internal/habit"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (habit.View, error) {
	v, ok := uc.view(id)
	if !ok {
		return habit.View{}, habit.ErrHabitNotFound
	}
	return v, nil
}

func (uc *implUseCase) List(ctx context.Context) (habit.ListOutput, error) {
	habits := uc.habits.List()
	out := habit.ListOutput{Habits: make([]habit.View, len(habits))}
	for i, h := range habits {
		out.Habits[i] = habit.View{Habit: h, Pending: uc.coord.InFlight(h.ID)}
	}
	return out, nil
}

// Refresh replaces local habits with the sync service's copy. A habit
// written locally after the fetch started, or with an unresolved write,
// keeps its local state.
func (uc *implUseCase) Refresh(ctx context.Context) (habit.ListOutput, error) {
	revs := uc.habits.Revisions()
	busy := make(map[string]bool)
	for id := range revs {
		if uc.coord.InFlight(id) > 0 {
			busy[id] = true
			delete(revs, id)
		}
	}

	fetched, err := uc.remote.FetchHabits(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "habit.usecase.Refresh FetchHabits: %v", err)
		return habit.ListOutput{}, err
	}

	seen := make(map[string]bool, len(fetched))
	for _, h := range fetched {
		seen[h.ID] = true
		if busy[h.ID] {
			continue
		}
		if !uc.habits.Replace(h.ID, h, revs[h.ID]) {
			uc.l.Debugf(ctx, "habit.usecase.Refresh: %s changed locally, keeping local copy", h.ID)
		}
	}

	for id, rev := range revs {
		if !seen[id] {
			uc.habits.UntrackAt(id, rev)
		}
	}

	uc.l.Infof(ctx, "habit.usecase.Refresh: tracking %d habits", uc.habits.Len())
	return uc.List(ctx)
}
