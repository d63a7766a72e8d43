package usecase

import (
	"time"

	"questlog/internal/habit/repository"
	"questlog/internal/model"
	"questlog/internal/mutation"
	"questlog/internal/recurrence"
	"questlog/internal/state"
	"questlog/pkg/datemath"
	"questlog/pkg/log"
)

// implUseCase is the private implementation of habit.UseCase.
type implUseCase struct {
	l         log.Logger
	habits    *state.Table[model.Habit]
	remote    repository.RemoteRepository
	coord     *mutation.Coordinator
	evaluator recurrence.Evaluator

	now func() time.Time
}

// New creates a new habit UseCase implementation. Reset boundaries are
// evaluated in the parser's location.
func New(
	l log.Logger,
	remote repository.RemoteRepository,
	coord *mutation.Coordinator,
	dates *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:         l,
		habits:    state.NewTable(model.Habit.Clone),
		remote:    remote,
		coord:     coord,
		evaluator: recurrence.NewEvaluator(dates.Location()),
		now:       time.Now,
	}
}
