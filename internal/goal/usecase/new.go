package usecase

import (
	"time"

	"questlog/internal/goal/repository"
	"questlog/internal/model"
	"questlog/internal/mutation"
	"questlog/internal/state"
	"questlog/pkg/datemath"
	"questlog/pkg/gcalendar"
	"questlog/pkg/log"
)

// implUseCase is the private implementation of goal.UseCase.
type implUseCase struct {
	l       log.Logger
	goals   *state.Table[model.Goal]
	remote  repository.RemoteRepository
	history repository.HistoryRepository
	coord   *mutation.Coordinator
	dates   *datemath.Parser

	calendar   gcalendar.ICalendar
	calendarID string

	now func() time.Time
}

// New creates a new goal UseCase implementation. calendar may be nil, in
// which case goal deadlines are not mirrored to a calendar.
func New(
	l log.Logger,
	remote repository.RemoteRepository,
	history repository.HistoryRepository,
	coord *mutation.Coordinator,
	dates *datemath.Parser,
	calendar gcalendar.ICalendar,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		goals:      state.NewTable(model.Goal.Clone),
		remote:     remote,
		history:    history,
		coord:      coord,
		dates:      dates,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}
