package remote

import (
	"strings"
	"time"

	"questlog/internal/habit/repository"
	"questlog/internal/model"
	"questlog/pkg/datemath"
	pkgRemote "questlog/pkg/remote"
)

var (
	habitPaths     = [][]string{{"data", "habit"}, {"data"}, {"habit"}, {}}
	habitListPaths = [][]string{{"data", "habits"}, {"habits"}, {"data"}, {}}
)

var (
	idKeys          = []string{"id", "_id", "habitId", "habit_id"}
	nameKeys        = []string{"name", "title"}
	descriptionKeys = []string{"description", "details", "notes"}
	completedKeys   = []string{"completed", "isCompleted", "is_completed", "done", "completedToday"}
	completedAtKeys = []string{"completedAt", "completed_at", "lastCompleted", "last_completed", "lastCompletedAt"}
	policyKeys      = []string{"resetPolicy", "reset_policy", "reset"}

	optionKeys     = []string{"option", "type", "frequency"}
	timeOfDayKeys  = []string{"timeOfDay", "time_of_day", "time", "resetTime"}
	flatOptionKeys = []string{"resetOption", "reset_option", "resetFrequency", "reset_frequency"}
	flatTimeKeys   = []string{"resetTime", "reset_time", "timeOfDay", "time_of_day"}
)

func isHabit(obj []byte) bool {
	return pkgRemote.String(obj, idKeys...) != ""
}

func decodeHabit(raw []byte, loc *time.Location) (model.Habit, error) {
	obj, ok := pkgRemote.Unwrap(raw, isHabit, habitPaths...)
	if !ok {
		return model.Habit{}, repository.ErrMalformed
	}
	return toHabit(obj, loc), nil
}

// decodeHabits normalizes a habit list. Elements without an id are dropped.
func decodeHabits(raw []byte, loc *time.Location) ([]model.Habit, error) {
	arr, ok := pkgRemote.UnwrapArray(raw, habitListPaths...)
	if !ok {
		return nil, repository.ErrMalformed
	}

	habits := make([]model.Habit, 0)
	pkgRemote.EachObject(arr, func(obj []byte) {
		if isHabit(obj) {
			habits = append(habits, toHabit(obj, loc))
		}
	})
	return habits, nil
}

func toHabit(obj []byte, loc *time.Location) model.Habit {
	h := model.Habit{
		ID:          pkgRemote.String(obj, idKeys...),
		Name:        pkgRemote.String(obj, nameKeys...),
		Description: pkgRemote.String(obj, descriptionKeys...),
		ResetPolicy: toPolicy(obj),
	}

	h.Completed, _ = pkgRemote.Bool(obj, completedKeys...)
	if at, ok := pkgRemote.Time(obj, loc, completedAtKeys...); ok {
		h.CompletedAt = &at
	}
	return h
}

// toPolicy reads either a nested policy object or flattened fields.
// Unknown options become NEVER and bad times leave the policy unactionable.
func toPolicy(obj []byte) model.ResetPolicy {
	var option, tod string
	if nested, ok := pkgRemote.Raw(obj, policyKeys...); ok {
		option = pkgRemote.String(nested, optionKeys...)
		tod = pkgRemote.String(nested, timeOfDayKeys...)
	} else {
		option = pkgRemote.String(obj, flatOptionKeys...)
		tod = pkgRemote.String(obj, flatTimeKeys...)
	}

	p := model.ResetPolicy{Option: model.ResetNever}
	if opt, ok := model.ParseResetOption(option); ok {
		p.Option = opt
	}
	p.TimeOfDay = normalizeTimeOfDay(tod)
	return p
}

// normalizeTimeOfDay accepts "7:05", "07:05" and "07:05:00".
func normalizeTimeOfDay(value string) string {
	value = strings.TrimSpace(value)
	for _, layout := range []string{datemath.TimeOfDayLayout, "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return datemath.FormatTimeOfDay(t)
		}
	}
	return ""
}
