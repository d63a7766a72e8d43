package remote

import (
	"math"
	"time"

	"questlog/internal/goal/repository"
	"questlog/internal/model"
	pkgRemote "questlog/pkg/remote"
)

var (
	goalPaths     = [][]string{{"data", "goal"}, {"data"}, {"goal"}, {}}
	goalListPaths = [][]string{{"data", "goals"}, {"goals"}, {"data"}, {}}
)

var (
	idKeys          = []string{"id", "_id", "goalId", "goal_id"}
	titleKeys       = []string{"title", "name"}
	descriptionKeys = []string{"description", "details", "notes"}
	targetDateKeys  = []string{"targetDate", "target_date", "deadline", "dueDate", "due_date"}
	progressKeys    = []string{"progress", "percentage", "percent"}
	subtaskKeys     = []string{"subtasks", "subTasks", "tasks", "steps"}
	calendarKeys    = []string{"calendarLink", "calendar_link"}

	subtaskIDKeys    = []string{"id", "_id", "subtaskId", "subtask_id"}
	subtaskTitleKeys = []string{"title", "name", "text"}
	completedKeys    = []string{"completed", "isCompleted", "is_completed", "done"}
)

func isGoal(obj []byte) bool {
	return pkgRemote.String(obj, idKeys...) != ""
}

// decodeGoal normalizes a single-goal response body.
func decodeGoal(raw []byte, loc *time.Location) (model.Goal, error) {
	obj, ok := pkgRemote.Unwrap(raw, isGoal, goalPaths...)
	if !ok {
		return model.Goal{}, repository.ErrMalformed
	}
	return toGoal(obj, loc), nil
}

// decodeGoals normalizes a goal list response body. Elements without an id
// are dropped.
func decodeGoals(raw []byte, loc *time.Location) ([]model.Goal, error) {
	arr, ok := pkgRemote.UnwrapArray(raw, goalListPaths...)
	if !ok {
		return nil, repository.ErrMalformed
	}

	goals := make([]model.Goal, 0)
	pkgRemote.EachObject(arr, func(obj []byte) {
		if isGoal(obj) {
			goals = append(goals, toGoal(obj, loc))
		}
	})
	return goals, nil
}

func toGoal(obj []byte, loc *time.Location) model.Goal {
	g := model.Goal{
		ID:           pkgRemote.String(obj, idKeys...),
		Title:        pkgRemote.String(obj, titleKeys...),
		Description:  pkgRemote.String(obj, descriptionKeys...),
		CalendarLink: pkgRemote.String(obj, calendarKeys...),
		Mode:         model.ProgressModeAutomatic,
	}

	if t, ok := pkgRemote.Time(obj, loc, targetDateKeys...); ok {
		g.TargetDate = t
	}
	if p, ok := pkgRemote.Number(obj, progressKeys...); ok {
		g.Progress = clampProgress(p)
	}
	if arr, ok := pkgRemote.Raw(obj, subtaskKeys...); ok {
		g.Subtasks = toSubtasks(arr)
	}
	return g
}

func toSubtasks(arr []byte) []model.Subtask {
	subtasks := make([]model.Subtask, 0)
	pkgRemote.EachObject(arr, func(obj []byte) {
		id := pkgRemote.String(obj, subtaskIDKeys...)
		if id == "" {
			return
		}
		completed, _ := pkgRemote.Bool(obj, completedKeys...)
		subtasks = append(subtasks, model.Subtask{
			ID:        id,
			Title:     pkgRemote.String(obj, subtaskTitleKeys...),
			Completed: completed,
		})
	})
	return subtasks
}

func clampProgress(p float64) int {
	v := int(math.Round(p))
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
