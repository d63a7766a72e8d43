// Package progress derives goal progress from subtasks and governs when the
// derived value may overwrite the displayed one.
package progress

import "questlog/internal/model"

const (
	MinProgress = 0
	MaxProgress = 100
)

// Derive returns round-half-up(100 * completed / total).
// For an empty set it returns previous and ok=false: there is no input, and the
// caller must not take the overwrite path.
func Derive(subtasks []model.Subtask, previous int) (value int, ok bool) {
	total := len(subtasks)
	if total == 0 {
		return previous, false
	}

	completed := 0
	for _, st := range subtasks {
		if st.Completed {
			completed++
		}
	}

	// floor(100k/n + 1/2) in integer arithmetic.
	return (200*completed + total) / (2 * total), true
}
