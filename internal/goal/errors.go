package goal

import "errors"

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrSubtaskNotFound   = errors.New("subtask not found")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
	ErrInvalidTitle      = errors.New("title is required")
	ErrInvalidTargetDate = errors.New("target date is not recognised")
)
