package habit

import "errors"

var (
	ErrHabitNotFound      = errors.New("habit not found")
	ErrInvalidName        = errors.New("name is required")
	ErrInvalidResetOption = errors.New("reset option must be DAILY, WEEKLY, MONTHLY or NEVER")
	ErrInvalidTimeOfDay   = errors.New("time of day must be HH:MM")
)
