package mutation

import "errors"

var (
	ErrRolledBack      = errors.New("change was rolled back")
	ErrInvalidMutation = errors.New("mutation needs Apply, Persist and Rollback")
)
