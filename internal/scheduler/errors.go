package scheduler

import "errors"

var ErrAlreadyRunning = errors.New("scheduler already running")
