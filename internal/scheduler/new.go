package scheduler

import (
	"sync"
	"time"

	"questlog/pkg/log"
)

// DefaultInterval matches the minute granularity of habit reset times.
const DefaultInterval = time.Minute

// Config holds the scheduler collaborators. Goals may be nil.
type Config struct {
	Interval time.Duration
	Habits   HabitResetter
	Goals    ProgressReconciler
}

// Scheduler re-evaluates recurrence on a fixed period between Start and Stop.
type Scheduler struct {
	l        log.Logger
	interval time.Duration
	habits   HabitResetter
	goals    ProgressReconciler
	now      func() time.Time

	mu     sync.Mutex
	cancel func()
	done   chan struct{}
}

// New creates a Scheduler. It does nothing until Start.
func New(l log.Logger, cfg Config) *Scheduler {
	if cfg.Habits == nil {
		panic("scheduler: habit resetter is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &Scheduler{
		l:        l,
		interval: cfg.Interval,
		habits:   cfg.Habits,
		goals:    cfg.Goals,
		now:      time.Now,
	}
}
