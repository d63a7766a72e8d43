package scheduler

import (
	"context"
	"time"
)

// Start ticks once immediately and then every interval until Stop is
// called or ctx ends.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)

	s.l.Infof(ctx, "scheduler.Start: every %s", s.interval)
	return nil
}

// Stop cancels the timer and waits for a running tick to finish.
// Stop on a scheduler that is not running is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one reconciliation pass.
func (s *Scheduler) Tick(ctx context.Context) {
	if n := s.habits.ResetDue(ctx, s.now()); n > 0 {
		s.l.Debugf(ctx, "scheduler.Tick: reset %d habits", n)
	}

	if s.goals == nil {
		return
	}
	if _, err := s.goals.ReconcileProgress(ctx); err != nil {
		s.l.Errorf(ctx, "scheduler.Tick ReconcileProgress: %v", err)
	}
}
