package mutation

import (
	"context"
	"fmt"
)

// Status is the terminal state of one commit.
type Status string

const (
	StatusCommitted  Status = "COMMITTED"
	StatusRolledBack Status = "ROLLED_BACK"
)

// Outcome is returned once the remote call has resolved.
type Outcome struct {
	Status Status
	Entity string
	Kind   string
	Reason error // set when rolled back
}

// Committed reports whether the local change was kept.
func (o Outcome) Committed() bool {
	return o.Status == StatusCommitted
}

// Err is nil for a committed outcome and wraps ErrRolledBack otherwise.
func (o Outcome) Err() error {
	if o.Committed() {
		return nil
	}
	if o.Reason == nil {
		return ErrRolledBack
	}
	return fmt.Errorf("%w: %v", ErrRolledBack, o.Reason)
}

// Mutation describes one optimistic change.
// Apply writes local state and may refuse by returning an error, in which
// case nothing is persisted. Persist performs the remote call. Rollback
// restores the state captured by Apply.
type Mutation struct {
	Entity   string
	Kind     string
	Apply    func() error
	Persist  func(ctx context.Context) error
	Rollback func()
}

// Reporter surfaces a rollback to the user.
type Reporter interface {
	ReportRollback(ctx context.Context, entity, kind string, reason error)
}
