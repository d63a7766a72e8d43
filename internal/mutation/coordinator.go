// Package mutation applies local changes optimistically and reverts them
// when the remote write fails.
package mutation

import (
	"context"
	"fmt"
	"sync"

	"questlog/pkg/log"
)

// Coordinator runs optimistic commits. In-flight remote calls are never
// cancelled; they always resolve to an Outcome.
type Coordinator struct {
	l        log.Logger
	reporter Reporter

	mu       sync.Mutex
	inflight map[string]int
	wg       sync.WaitGroup
}

// New creates a Coordinator. reporter may be nil.
func New(l log.Logger, reporter Reporter) *Coordinator {
	return &Coordinator{
		l:        l,
		reporter: reporter,
		inflight: make(map[string]int),
	}
}

// Commit applies m, persists it and waits for the outcome.
// An Apply error is returned as is and nothing is persisted. If ctx ends
// first Commit returns ctx.Err(); the remote call still resolves and a
// failure still rolls back.
func (c *Coordinator) Commit(ctx context.Context, m Mutation) (Outcome, error) {
	done, err := c.CommitAsync(ctx, m)
	if err != nil {
		return Outcome{}, err
	}

	select {
	case o := <-done:
		return o, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// CommitAsync applies m and returns as soon as the local change is visible.
// The channel receives exactly one Outcome.
func (c *Coordinator) CommitAsync(ctx context.Context, m Mutation) (<-chan Outcome, error) {
	if m.Apply == nil || m.Persist == nil || m.Rollback == nil {
		return nil, ErrInvalidMutation
	}
	// Counted before Apply so the change is never visible while InFlight
	// still reports zero.
	c.begin(m.Entity)
	if err := m.Apply(); err != nil {
		c.end(m.Entity)
		return nil, err
	}

	done := make(chan Outcome, 1)
	pctx := context.WithoutCancel(ctx)

	go func() {
		defer c.end(m.Entity)
		done <- c.resolve(pctx, m)
	}()

	return done, nil
}

func (c *Coordinator) resolve(ctx context.Context, m Mutation) (o Outcome) {
	o = Outcome{Status: StatusCommitted, Entity: m.Entity, Kind: m.Kind}

	err := c.persist(ctx, m)
	if err == nil {
		c.l.Debugf(ctx, "mutation.Coordinator: %s %s committed", m.Kind, m.Entity)
		return o
	}

	m.Rollback()
	c.l.Warnf(ctx, "mutation.Coordinator: %s %s rolled back: %v", m.Kind, m.Entity, err)
	if c.reporter != nil {
		c.reporter.ReportRollback(ctx, m.Entity, m.Kind, err)
	}

	o.Status = StatusRolledBack
	o.Reason = err
	return o
}

func (c *Coordinator) persist(ctx context.Context, m Mutation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("persist panicked: %v", r)
		}
	}()
	return m.Persist(ctx)
}

func (c *Coordinator) begin(entity string) {
	c.wg.Add(1)
	c.mu.Lock()
	c.inflight[entity]++
	c.mu.Unlock()
}

func (c *Coordinator) end(entity string) {
	c.mu.Lock()
	if c.inflight[entity] <= 1 {
		delete(c.inflight, entity)
	} else {
		c.inflight[entity]--
	}
	c.mu.Unlock()
	c.wg.Done()
}

// InFlight returns the number of unresolved commits for entity.
func (c *Coordinator) InFlight(entity string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight[entity]
}

// Wait blocks until every in-flight commit has resolved.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
