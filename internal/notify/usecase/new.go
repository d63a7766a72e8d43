package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"questlog/internal/notify"
	"questlog/pkg/log"
)

const (
	defaultCapacity = 50
	defaultTTL      = 10 * time.Minute
)

type implUseCase struct {
	l     log.Logger
	items *expirable.LRU[string, notify.Notification]
	now   func() time.Time
}

// New creates a notification feed holding at most capacity entries, each
// expiring after ttl. Non-positive values fall back to defaults.
func New(l log.Logger, capacity int, ttl time.Duration) *implUseCase {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implUseCase{
		l:     l,
		items: expirable.NewLRU[string, notify.Notification](capacity, nil, ttl),
		now:   time.Now,
	}
}
