package scheduler

import (
	"context"
	"time"
)

// HabitResetter clears habits whose reset boundary is now.
type HabitResetter interface {
	ResetDue(ctx context.Context, now time.Time) int
}

// ProgressReconciler corrects goals whose derived progress went stale.
type ProgressReconciler interface {
	ReconcileProgress(ctx context.Context) (int, error)
}
