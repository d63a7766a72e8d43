package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"questlog/internal/goal"
	"questlog/internal/habit"
	"questlog/internal/notify"
)

func (uc *implUseCase) Push(ctx context.Context, input notify.PushInput) notify.Notification {
	n := notify.Notification{
		ID:        uuid.NewString(),
		Level:     input.Level,
		Entity:    input.Entity,
		Kind:      input.Kind,
		Message:   input.Message,
		CreatedAt: uc.now(),
	}
	if n.Level == "" {
		n.Level = notify.LevelInfo
	}
	uc.items.Add(n.ID, n)
	return n
}

// ReportRollback records a failed optimistic change.
func (uc *implUseCase) ReportRollback(ctx context.Context, entity, kind string, reason error) {
	n := uc.Push(ctx, notify.PushInput{
		Level:   notify.LevelError,
		Entity:  entity,
		Kind:    kind,
		Message: fmt.Sprintf("Could not save %s. Your change was reverted: %v", describe(kind), reason),
	})
	uc.l.Infof(ctx, "notify.usecase.ReportRollback: %s for %s (%s)", n.ID, entity, kind)
}

// List returns live notifications, newest first.
func (uc *implUseCase) List(ctx context.Context) notify.ListOutput {
	values := uc.items.Values()

	out := make([]notify.Notification, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		out = append(out, values[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return notify.ListOutput{Notifications: out}
}

func (uc *implUseCase) Dismiss(ctx context.Context, id string) error {
	if !uc.items.Remove(id) {
		return notify.ErrNotificationNotFound
	}
	return nil
}

func describe(kind string) string {
	switch kind {
	case goal.KindSubtaskToggle:
		return "the subtask change"
	case goal.KindSubtaskAdd:
		return "the new subtask"
	case goal.KindSubtaskDelete:
		return "the subtask deletion"
	case goal.KindProgress:
		return "the progress change"
	case goal.KindMode:
		return "the progress mode change"
	case goal.KindUpdate:
		return "the goal changes"
	case goal.KindCreate:
		return "the new goal"
	case habit.KindToggle:
		return "the habit completion"
	case habit.KindPolicy:
		return "the reset schedule"
	case habit.KindCreate:
		return "the new habit"
	default:
		return "your change"
	}
}
