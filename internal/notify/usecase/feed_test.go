package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"questlog/internal/goal"
	"questlog/internal/habit"
	"questlog/internal/notify"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestFeed(capacity int) *implUseCase {
	uc := New(&mockLogger{}, capacity, time.Hour)
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	tick := 0
	uc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return uc
}

func TestReportRollback(t *testing.T) {
	ctx := context.Background()
	uc := newTestFeed(10)

	uc.ReportRollback(ctx, "goal-1", goal.KindSubtaskToggle, errors.New("remote operation rejected"))

	out := uc.List(ctx)
	if len(out.Notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(out.Notifications))
	}
	n := out.Notifications[0]
	if n.Level != notify.LevelError || n.Entity != "goal-1" || n.Kind != goal.KindSubtaskToggle {
		t.Errorf("unexpected notification: %+v", n)
	}
	if !strings.Contains(n.Message, "reverted") || !strings.Contains(n.Message, "rejected") {
		t.Errorf("unexpected message: %q", n.Message)
	}
	if n.ID == "" {
		t.Error("expected generated id")
	}
}

func TestListNewestFirstAndCapacity(t *testing.T) {
	ctx := context.Background()
	uc := newTestFeed(2)

	uc.Push(ctx, notify.PushInput{Message: "first"})
	uc.Push(ctx, notify.PushInput{Message: "second"})
	uc.Push(ctx, notify.PushInput{Message: "third"})

	out := uc.List(ctx).Notifications
	if len(out) != 2 {
		t.Fatalf("expected capacity to cap at 2, got %d", len(out))
	}
	if out[0].Message != "third" || out[1].Message != "second" {
		t.Errorf("unexpected order: %q, %q", out[0].Message, out[1].Message)
	}
	if out[0].Level != notify.LevelInfo {
		t.Errorf("expected default INFO level, got %s", out[0].Level)
	}
}

func TestDismiss(t *testing.T) {
	ctx := context.Background()
	uc := newTestFeed(10)

	n := uc.Push(ctx, notify.PushInput{Message: "hello"})
	if err := uc.Dismiss(ctx, n.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Dismiss(ctx, n.ID); !errors.Is(err, notify.ErrNotificationNotFound) {
		t.Errorf("expected ErrNotificationNotFound, got %v", err)
	}
	if len(uc.List(ctx).Notifications) != 0 {
		t.Error("expected empty feed")
	}
}

func TestDescribeKnownKinds(t *testing.T) {
	kinds := []string{
		goal.KindCreate, goal.KindUpdate, goal.KindProgress, goal.KindMode,
		goal.KindSubtaskAdd, goal.KindSubtaskToggle, goal.KindSubtaskDelete,
		habit.KindCreate, habit.KindToggle, habit.KindPolicy,
	}
	seen := make(map[string]string, len(kinds))
	for _, kind := range kinds {
		got := describe(kind)
		if got == describe("unknown.kind") {
			t.Errorf("%s: expected a specific description, got %q", kind, got)
		}
		if prev, ok := seen[got]; ok {
			t.Errorf("%s and %s share the description %q", prev, kind, got)
		}
		seen[got] = kind
	}
}
