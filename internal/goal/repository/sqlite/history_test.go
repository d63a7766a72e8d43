package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"questlog/internal/goal"
	repo "questlog/internal/goal/repository"
	"questlog/internal/model"
	pkgSqlite "questlog/pkg/sqlite"
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

func newTestRepo(t *testing.T) repo.HistoryRepository {
	t.Helper()
	db, err := pkgSqlite.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r, err := New(db, &mockLogger{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return r
}

func TestLatestMode(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	if _, ok, err := r.LatestMode(ctx, "g1"); err != nil || ok {
		t.Fatalf("expected no history, got ok=%v err=%v", ok, err)
	}

	steps := []repo.RecordEditOptions{
		{GoalID: "g1", Kind: goal.EditManualProgress, Mode: model.ProgressModeManual, Progress: 10},
		{GoalID: "g1", Kind: goal.EditDerived, Mode: model.ProgressModeAutomatic, Progress: 50},
		{GoalID: "g2", Kind: goal.EditModeToggle, Mode: model.ProgressModeAutomatic, Progress: 0},
	}
	for _, s := range steps {
		if err := r.RecordEdit(ctx, s); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	mode, ok, err := r.LatestMode(ctx, "g1")
	if err != nil || !ok || mode != model.ProgressModeManual {
		t.Errorf("derived entries must not change mode: got %s ok=%v err=%v", mode, ok, err)
	}

	r.RecordEdit(ctx, repo.RecordEditOptions{GoalID: "g1", Kind: goal.EditModeToggle, Mode: model.ProgressModeAutomatic, Progress: 75})
	mode, _, _ = r.LatestMode(ctx, "g1")
	if mode != model.ProgressModeAutomatic {
		t.Errorf("expected AUTOMATIC after toggle, got %s", mode)
	}
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	at := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		r.RecordEdit(ctx, repo.RecordEditOptions{
			GoalID:    "g1",
			Kind:      goal.EditManualProgress,
			Mode:      model.ProgressModeManual,
			Progress:  i * 10,
			CreatedAt: at.Add(time.Duration(i) * time.Minute),
		})
	}

	edits, err := r.ListEdits(ctx, repo.ListEditsOptions{GoalID: "g1", Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(edits) != 2 || edits[0].Progress != 20 || edits[1].Progress != 10 {
		t.Errorf("expected newest first, got %+v", edits)
	}
	if !edits[0].CreatedAt.Equal(at.Add(2 * time.Minute)) {
		t.Errorf("unexpected timestamp %v", edits[0].CreatedAt)
	}

	if err := r.DeleteGoalHistory(ctx, "g1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	edits, _ = r.ListEdits(ctx, repo.ListEditsOptions{GoalID: "g1"})
	if len(edits) != 0 {
		t.Errorf("expected empty history, got %d", len(edits))
	}
}

func TestClosedDB(t *testing.T) {
	db, err := pkgSqlite.Open(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	r, err := New(db, &mockLogger{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Close()

	err = r.RecordEdit(context.Background(), repo.RecordEditOptions{GoalID: "g1"})
	if !errors.Is(err, repo.ErrFailedToInsert) {
		t.Errorf("expected ErrFailedToInsert, got %v", err)
	}
}
