package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"questlog/config"
	"questlog/internal/goal"
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

// fakeSync serves one goal and one habit and rejects every write.
func fakeSync(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/goals", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"goals":[{"id":"g1","title":"Learn Go","progress":50,
			"subtasks":[{"id":"s1","title":"Tour","completed":true},{"id":"s2","title":"Book","completed":false}]}]}}`))
	})
	mux.HandleFunc("/api/v1/habits", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"habits":[{"id":"h1","name":"Run","completed":false}]}}`))
	})
	mux.HandleFunc("/api/v1/operations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"read only"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewLoadAndRollback(t *testing.T) {
	ctx := context.Background()
	sync := fakeSync(t)

	cfg := &config.Config{
		Remote:    config.RemoteConfig{URL: sync.URL, Timeout: time.Second},
		Scheduler: config.SchedulerConfig{Interval: time.Minute, Timezone: "UTC"},
		History:   config.HistoryConfig{DataDir: t.TempDir()},
	}

	a, err := New(ctx, cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	a.Load(ctx, &mockLogger{})

	goals, _ := a.Goals.List(ctx)
	habits, _ := a.Habits.List(ctx)
	if len(goals.Goals) != 1 || len(habits.Habits) != 1 {
		t.Fatalf("expected 1 goal and 1 habit, got %d and %d", len(goals.Goals), len(habits.Habits))
	}

	out, err := a.Goals.ToggleSubtask(ctx, goal.ToggleSubtaskInput{GoalID: "g1", SubtaskID: "s2"})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if out.Outcome.Committed() || out.Goal.Goal.Progress != 50 {
		t.Errorf("expected rollback to progress 50, got %+v", out)
	}

	if n := len(a.Notify.List(ctx).Notifications); n != 1 {
		t.Errorf("expected 1 notification, got %d", n)
	}
}
