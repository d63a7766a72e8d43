package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"questlog/internal/goal"
	"questlog/internal/habit"
	"questlog/internal/model"
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

// The stubs embed the interfaces and only implement what the routes under
// test call.
type stubGoals struct{ goal.UseCase }

func (s stubGoals) List(ctx context.Context) (goal.ListOutput, error) {
	return goal.ListOutput{Goals: []goal.View{{Goal: model.Goal{ID: "g1"}}}}, nil
}

type stubHabits struct{ habit.UseCase }

func (s stubHabits) List(ctx context.Context) (habit.ListOutput, error) {
	return habit.ListOutput{Habits: []habit.View{{Habit: model.Habit{ID: "h1"}}, {Habit: model.Habit{ID: "h2"}, Pending: 1}}}, nil
}

type stubNotify struct{ notify.UseCase }

func (s stubNotify) List(ctx context.Context) notify.ListOutput {
	return notify.ListOutput{}
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	srv, err := New(&mockLogger{}, Config{
		Logger:        &mockLogger{},
		Port:          8080,
		Mode:          gin.TestMode,
		Environment:   string(model.EnvironmentDevelopment),
		GoalUseCase:   stubGoals{},
		HabitUseCase:  stubHabits{},
		NotifyUseCase: stubNotify{},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return srv
}

func TestNewValidates(t *testing.T) {
	tcs := map[string]Config{
		"missing mode":  {Port: 8080, GoalUseCase: stubGoals{}, HabitUseCase: stubHabits{}, NotifyUseCase: stubNotify{}},
		"missing port":  {Mode: gin.TestMode, GoalUseCase: stubGoals{}, HabitUseCase: stubHabits{}, NotifyUseCase: stubNotify{}},
		"missing goals": {Mode: gin.TestMode, Port: 8080, HabitUseCase: stubHabits{}, NotifyUseCase: stubNotify{}},
	}
	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			if _, err := New(&mockLogger{}, cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t).Handler()

	for _, path := range []string{"/health", "/live"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	var body struct {
		Data struct {
			Status        string `json:"status"`
			Goals         int    `json:"goals"`
			Habits        int    `json:"habits"`
			PendingWrites int    `json:"pending_writes"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body.Data.Status != "ready" ||
		body.Data.Goals != 1 || body.Data.Habits != 2 || body.Data.PendingWrites != 1 {
		t.Errorf("unexpected /ready: %d %s", w.Code, w.Body.String())
	}
}

func TestDomainRoutesAndRequestID(t *testing.T) {
	h := newTestServer(t).Handler()

	for _, path := range []string{"/api/v1/goals", "/api/v1/habits", "/api/v1/notifications"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Request-ID", "req-1")
		h.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if got := w.Header().Get("X-Request-ID"); got != "req-1" {
			t.Errorf("%s: expected request id echoed, got %q", path, got)
		}
	}
}
