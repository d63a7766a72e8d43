package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"questlog/internal/goal"
	"questlog/internal/middleware"
	"questlog/internal/model"
	"questlog/internal/mutation"
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

// mockUseCase answers every mutation with out/err and records the last input.
type mockUseCase struct {
	out       goal.MutationOutput
	err       error
	lastInput any
}

func (m *mockUseCase) Create(ctx context.Context, input goal.CreateInput) (goal.MutationOutput, error) {
	m.lastInput = input
	return m.out, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (goal.View, error) {
	return m.out.Goal, m.err
}

func (m *mockUseCase) List(ctx context.Context) (goal.ListOutput, error) {
	return goal.ListOutput{Goals: []goal.View{m.out.Goal}}, m.err
}

func (m *mockUseCase) Refresh(ctx context.Context) (goal.ListOutput, error) {
	return m.List(ctx)
}

func (m *mockUseCase) Update(ctx context.Context, input goal.UpdateInput) (goal.MutationOutput, error) {
	m.lastInput = input
	return m.out, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	m.lastInput = id
	return m.err
}

func (m *mockUseCase) AddSubtask(ctx context.Context, input goal.AddSubtaskInput) (goal.MutationOutput, error) {
	m.lastInput = input
	return m.out, m.err
}

func (m *mockUseCase) ToggleSubtask(ctx context.Context, input goal.ToggleSubtaskInput) (goal.MutationOutput, error) {
	m.lastInput = input
	return m.out, m.err
}

func (m *mockUseCase) DeleteSubtask(ctx context.Context, input goal.DeleteSubtaskInput) (goal.MutationOutput, error) {
	m.lastInput = input
	return m.out, m.err
}

func (m *mockUseCase) SetManualProgress(ctx context.Context, input goal.SetProgressInput) (goal.MutationOutput, error) {
	m.lastInput = input
	return m.out, m.err
}

func (m *mockUseCase) ToggleMode(ctx context.Context, id string) (goal.MutationOutput, error) {
	m.lastInput = id
	return m.out, m.err
}

func (m *mockUseCase) History(ctx context.Context, input goal.HistoryInput) (goal.HistoryOutput, error) {
	m.lastInput = input
	return goal.HistoryOutput{}, m.err
}

func (m *mockUseCase) ReconcileProgress(ctx context.Context) (int, error) {
	return 0, nil
}

func setupRouter(uc goal.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, middleware.Config{})
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc), mw)
	return r
}

func sampleGoal() goal.View {
	return goal.View{Goal: model.Goal{
		ID:       "g1",
		Title:    "Learn Go",
		Progress: 25,
		Subtasks: []model.Subtask{{ID: "s1", Completed: true}, {ID: "s2"}, {ID: "s3"}, {ID: "s4"}},
	}}
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func doRequest(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestToggleSubtask(t *testing.T) {
	t.Run("committed", func(t *testing.T) {
		uc := &mockUseCase{out: goal.MutationOutput{
			Goal:    sampleGoal(),
			Outcome: mutation.Outcome{Status: mutation.StatusCommitted, Kind: goal.KindSubtaskToggle},
		}}
		w, env := doRequest(setupRouter(uc), http.MethodPost, "/api/v1/goals/g1/subtasks/s2/toggle", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		in := uc.lastInput.(goal.ToggleSubtaskInput)
		if in.GoalID != "g1" || in.SubtaskID != "s2" {
			t.Errorf("unexpected input %+v", in)
		}
		var data struct {
			Goal struct {
				Mode     string `json:"mode"`
				Progress int    `json:"progress"`
			} `json:"goal"`
			Outcome struct {
				Status string `json:"status"`
			} `json:"outcome"`
		}
		json.Unmarshal(env.Data, &data)
		if data.Goal.Mode != "AUTOMATIC" || data.Goal.Progress != 25 || data.Outcome.Status != "COMMITTED" {
			t.Errorf("unexpected body %s", env.Data)
		}
	})

	t.Run("rolled back renders 409 with restored goal", func(t *testing.T) {
		uc := &mockUseCase{out: goal.MutationOutput{
			Goal: sampleGoal(),
			Outcome: mutation.Outcome{
				Status: mutation.StatusRolledBack,
				Kind:   goal.KindSubtaskToggle,
				Reason: errors.New("remote operation rejected"),
			},
		}}
		w, env := doRequest(setupRouter(uc), http.MethodPost, "/api/v1/goals/g1/subtasks/s2/toggle", "")

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var data struct {
			Goal struct {
				Progress int `json:"progress"`
			} `json:"goal"`
			Outcome struct {
				Status string `json:"status"`
				Reason string `json:"reason"`
			} `json:"outcome"`
		}
		json.Unmarshal(env.Data, &data)
		if data.Goal.Progress != 25 || data.Outcome.Status != "ROLLED_BACK" || data.Outcome.Reason == "" {
			t.Errorf("unexpected body %s", env.Data)
		}
	})
}

func TestErrorMapping(t *testing.T) {
	tcs := map[string]struct {
		err  error
		want int
	}{
		"goal not found":    {goal.ErrGoalNotFound, http.StatusNotFound},
		"subtask not found": {goal.ErrSubtaskNotFound, http.StatusNotFound},
		"invalid progress":  {goal.ErrInvalidProgress, http.StatusBadRequest},
		"timeout":           {context.DeadlineExceeded, http.StatusGatewayTimeout},
		"transport":         {errors.New("dial tcp: refused"), http.StatusBadGateway},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{err: tc.err}
			w, env := doRequest(setupRouter(uc), http.MethodPost, "/api/v1/goals/g1/mode/toggle", "")
			if w.Code != tc.want || env.ErrorCode != tc.want {
				t.Errorf("expected %d, got %d (error_code %d)", tc.want, w.Code, env.ErrorCode)
			}
		})
	}
}

func TestSetProgress(t *testing.T) {
	uc := &mockUseCase{out: goal.MutationOutput{Goal: sampleGoal(), Outcome: mutation.Outcome{Status: mutation.StatusCommitted}}}
	r := setupRouter(uc)

	w, _ := doRequest(r, http.MethodPut, "/api/v1/goals/g1/progress", `{"progress": 0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if in := uc.lastInput.(goal.SetProgressInput); in.Progress != 0 || in.GoalID != "g1" {
		t.Errorf("unexpected input %+v", in)
	}

	w, _ = doRequest(r, http.MethodPut, "/api/v1/goals/g1/progress", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing progress, got %d", w.Code)
	}
}

func TestCreateAndUpdate(t *testing.T) {
	uc := &mockUseCase{out: goal.MutationOutput{Goal: sampleGoal(), Outcome: mutation.Outcome{Status: mutation.StatusCommitted}}}
	r := setupRouter(uc)

	w, _ := doRequest(r, http.MethodPost, "/api/v1/goals", `{"title":"Run","target_date":"in 2 weeks","subtasks":["5k"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if in := uc.lastInput.(goal.CreateInput); in.TargetDate != "in 2 weeks" || len(in.Subtasks) != 1 {
		t.Errorf("unexpected input %+v", in)
	}

	w, _ = doRequest(r, http.MethodPost, "/api/v1/goals", `{"description":"no title"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	w, _ = doRequest(r, http.MethodPut, "/api/v1/goals/g1", `{"title":"New"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	in := uc.lastInput.(goal.UpdateInput)
	if in.ID != "g1" || in.Title == nil || *in.Title != "New" || in.Description != nil {
		t.Errorf("unexpected input %+v", in)
	}
}

func TestListAndDelete(t *testing.T) {
	uc := &mockUseCase{out: goal.MutationOutput{Goal: sampleGoal()}}
	r := setupRouter(uc)

	w, env := doRequest(r, http.MethodGet, "/api/v1/goals", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data struct {
		Goals []struct {
			ID         string  `json:"id"`
			TargetDate *string `json:"target_date"`
		} `json:"goals"`
	}
	json.Unmarshal(env.Data, &data)
	if len(data.Goals) != 1 || data.Goals[0].ID != "g1" || data.Goals[0].TargetDate != nil {
		t.Errorf("unexpected body %s", env.Data)
	}

	w, _ = doRequest(r, http.MethodDelete, "/api/v1/goals/g1", "")
	if w.Code != http.StatusOK || uc.lastInput.(string) != "g1" {
		t.Errorf("unexpected delete result %d %v", w.Code, uc.lastInput)
	}
}
