package remote

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"questlog/internal/habit"
	"questlog/internal/model"
	pkgRemote "questlog/pkg/remote"
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

type performCall struct {
	op       pkgRemote.Operation
	entityID string
	payload  []byte
}

type mockGateway struct {
	result   pkgRemote.Result
	err      error
	body     []byte
	fetchErr error
	calls    []performCall
}

func (m *mockGateway) Perform(ctx context.Context, op pkgRemote.Operation, entityID string, payload any) (pkgRemote.Result, error) {
	b, _ := json.Marshal(payload)
	m.calls = append(m.calls, performCall{op, entityID, b})
	return m.result, m.err
}

func (m *mockGateway) Fetch(ctx context.Context, resource pkgRemote.Resource, entityID string) ([]byte, error) {
	return m.body, m.fetchErr
}

func TestDecodeHabits(t *testing.T) {
	raw := `{"success":true,"data":{"habits":[
		{"id":"h1","name":"Run","completed":true,"completedAt":"2024-03-04T08:00:00Z",
		 "resetPolicy":{"option":"weekly","timeOfDay":"09:00"}},
		{"_id":"h2","title":"Read","isCompleted":"false","reset_option":"DAILY","reset_time":"7:05:00"},
		{"habitId":"h3","name":"Stretch","reset_policy":{"type":"hourly","time":"10:00"}},
		{"name":"no id is dropped"}
	]}}`

	habits, err := decodeHabits([]byte(raw), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(habits) != 3 {
		t.Fatalf("expected 3 habits, got %d", len(habits))
	}

	tcs := []struct {
		id        string
		name      string
		completed bool
		policy    model.ResetPolicy
	}{
		{"h1", "Run", true, model.ResetPolicy{Option: model.ResetWeekly, TimeOfDay: "09:00"}},
		{"h2", "Read", false, model.ResetPolicy{Option: model.ResetDaily, TimeOfDay: "07:05"}},
		{"h3", "Stretch", false, model.ResetPolicy{Option: model.ResetNever, TimeOfDay: "10:00"}},
	}
	for i, tc := range tcs {
		h := habits[i]
		if h.ID != tc.id || h.Name != tc.name || h.Completed != tc.completed || h.ResetPolicy != tc.policy {
			t.Errorf("habit %d: expected %+v, got %+v", i, tc, h)
		}
	}

	want := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	if at := habits[0].CompletedAt; at == nil || !at.Equal(want) {
		t.Errorf("expected completedAt %v, got %v", want, at)
	}
	if habits[1].CompletedAt != nil {
		t.Errorf("expected nil completedAt, got %v", habits[1].CompletedAt)
	}
}

func TestNormalizeTimeOfDay(t *testing.T) {
	tcs := map[string]string{
		"09:00":    "09:00",
		"9:00":     "09:00",
		"23:59:59": "23:59",
		"":         "",
		"noon":     "",
		"24:00":    "",
	}
	for in, want := range tcs {
		if got := normalizeTimeOfDay(in); got != want {
			t.Errorf("normalizeTimeOfDay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFetchHabit(t *testing.T) {
	gw := &mockGateway{body: []byte(`{"data":{"habit":{"id":"h9","name":"Swim"}}}`)}
	repo := New(gw, &mockLogger{}, time.UTC)

	h, err := repo.FetchHabit(context.Background(), "h9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.ID != "h9" || h.ResetPolicy.Option != model.ResetNever {
		t.Errorf("unexpected habit: %+v", h)
	}

	gw.fetchErr = pkgRemote.ErrNotFound
	if _, err := repo.FetchHabit(context.Background(), "h9"); !errors.Is(err, habit.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestSetCompletionPayload(t *testing.T) {
	ctx := context.Background()
	gw := &mockGateway{result: pkgRemote.Result{Success: true}}
	repo := New(gw, &mockLogger{}, time.UTC)

	at := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	if err := repo.SetCompletion(ctx, "h1", true, &at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SetCompletion(ctx, "h1", false, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		`{"completed":true,"completedAt":"2024-03-04T08:00:00Z"}`,
		`{"completed":false,"completedAt":null}`,
	}
	for i, w := range want {
		call := gw.calls[i]
		if call.op != pkgRemote.OpSetHabitCompletion || call.entityID != "h1" || string(call.payload) != w {
			t.Errorf("call %d: unexpected %+v (%s)", i, call, call.payload)
		}
	}

	gw.result = pkgRemote.Result{Success: false}
	if err := repo.UpdatePolicy(ctx, "h1", model.ResetPolicy{Option: model.ResetNever}); !errors.Is(err, pkgRemote.ErrRejected) {
		t.Errorf("expected ErrRejected, got %v", err)
	}
	if string(gw.calls[2].payload) != `{"resetPolicy":{"option":"NEVER","timeOfDay":null}}` {
		t.Errorf("unexpected policy payload: %s", gw.calls[2].payload)
	}
}
