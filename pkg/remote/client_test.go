package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"questlog/pkg/remote"
)

func TestPerform(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/operations" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer token-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Operation string         `json:"operation"`
			EntityID  string         `json:"entity_id"`
			Payload   map[string]any `json:"payload"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		switch req.EntityID {
		case "ok":
			w.Write([]byte(`{"success":true,"data":{"id":"ok"}}`))
		case "rejected":
			w.Write([]byte(`{"success":false,"error":"goal is archived"}`))
		case "conflict":
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		}
	}))
	defer ts.Close()

	client := remote.NewClient(remote.Config{BaseURL: ts.URL + "/", AccessToken: "token-1", Timeout: time.Second})
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		res, err := client.Perform(ctx, remote.OpSetGoalProgress, "ok", map[string]int{"progress": 50})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Err() != nil {
			t.Errorf("expected success, got %v", res.Err())
		}
		if string(res.Data) != `{"id":"ok"}` {
			t.Errorf("unexpected data: %s", res.Data)
		}
	})

	t.Run("Rejected result", func(t *testing.T) {
		res, err := client.Perform(ctx, remote.OpSetGoalProgress, "rejected", nil)
		if err != nil {
			t.Fatalf("unexpected transport error: %v", err)
		}
		if !errors.Is(res.Err(), remote.ErrRejected) {
			t.Errorf("expected ErrRejected, got %v", res.Err())
		}
	})

	t.Run("Error status overrides success flag", func(t *testing.T) {
		res, err := client.Perform(ctx, remote.OpSetGoalProgress, "conflict", nil)
		if err != nil {
			t.Fatalf("unexpected transport error: %v", err)
		}
		if res.Success {
			t.Error("expected success=false for HTTP 409")
		}
	})

	t.Run("Non JSON failure", func(t *testing.T) {
		if _, err := client.Perform(ctx, remote.OpSetGoalProgress, "boom", nil); err == nil {
			t.Error("expected error for 502 without envelope")
		}
	})
}

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/goals":
			w.Write([]byte(`{"goals":[]}`))
		case "/api/v1/goals/g1":
			w.Write([]byte(`{"data":{"goal":{"id":"g1"}}}`))
		case "/api/v1/goals/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	client := remote.NewClient(remote.Config{BaseURL: ts.URL, RateLimitPerSec: 100, Burst: 5})
	ctx := context.Background()

	raw, err := client.Fetch(ctx, remote.ResourceGoals, "")
	if err != nil || string(raw) != `{"goals":[]}` {
		t.Errorf("Fetch list = %s, %v", raw, err)
	}

	raw, err = client.Fetch(ctx, remote.ResourceGoals, "g1")
	if err != nil || string(raw) != `{"data":{"goal":{"id":"g1"}}}` {
		t.Errorf("Fetch one = %s, %v", raw, err)
	}

	if _, err := client.Fetch(ctx, remote.ResourceGoals, "missing"); !errors.Is(err, remote.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if _, err := client.Fetch(ctx, remote.ResourceHabits, ""); err == nil {
		t.Error("expected error on 500")
	}
}

func TestPerformCancelledContext(t *testing.T) {
	client := remote.NewClient(remote.Config{BaseURL: "http://127.0.0.1:1", RateLimitPerSec: 0.001, Burst: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Perform(ctx, remote.OpDeleteGoal, "g1", nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}
