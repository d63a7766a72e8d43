package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"questlog/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(dir, "missing.json"))
		if err == nil {
			t.Errorf("expected missing token failure")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		os.WriteFile(bad, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), bad)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), tokenPath)
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateDeadline(t *testing.T) {
	var got struct {
		Summary string `json:"summary"`
		Start   struct {
			Date string `json:"date"`
		} `json:"start"`
		End struct {
			Date string `json:"date"`
		} `json:"end"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/goals@example.com/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id": "event-123", "summary": "Run a marathon", "htmlLink": "https://calendar.google.com/event-uri"}`))
	})

	event, err := client.CreateDeadline(context.Background(), gcalendar.CreateDeadlineRequest{
		CalendarID: "goals@example.com",
		Summary:    "Run a marathon",
		Date:       time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}
	if got.Start.Date != "2024-12-31" || got.End.Date != "2025-01-01" {
		t.Errorf("unexpected all-day range: %s..%s", got.Start.Date, got.End.Date)
	}

	if _, err := client.CreateDeadline(context.Background(), gcalendar.CreateDeadlineRequest{}); err == nil {
		t.Error("expected error for zero date")
	}
}

func TestCreateDeadlineError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateDeadline(context.Background(), gcalendar.CreateDeadlineRequest{
		Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	if err == nil {
		t.Fatal("expected create event error")
	}
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.DeleteEvent(context.Background(), "", "missing"); err == nil {
		t.Error("expected error for unknown event")
	}
}
