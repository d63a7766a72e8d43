package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"questlog/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	d := response.Date(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("expected \"2024-05-01\", got %s", b)
	}

	b, err = json.Marshal(response.Date(time.Time{}))
	if err != nil {
		t.Fatalf("unexpected error marshaling zero Date: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null for zero date, got %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	// DateTime uses Local(), so only the shape is checked.
	dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))
	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 15 {
		t.Errorf("marshaled string too short: %s", str)
	}
}
