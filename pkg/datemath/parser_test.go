package datemath_test

import (
	"errors"
	"testing"
	"time"

	"questlog/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr error
	}{
		{name: "Absolute date", value: "2024-06-30", want: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
		{name: "Today", value: "today", want: startOfBase},
		{name: "Tomorrow", value: "Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", value: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", value: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", value: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", value: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Next Monday (from Wed)", value: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", value: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Invalid duration pattern", value: "in a few days", wantErr: datemath.ErrUnknownFormat},
		{name: "Invalid next weekday", value: "next funday", wantErr: datemath.ErrUnknownFormat},
		{name: "Unknown phrase", value: "some random day", wantErr: datemath.ErrUnknownFormat},
		{name: "Empty", value: "  ", wantErr: datemath.ErrEmptyDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.value, baseTime)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
