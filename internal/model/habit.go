package model

import (
	"strings"
	"time"
)

// ResetOption is the recurrence unit of a habit.
type ResetOption string

const (
	ResetDaily   ResetOption = "DAILY"
	ResetWeekly  ResetOption = "WEEKLY"
	ResetMonthly ResetOption = "MONTHLY"
	ResetNever   ResetOption = "NEVER"
)

// ParseResetOption maps a case-insensitive name to a ResetOption.
func ParseResetOption(s string) (ResetOption, bool) {
	switch opt := ResetOption(strings.ToUpper(strings.TrimSpace(s))); opt {
	case ResetDaily, ResetWeekly, ResetMonthly, ResetNever:
		return opt, true
	}
	return "", false
}

// ResetPolicy says when a completed habit becomes eligible to clear.
// An empty TimeOfDay means the policy is not actionable yet.
type ResetPolicy struct {
	Option    ResetOption
	TimeOfDay string // "HH:MM"
}

// Actionable reports whether the recurrence logic should consult this policy.
func (p ResetPolicy) Actionable() bool {
	return p.Option != "" && p.Option != ResetNever && p.TimeOfDay != ""
}

// Habit is a recurring action with a completion flag.
type Habit struct {
	ID          string
	Name        string
	Description string
	Completed   bool
	CompletedAt *time.Time
	ResetPolicy ResetPolicy
}

// Clone returns a copy that shares no pointer fields with h.
func (h Habit) Clone() Habit {
	c := h
	if h.CompletedAt != nil {
		at := *h.CompletedAt
		c.CompletedAt = &at
	}
	return c
}
