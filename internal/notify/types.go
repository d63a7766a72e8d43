package notify

import "time"

type Level string

const (
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

// Notification is one non-fatal message shown to the user.
type Notification struct {
	ID        string
	Level     Level
	Entity    string
	Kind      string
	Message   string
	CreatedAt time.Time
}

type PushInput struct {
	Level   Level
	Entity  string
	Kind    string
	Message string
}

type ListOutput struct {
	Notifications []Notification
}
