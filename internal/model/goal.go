package model

import "time"

// ProgressMode decides whether a goal's progress follows its subtasks.
type ProgressMode string

const (
	ProgressModeAutomatic ProgressMode = "AUTOMATIC"
	ProgressModeManual    ProgressMode = "MANUAL"
)

// Subtask is an independently completable unit owned by one goal.
type Subtask struct {
	ID        string
	Title     string
	Completed bool
}

// Goal is a user objective with a 0-100 progress value.
// Mode is local-only; the remote service does not store it.
type Goal struct {
	ID           string
	Title        string
	Description  string
	TargetDate   time.Time // zero when unset
	Progress     int
	Mode         ProgressMode
	Subtasks     []Subtask
	CalendarLink string
}

// Clone returns a copy that shares no subtask storage with g.
func (g Goal) Clone() Goal {
	c := g
	if g.Subtasks != nil {
		c.Subtasks = make([]Subtask, len(g.Subtasks))
		copy(c.Subtasks, g.Subtasks)
	}
	return c
}

// EffectiveMode treats an unset mode as AUTOMATIC.
func (g Goal) EffectiveMode() ProgressMode {
	if g.Mode == "" {
		return ProgressModeAutomatic
	}
	return g.Mode
}

// SubtaskIndex returns the position of the subtask with id, or -1.
func (g Goal) SubtaskIndex(id string) int {
	for i, st := range g.Subtasks {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// CompletedCount counts completed subtasks.
func (g Goal) CompletedCount() int {
	n := 0
	for _, st := range g.Subtasks {
		if st.Completed {
			n++
		}
	}
	return n
}
