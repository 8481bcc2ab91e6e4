package model

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyDescription = errors.New("model: task description is required")

// Priority is the store's numeric priority scale. Values outside the known
// range render as Unknown and are kept off the board until completed.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// Task mirrors the remote store's record. The id is assigned by the store and
// is stable for the task's lifetime; the client never invents one.
type Task struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// ValidateDescription is the client-side gate for task creation. Whitespace-only
// input is rejected before any network call; accepted input is sent as typed,
// without trimming.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Overdue reports whether the task has a deadline in the past and is not done.
func (t Task) Overdue(now time.Time) bool {
	return t.Deadline != nil && !t.Completed && t.Deadline.Before(now)
}
