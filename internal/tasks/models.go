package tasks

import (
	"strings"
	"time"
)

// Status represents the review lifecycle of a task.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var allStatuses = []Status{
	StatusPending,
	StatusApproved,
	StatusRejected,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// Decided reports whether a manager has already ruled on the task.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

// Terminal reports whether the status permits no further employee edits.
// Approved tasks are frozen; rejected tasks reopen on edit.
func (s Status) Terminal() bool {
	return s == StatusApproved
}

// Task is a dated unit of logged work persisted in SQLite.
type Task struct {
	ID             string
	EmployeeID     string
	Title          string
	Description    string
	Tags           string
	Hours          Hours
	Date           Date
	Status         Status
	ManagerComment string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Clone returns a deep copy so callers can mutate a working copy without
// touching the original.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// Filter narrows a task listing. Zero values mean "not applied"; all set
// fields must match.
type Filter struct {
	EmployeeID string
	Date       Date
	Tags       string // substring match
	Status     Status
}
