package api

import "time"

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Task describes a timesheet entry in a transport-friendly format. Hours are
// rendered as a two-decimal string to preserve the fixed-point value.
type Task struct {
	ID             string `json:"id" yaml:"id"`
	EmployeeID     string `json:"employeeId" yaml:"employee_id"`
	Title          string `json:"title" yaml:"title"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Tags           string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Hours          string `json:"hoursSpent" yaml:"hours_spent"`
	Date           string `json:"date" yaml:"date"`
	Status         string `json:"status" yaml:"status"`
	ManagerComment string `json:"managerComment,omitempty" yaml:"manager_comment,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

// ListResult wraps a task listing with the fixed detail string callers show
// verbatim.
type ListResult struct {
	Detail string `json:"detail" yaml:"detail"`
	Tasks  []Task `json:"tasks" yaml:"tasks"`
}

// TagCount pairs a tag value with its occurrence count.
type TagCount struct {
	Tag   string `json:"tag" yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// Stats aggregates a filtered task set.
type Stats struct {
	TotalHours   float64    `json:"totalHours" yaml:"total_hours"`
	TopTags      []TagCount `json:"topTags" yaml:"top_tags"`
	PendingCount int        `json:"pendingCount" yaml:"pending_count"`
}

// Query carries the optional, conjunctive listing filters as received from
// the caller. Values are unparsed strings; List and ComputeStats reject
// malformed dates and unknown statuses instead of silently ignoring them.
type Query struct {
	Date       string
	EmployeeID string
	Tags       string
	Status     string
}

func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(dateTimeFormat)
}
