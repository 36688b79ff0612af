package api

import (
	"strings"

	"timesheet/internal/identity"
	"timesheet/internal/tasks"
	"timesheet/internal/workflow"
)

// Scope returns the base filter for a caller. Employees see their own tasks,
// managers see everything. Any other role sees nothing: the second return is
// false and callers short-circuit to an empty result. An employee without an
// id would otherwise scope to an empty filter, so that fails closed too.
func Scope(principal identity.Principal) (tasks.Filter, bool) {
	switch principal.Role {
	case identity.RoleEmployee:
		if strings.TrimSpace(principal.ID) == "" {
			return tasks.Filter{}, false
		}
		return tasks.Filter{EmployeeID: principal.ID}, true
	case identity.RoleManager:
		return tasks.Filter{}, true
	default:
		return tasks.Filter{}, false
	}
}

// buildFilter parses the caller's query and applies it on top of the role
// scope. The bool mirrors Scope: false means the result set is empty without
// touching the store (including an employee asking for someone else's tasks).
func buildFilter(principal identity.Principal, query Query) (tasks.Filter, bool, error) {
	scope, visible := Scope(principal)
	if !visible {
		return tasks.Filter{}, false, nil
	}

	filter := scope

	if value := strings.TrimSpace(query.Date); value != "" {
		date, err := tasks.ParseDate(value)
		if err != nil {
			return tasks.Filter{}, false, (&workflow.ValidationError{}).Add("date", "expected YYYY-MM-DD")
		}
		filter.Date = date
	}

	if value := strings.TrimSpace(query.Status); value != "" {
		status, ok := tasks.ParseStatus(value)
		if !ok {
			return tasks.Filter{}, false, (&workflow.ValidationError{}).Add("status", "unknown status "+value)
		}
		filter.Status = status
	}

	if value := strings.TrimSpace(query.EmployeeID); value != "" {
		if filter.EmployeeID != "" && filter.EmployeeID != value {
			// Employee scope already pins the owner; a mismatching filter
			// can never match anything.
			return tasks.Filter{}, false, nil
		}
		filter.EmployeeID = value
	}

	filter.Tags = strings.TrimSpace(query.Tags)

	return filter, true, nil
}
