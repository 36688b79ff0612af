package main

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"timesheet/internal/tasks"
)

var labelCaser = cases.Title(language.English)

// statusLabel renders a task status for display ("pending" -> "Pending").
func statusLabel(status tasks.Status) string {
	return labelCaser.String(string(status))
}
