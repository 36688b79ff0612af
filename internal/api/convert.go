package api

import "timesheet/internal/tasks"

// FromTask converts an internal task into its transport representation.
func FromTask(task *tasks.Task) Task {
	if task == nil {
		return Task{}
	}
	return Task{
		ID:             task.ID,
		EmployeeID:     task.EmployeeID,
		Title:          task.Title,
		Description:    task.Description,
		Tags:           task.Tags,
		Hours:          task.Hours.String(),
		Date:           task.Date.String(),
		Status:         string(task.Status),
		ManagerComment: task.ManagerComment,
		CreatedAt:      formatTimestamp(task.CreatedAt),
		UpdatedAt:      formatTimestamp(task.UpdatedAt),
	}
}

// FromTasks converts a slice of internal tasks, preserving order.
func FromTasks(list []*tasks.Task) []Task {
	result := make([]Task, 0, len(list))
	for _, task := range list {
		result = append(result, FromTask(task))
	}
	return result
}
