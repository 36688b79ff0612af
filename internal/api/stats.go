package api

import (
	"sort"

	"timesheet/internal/tasks"
)

// topTagLimit caps how many tag buckets Stats reports.
const topTagLimit = 5

// ComputeStats aggregates a task set: total logged hours, the five most
// frequent tag values, and how many tasks still await review. Grouping is by
// the exact tags string; multi-tag values are not split. Ties keep
// first-seen order.
func ComputeStats(list []*tasks.Task) Stats {
	var total tasks.Hours
	pending := 0
	counts := make(map[string]int)
	var order []string

	for _, task := range list {
		if task == nil {
			continue
		}
		total += task.Hours
		if task.Status == tasks.StatusPending {
			pending++
		}
		if task.Tags == "" {
			continue
		}
		if _, seen := counts[task.Tags]; !seen {
			order = append(order, task.Tags)
		}
		counts[task.Tags]++
	}

	top := make([]TagCount, 0, len(order))
	for _, tag := range order {
		top = append(top, TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > topTagLimit {
		top = top[:topTagLimit]
	}

	return Stats{
		TotalHours:   total.Float64(),
		TopTags:      top,
		PendingCount: pending,
	}
}
