package api_test

import (
	"fmt"
	"testing"

	"timesheet/internal/api"
	"timesheet/internal/tasks"
)

func TestComputeStats(t *testing.T) {
	list := []*tasks.Task{
		{Tags: "design", Hours: 200, Status: tasks.StatusPending},
		{Tags: "design", Hours: 300, Status: tasks.StatusApproved},
		{Tags: "infra", Hours: 100, Status: tasks.StatusPending},
	}

	stats := api.ComputeStats(list)
	if stats.TotalHours != 6 {
		t.Fatalf("expected total 6, got %v", stats.TotalHours)
	}
	if stats.PendingCount != 2 {
		t.Fatalf("expected 2 pending, got %d", stats.PendingCount)
	}
	want := []api.TagCount{{Tag: "design", Count: 2}, {Tag: "infra", Count: 1}}
	if len(stats.TopTags) != len(want) {
		t.Fatalf("unexpected top tags: %v", stats.TopTags)
	}
	for i := range want {
		if stats.TopTags[i] != want[i] {
			t.Fatalf("top tags = %v, want %v", stats.TopTags, want)
		}
	}
}

func TestComputeStatsEmptySet(t *testing.T) {
	stats := api.ComputeStats(nil)
	if stats.TotalHours != 0 || stats.PendingCount != 0 || len(stats.TopTags) != 0 {
		t.Fatalf("expected zero stats, got %#v", stats)
	}
}

func TestComputeStatsLimitsToFiveTags(t *testing.T) {
	var list []*tasks.Task
	for i := 0; i < 7; i++ {
		tag := fmt.Sprintf("tag-%d", i)
		// tag-0 appears 8 times, tag-1 seven, and so on down to tag-6 twice.
		for j := 0; j < 8-i; j++ {
			list = append(list, &tasks.Task{Tags: tag, Hours: 100, Status: tasks.StatusPending})
		}
	}

	stats := api.ComputeStats(list)
	if len(stats.TopTags) != 5 {
		t.Fatalf("expected 5 tag buckets, got %d", len(stats.TopTags))
	}
	for i, tc := range stats.TopTags {
		wantTag := fmt.Sprintf("tag-%d", i)
		if tc.Tag != wantTag || tc.Count != 8-i {
			t.Fatalf("bucket %d = %+v, want {%s %d}", i, tc, wantTag, 8-i)
		}
	}
}

func TestComputeStatsGroupsExactTagValues(t *testing.T) {
	// Multi-tag strings are not split; "design,infra" is its own bucket.
	list := []*tasks.Task{
		{Tags: "design,infra", Hours: 100, Status: tasks.StatusPending},
		{Tags: "design", Hours: 100, Status: tasks.StatusPending},
	}
	stats := api.ComputeStats(list)
	if len(stats.TopTags) != 2 {
		t.Fatalf("expected exact-value grouping, got %v", stats.TopTags)
	}
}

func TestComputeStatsSkipsUntaggedAndTieOrderIsStable(t *testing.T) {
	list := []*tasks.Task{
		{Tags: "", Hours: 100, Status: tasks.StatusPending},
		{Tags: "beta", Hours: 100, Status: tasks.StatusPending},
		{Tags: "alpha", Hours: 100, Status: tasks.StatusPending},
	}
	stats := api.ComputeStats(list)
	if len(stats.TopTags) != 2 {
		t.Fatalf("untagged tasks must not form a bucket: %v", stats.TopTags)
	}
	// Equal counts keep first-seen order.
	if stats.TopTags[0].Tag != "beta" || stats.TopTags[1].Tag != "alpha" {
		t.Fatalf("tie order not stable: %v", stats.TopTags)
	}
}
