package testsupport

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"timesheet/internal/config"
	"timesheet/internal/tasks"
)

// MustOpenStore opens a tasks.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *tasks.Store {
	t.Helper()

	store, err := tasks.Open(cfg)
	if err != nil {
		t.Fatalf("tasks.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedTask inserts a task directly into the store, bypassing workflow rules.
// Zero fields get sensible defaults: a fresh id, pending status, and today's
// date.
func SeedTask(t testing.TB, store *tasks.Store, task tasks.Task) *tasks.Task {
	t.Helper()

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = tasks.StatusPending
	}
	if task.Date == "" {
		task.Date = tasks.Today()
	}
	if task.Title == "" {
		task.Title = "Seeded task"
	}
	if err := store.Create(context.Background(), &task); err != nil {
		t.Fatalf("store.Create: %v", err)
	}
	return &task
}
