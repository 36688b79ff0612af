package tasks_test

import (
	"context"
	"fmt"
	"testing"

	"timesheet/internal/tasks"
	"timesheet/internal/testsupport"
)

func TestOpenInitializesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	seeded := testsupport.SeedTask(t, store, tasks.Task{
		EmployeeID: "emp-1",
		Title:      "Write onboarding docs",
		Hours:      250,
		Date:       "2024-01-01",
	})

	fetched, err := store.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched == nil || fetched.Title != "Write onboarding docs" {
		t.Fatalf("unexpected fetched task: %#v", fetched)
	}
	if fetched.Hours != 250 || fetched.Date != "2024-01-01" {
		t.Fatalf("round-trip mismatch: %#v", fetched)
	}
	if fetched.CreatedAt.IsZero() || fetched.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestGetByIDMissingYieldsNil(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	task, err := store.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if task != nil {
		t.Fatalf("expected nil for missing id, got %#v", task)
	}
}

func TestUpdatePersistsChanges(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	seeded := testsupport.SeedTask(t, store, tasks.Task{
		EmployeeID: "emp-1",
		Title:      "Initial",
		Hours:      100,
		Date:       "2024-01-01",
	})

	seeded.Title = "Revised"
	seeded.Status = tasks.StatusRejected
	seeded.ManagerComment = "needs detail"
	if err := store.Update(ctx, seeded); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	fetched, err := store.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Title != "Revised" || fetched.Status != tasks.StatusRejected || fetched.ManagerComment != "needs detail" {
		t.Fatalf("update not persisted: %#v", fetched)
	}
}

func TestDelete(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	seeded := testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Hours: 100, Date: "2024-01-01"})

	removed, err := store.Delete(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed {
		t.Fatal("expected a row to be removed")
	}

	removed, err = store.Delete(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if removed {
		t.Fatal("expected no row on second delete")
	}
}

func TestListFilters(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Title: "A", Hours: 100, Date: "2024-01-01", Tags: "design"})
	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Title: "B", Hours: 100, Date: "2024-01-02", Tags: "design,review"})
	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-2", Title: "C", Hours: 100, Date: "2024-01-01", Tags: "infra", Status: tasks.StatusApproved})

	cases := []struct {
		name   string
		filter tasks.Filter
		want   []string
	}{
		{"all", tasks.Filter{}, []string{"A", "B", "C"}},
		{"by employee", tasks.Filter{EmployeeID: "emp-1"}, []string{"A", "B"}},
		{"by date", tasks.Filter{Date: "2024-01-01"}, []string{"A", "C"}},
		{"by status", tasks.Filter{Status: tasks.StatusApproved}, []string{"C"}},
		{"by tag substring", tasks.Filter{Tags: "design"}, []string{"A", "B"}},
		{"conjunctive", tasks.Filter{EmployeeID: "emp-1", Date: "2024-01-02"}, []string{"B"}},
		{"no match", tasks.Filter{EmployeeID: "emp-3"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := store.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			var titles []string
			for _, task := range list {
				titles = append(titles, task.Title)
			}
			if len(titles) != len(tc.want) {
				t.Fatalf("got %v, want %v", titles, tc.want)
			}
			for i := range tc.want {
				if titles[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", titles, tc.want)
				}
			}
		})
	}
}

func TestSumHoursOn(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	first := testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Hours: 500, Date: "2024-01-01"})
	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Hours: 300, Date: "2024-01-01"})
	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Hours: 400, Date: "2024-01-02"})
	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-2", Hours: 800, Date: "2024-01-01"})

	total, err := store.SumHoursOn(ctx, "emp-1", "2024-01-01", "")
	if err != nil {
		t.Fatalf("SumHoursOn failed: %v", err)
	}
	if total != 800 {
		t.Fatalf("expected 8.00 total, got %s", total)
	}

	excluded, err := store.SumHoursOn(ctx, "emp-1", "2024-01-01", first.ID)
	if err != nil {
		t.Fatalf("SumHoursOn with exclusion failed: %v", err)
	}
	if excluded != 300 {
		t.Fatalf("expected 3.00 after excluding first task, got %s", excluded)
	}

	empty, err := store.SumHoursOn(ctx, "emp-9", "2024-01-01", "")
	if err != nil {
		t.Fatalf("SumHoursOn on empty set failed: %v", err)
	}
	if empty != 0 {
		t.Fatalf("expected zero for unknown employee, got %s", empty)
	}
}

func TestCountByStatus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Title: fmt.Sprintf("P%d", i), Hours: 100, Date: "2024-01-01"})
	}
	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Hours: 100, Date: "2024-01-02", Status: tasks.StatusApproved})

	counts, err := store.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("CountByStatus failed: %v", err)
	}
	if counts[tasks.StatusPending] != 3 || counts[tasks.StatusApproved] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestTransactRollsBackOnError(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	wantErr := fmt.Errorf("boom")
	err := store.Transact(ctx, func(repo tasks.Repository) error {
		task := &tasks.Task{ID: "tx-1", EmployeeID: "emp-1", Title: "T", Hours: 100, Date: "2024-01-01", Status: tasks.StatusPending}
		if err := repo.Create(ctx, task); err != nil {
			return err
		}
		return wantErr
	})
	if err == nil {
		t.Fatal("expected error from Transact")
	}

	task, err := store.GetByID(ctx, "tx-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if task != nil {
		t.Fatal("expected rollback to discard the insert")
	}
}

func TestCheckHealth(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Hours: 100, Date: "2024-01-01"})

	health, err := store.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth failed: %v", err)
	}
	if !health.DatabaseExists || !health.DatabaseReadable || !health.TableExists {
		t.Fatalf("unexpected health: %#v", health)
	}
	if len(health.MissingColumns) != 0 {
		t.Fatalf("unexpected missing columns: %v", health.MissingColumns)
	}
	if health.TotalTasks != 1 {
		t.Fatalf("expected 1 task, got %d", health.TotalTasks)
	}
	if !health.IntegrityCheck {
		t.Fatal("expected integrity check to pass")
	}
}
