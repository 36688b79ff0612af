package workflow_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"timesheet/internal/tasks"
	"timesheet/internal/testsupport"
	"timesheet/internal/workflow"
)

func TestHoursValidatorBoundary(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	validator := workflow.NewHoursValidator(8)
	ctx := context.Background()

	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Hours: 500, Date: "2024-01-01"})

	// 5.0 + 3.0 = 8.0 is allowed: "exceed" means strictly greater.
	if err := validator.Validate(ctx, store, "emp-1", "2024-01-01", 300, ""); err != nil {
		t.Fatalf("boundary total rejected: %v", err)
	}
	// 5.0 + 3.01 = 8.01 is over.
	if err := validator.Validate(ctx, store, "emp-1", "2024-01-01", 301, ""); !errors.Is(err, workflow.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHoursValidatorExcludesTaskUnderUpdate(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	validator := workflow.NewHoursValidator(8)
	ctx := context.Background()

	existing := testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Hours: 700, Date: "2024-01-01"})

	// Without exclusion the day already holds 7.0, so 7.5 more fails.
	if err := validator.Validate(ctx, store, "emp-1", "2024-01-01", 750, ""); !errors.Is(err, workflow.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// Excluding the record being updated, 7.5 replaces 7.0 and fits.
	if err := validator.Validate(ctx, store, "emp-1", "2024-01-01", 750, existing.ID); err != nil {
		t.Fatalf("exclusion not honored: %v", err)
	}
}

func TestHoursValidatorCustomCap(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDailyCap(10))
	store := testsupport.MustOpenStore(t, cfg)
	validator := workflow.NewHoursValidator(cfg.Workflow.DailyCapHours)
	ctx := context.Background()

	testsupport.SeedTask(t, store, tasks.Task{EmployeeID: "emp-1", Hours: 800, Date: "2024-01-01"})

	if err := validator.Validate(ctx, store, "emp-1", "2024-01-01", 200, ""); err != nil {
		t.Fatalf("10-hour cap should allow 8+2: %v", err)
	}
	if err := validator.Validate(ctx, store, "emp-1", "2024-01-01", 201, ""); !errors.Is(err, workflow.ErrValidation) {
		t.Fatalf("expected validation error above custom cap, got %v", err)
	}
}

func TestWrapClassification(t *testing.T) {
	err := workflow.Wrap(workflow.ErrConflict, "decide task", "already decided", nil)
	if !errors.Is(err, workflow.ErrConflict) {
		t.Fatalf("marker lost: %v", err)
	}
	if !strings.Contains(err.Error(), "already decided") {
		t.Fatalf("detail lost: %v", err)
	}

	inner := errors.New("disk full")
	err = workflow.Wrap(workflow.ErrInternal, "create task", "persist", inner)
	if !errors.Is(err, inner) {
		t.Fatalf("wrapped cause lost: %v", err)
	}
}

func TestValidationErrorFields(t *testing.T) {
	verr := (&workflow.ValidationError{}).Add("title", "is required").Add("hours", "must be greater than 0")
	if !errors.Is(verr, workflow.ErrValidation) {
		t.Fatal("ValidationError must classify as ErrValidation")
	}
	msg := verr.Error()
	if !strings.Contains(msg, "title") || !strings.Contains(msg, "hours") {
		t.Fatalf("field detail missing: %q", msg)
	}

	empty := &workflow.ValidationError{}
	if empty.OrNil() != nil {
		t.Fatal("empty ValidationError should collapse to nil")
	}
}
