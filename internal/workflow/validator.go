package workflow

import (
	"context"
	"fmt"

	"timesheet/internal/tasks"
)

// HoursValidator enforces the daily-hours cap: the sum of an employee's
// logged hours on one calendar date may equal but never exceed the cap.
type HoursValidator struct {
	cap tasks.Hours
}

// NewHoursValidator builds a validator for a cap expressed in whole hours.
func NewHoursValidator(capHours int) HoursValidator {
	return HoursValidator{cap: tasks.Hours(capHours) * 100}
}

// Cap returns the configured limit.
func (v HoursValidator) Cap() tasks.Hours {
	return v.cap
}

// Validate checks that logging hours for employeeID on date keeps the day's
// total at or under the cap. excludeTaskID discounts a record's own stored
// hours on the update path; pass "" on create.
//
// The repo must be the same transaction that performs the guarded write, or
// two concurrent requests can both read a pre-write total and jointly blow
// the cap.
func (v HoursValidator) Validate(ctx context.Context, repo tasks.Repository, employeeID string, date tasks.Date, hours tasks.Hours, excludeTaskID string) error {
	total, err := repo.SumHoursOn(ctx, employeeID, date, excludeTaskID)
	if err != nil {
		return Wrap(ErrInternal, "validate hours", "sum logged hours", err)
	}
	if total+hours > v.cap {
		msg := fmt.Sprintf(
			"total hours for %s would be %s, exceeding the daily limit of %s",
			date, (total + hours).String(), v.cap.String(),
		)
		return (&ValidationError{}).Add("hours", msg)
	}
	return nil
}
