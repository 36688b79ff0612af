package workflow

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"timesheet/internal/identity"
	"timesheet/internal/logging"
	"timesheet/internal/tasks"
)

// notFoundMessage deliberately collapses "does not exist" and "not yours"
// so callers cannot probe for other employees' task ids.
const notFoundMessage = "task not found or not owned by caller"

// Action is a manager's ruling on a pending task.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ParseAction converts a string into a known Action.
func ParseAction(value string) (Action, bool) {
	switch Action(strings.ToLower(strings.TrimSpace(value))) {
	case ActionApprove:
		return ActionApprove, true
	case ActionReject:
		return ActionReject, true
	default:
		return "", false
	}
}

// Draft carries the caller-settable fields for a new task. EmployeeID and
// status are never accepted from the caller: ownership comes from the
// principal and every new task starts pending.
type Draft struct {
	Title       string
	Description string
	Tags        string
	Hours       tasks.Hours
	Date        tasks.Date
}

// Patch is a partial content edit. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Tags        *string
	Hours       *tasks.Hours
	Date        *tasks.Date
}

// Engine owns the task status state machine and the authorization rules
// entangled with it.
type Engine struct {
	store     tasks.Transactor
	validator HoursValidator
	logger    *slog.Logger
}

// New constructs an Engine around the given store with the configured
// daily cap.
func New(store tasks.Transactor, capHours int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		store:     store,
		validator: NewHoursValidator(capHours),
		logger:    logger.With(logging.String(logging.FieldComponent, "workflow")),
	}
}

// Create logs a new task for the calling employee. The task always lands in
// pending regardless of input, and the daily cap is enforced inside the same
// transaction as the insert.
func (e *Engine) Create(ctx context.Context, principal identity.Principal, draft Draft) (*tasks.Task, error) {
	if err := requireCaller(principal, "create task"); err != nil {
		return nil, err
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	task := &tasks.Task{
		ID:          uuid.NewString(),
		EmployeeID:  principal.ID,
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Tags:        draft.Tags,
		Hours:       draft.Hours,
		Date:        draft.Date,
		Status:      tasks.StatusPending,
	}

	log := logging.WithContext(ctx, e.logger)
	err := e.store.Transact(ctx, func(repo tasks.Repository) error {
		if err := e.validator.Validate(ctx, repo, principal.ID, draft.Date, draft.Hours, ""); err != nil {
			return err
		}
		if err := repo.Create(ctx, task); err != nil {
			return Wrap(ErrInternal, "create task", "persist", err)
		}
		return nil
	})
	if err != nil {
		log.Debug("task create refused", logging.Error(err))
		return nil, err
	}

	log.Info("task created",
		logging.String(logging.FieldTaskID, task.ID),
		logging.String(logging.FieldEmployeeID, task.EmployeeID),
		logging.String("date", task.Date.String()),
		logging.Float64("hours", task.Hours.Float64()),
	)
	return task, nil
}

// Update applies a content edit by the owning employee. Approved tasks are
// terminal for edits; editing a rejected task reopens it as pending with the
// manager's comment retained. Hours or date changes re-run the cap check
// excluding the task's own stored value, inside the update transaction.
func (e *Engine) Update(ctx context.Context, principal identity.Principal, id string, patch Patch) (*tasks.Task, error) {
	if err := requireCaller(principal, "update task"); err != nil {
		return nil, err
	}

	var updated *tasks.Task
	err := e.store.Transact(ctx, func(repo tasks.Repository) error {
		stored, err := repo.GetByID(ctx, id)
		if err != nil {
			return Wrap(ErrInternal, "update task", "load", err)
		}
		if stored == nil || !principal.Owns(stored.EmployeeID) {
			return Wrap(ErrNotFound, "update task", notFoundMessage, nil)
		}
		if stored.Status.Terminal() {
			return Wrap(ErrUnauthorized, "update task", "approved tasks cannot be edited", nil)
		}

		task := stored.Clone()
		applyPatch(task, patch)
		if err := validateTask(task); err != nil {
			return err
		}

		if patch.Hours != nil || patch.Date != nil {
			if err := e.validator.Validate(ctx, repo, task.EmployeeID, task.Date, task.Hours, task.ID); err != nil {
				return err
			}
		}

		if stored.Status == tasks.StatusRejected {
			task.Status = tasks.StatusPending
		}

		if err := repo.Update(ctx, task); err != nil {
			return Wrap(ErrInternal, "update task", "persist", err)
		}
		updated = task
		return nil
	})
	log := logging.WithContext(ctx, e.logger)
	if err != nil {
		log.Debug("task update refused", logging.Error(err))
		return nil, err
	}

	log.Info("task updated",
		logging.String(logging.FieldTaskID, updated.ID),
		logging.String(logging.FieldEmployeeID, updated.EmployeeID),
		logging.String("status", string(updated.Status)),
	)
	return updated, nil
}

// Decide applies a manager's approve or reject ruling. Only pending tasks can
// be decided; approved and rejected are both refused with a conflict so a
// ruling is never silently overwritten.
func (e *Engine) Decide(ctx context.Context, principal identity.Principal, id string, action Action, comment string) (*tasks.Task, error) {
	if err := requireCaller(principal, "decide task"); err != nil {
		return nil, err
	}

	var decided *tasks.Task
	err := e.store.Transact(ctx, func(repo tasks.Repository) error {
		stored, err := repo.GetByID(ctx, id)
		if err != nil {
			return Wrap(ErrInternal, "decide task", "load", err)
		}
		if stored == nil {
			return Wrap(ErrNotFound, "decide task", "task not found", nil)
		}
		if !principal.IsManager() {
			return Wrap(ErrUnauthorized, "decide task", "only managers may approve or reject tasks", nil)
		}
		if stored.Status.Decided() {
			return Wrap(ErrConflict, "decide task", "already decided", nil)
		}

		task := stored.Clone()
		switch action {
		case ActionApprove:
			task.Status = tasks.StatusApproved
		case ActionReject:
			task.Status = tasks.StatusRejected
			task.ManagerComment = comment
		default:
			return (&ValidationError{}).Add("action", "must be \"approve\" or \"reject\"")
		}

		if err := repo.Update(ctx, task); err != nil {
			return Wrap(ErrInternal, "decide task", "persist", err)
		}
		decided = task
		return nil
	})
	log := logging.WithContext(ctx, e.logger)
	if err != nil {
		log.Debug("task decision refused", logging.Error(err))
		return nil, err
	}

	log.Info("task decided",
		logging.String(logging.FieldTaskID, decided.ID),
		logging.String("action", string(action)),
		logging.String("status", string(decided.Status)),
	)
	return decided, nil
}

// Delete removes a task owned by the caller. Status is not checked: owners
// may delete approved tasks.
func (e *Engine) Delete(ctx context.Context, principal identity.Principal, id string) error {
	if err := requireCaller(principal, "delete task"); err != nil {
		return err
	}

	err := e.store.Transact(ctx, func(repo tasks.Repository) error {
		stored, err := repo.GetByID(ctx, id)
		if err != nil {
			return Wrap(ErrInternal, "delete task", "load", err)
		}
		if stored == nil || !principal.Owns(stored.EmployeeID) {
			return Wrap(ErrNotFound, "delete task", notFoundMessage, nil)
		}
		if _, err := repo.Delete(ctx, id); err != nil {
			return Wrap(ErrInternal, "delete task", "persist", err)
		}
		return nil
	})
	log := logging.WithContext(ctx, e.logger)
	if err != nil {
		log.Debug("task delete refused", logging.Error(err))
		return err
	}

	log.Info("task deleted",
		logging.String(logging.FieldTaskID, id),
		logging.String(logging.FieldEmployeeID, principal.ID),
	)
	return nil
}

// Get fetches a task by id for any authenticated caller. Detail lookups are
// not ownership-scoped; only mutations are.
func (e *Engine) Get(ctx context.Context, principal identity.Principal, id string) (*tasks.Task, error) {
	if err := requireCaller(principal, "get task"); err != nil {
		return nil, err
	}
	task, err := e.store.GetByID(ctx, id)
	if err != nil {
		return nil, Wrap(ErrInternal, "get task", "load", err)
	}
	if task == nil {
		return nil, Wrap(ErrNotFound, "get task", "task not found", nil)
	}
	return task, nil
}

func requireCaller(principal identity.Principal, operation string) error {
	if strings.TrimSpace(principal.ID) == "" {
		return Wrap(ErrUnauthorized, operation, "missing caller identity", nil)
	}
	if !principal.Role.Known() {
		return Wrap(ErrUnauthorized, operation, "unknown caller role", nil)
	}
	return nil
}

func validateDraft(draft Draft) error {
	verr := &ValidationError{}
	if strings.TrimSpace(draft.Title) == "" {
		verr.Add("title", "is required")
	}
	if !draft.Hours.InRange() {
		verr.Add("hours", "must be greater than 0 and at most "+tasks.MaxHours.String())
	}
	if draft.Date == "" {
		verr.Add("date", "is required")
	} else if _, err := tasks.ParseDate(draft.Date.String()); err != nil {
		verr.Add("date", "expected YYYY-MM-DD")
	}
	return verr.OrNil()
}

func validateTask(task *tasks.Task) error {
	verr := &ValidationError{}
	if strings.TrimSpace(task.Title) == "" {
		verr.Add("title", "is required")
	}
	if !task.Hours.InRange() {
		verr.Add("hours", "must be greater than 0 and at most "+tasks.MaxHours.String())
	}
	if task.Date == "" {
		verr.Add("date", "is required")
	} else if _, err := tasks.ParseDate(task.Date.String()); err != nil {
		verr.Add("date", "expected YYYY-MM-DD")
	}
	return verr.OrNil()
}

func applyPatch(task *tasks.Task, patch Patch) {
	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Tags != nil {
		task.Tags = *patch.Tags
	}
	if patch.Hours != nil {
		task.Hours = *patch.Hours
	}
	if patch.Date != nil {
		task.Date = *patch.Date
	}
}
