package api

import (
	"context"

	"timesheet/internal/identity"
	"timesheet/internal/tasks"
	"timesheet/internal/workflow"
)

// listDetail is the fixed human-readable string accompanying listings.
const listDetail = "Tasks fetched successfully."

// TaskReader abstracts the persistence interactions needed for queries.
type TaskReader interface {
	List(ctx context.Context, filter tasks.Filter) ([]*tasks.Task, error)
}

// TaskService exposes role-scoped read operations returning API DTOs.
type TaskService struct {
	store TaskReader
}

// NewTaskService constructs a TaskService around the provided reader.
func NewTaskService(store TaskReader) *TaskService {
	if store == nil {
		return nil
	}
	return &TaskService{store: store}
}

// List returns the tasks visible to the caller, narrowed by the query.
func (s *TaskService) List(ctx context.Context, principal identity.Principal, query Query) (ListResult, error) {
	list, err := s.visibleTasks(ctx, principal, query)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Detail: listDetail, Tasks: FromTasks(list)}, nil
}

// Stats aggregates the tasks visible to the caller, narrowed by the query.
// The same role scoping as List applies.
func (s *TaskService) Stats(ctx context.Context, principal identity.Principal, query Query) (Stats, error) {
	list, err := s.visibleTasks(ctx, principal, query)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(list), nil
}

func (s *TaskService) visibleTasks(ctx context.Context, principal identity.Principal, query Query) ([]*tasks.Task, error) {
	filter, visible, err := buildFilter(principal, query)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, nil
	}
	list, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, workflow.Wrap(workflow.ErrInternal, "list tasks", "query", err)
	}
	return list, nil
}
