package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldTaskID is the standardized structured logging key for task identifiers.
	FieldTaskID = "task_id"
	// FieldEmployeeID is the standardized structured logging key for task owners.
	FieldEmployeeID = "employee_id"
	// FieldCallerID is the standardized structured logging key for the acting
	// principal, who may be a manager rather than the task owner.
	FieldCallerID = "caller_id"
	// FieldRole is the standardized structured logging key for caller roles.
	FieldRole = "role"
)

type contextKey int

const (
	principalIDKey contextKey = iota
	principalRoleKey
)

// WithPrincipal annotates the context with the acting caller for log enrichment.
func WithPrincipal(ctx context.Context, id, role string) context.Context {
	ctx = context.WithValue(ctx, principalIDKey, id)
	return context.WithValue(ctx, principalRoleKey, role)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := ctx.Value(principalIDKey).(string); ok && id != "" {
		fields = append(fields, slog.String(FieldCallerID, id))
	}
	if role, ok := ctx.Value(principalRoleKey).(string); ok && role != "" {
		fields = append(fields, slog.String(FieldRole, role))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
