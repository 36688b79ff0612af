// Package api defines transport-friendly DTOs and the role-scoped query
// surface over the task store. It translates internal task models into
// shapes callers can render or serialize without coupling to internal types.
//
// Scope computes the role-dependent base set (employees: own tasks;
// managers: all; anything else: nothing), buildFilter layers the caller's
// optional filters on top, and ComputeStats aggregates a filtered set.
package api
