// Package tasks persists timesheet entries in SQLite and defines the domain
// vocabulary the rest of the tracker builds on: the Task record, the review
// Status enum, fixed-point Hours, calendar Dates, and listing Filters.
//
// The Store manages database connections and schema initialization and
// implements the Repository interface consumed by the workflow engine.
// Transact hands callers a Repository bound to a single immediate write
// transaction so read-then-write invariants (the daily-hours cap) commit
// atomically.
//
// Treat this package as the single source of truth for task semantics; when
// you add statuses or fields, update schema.sql and bump schemaVersion.
package tasks
