// Package logging builds slog loggers for the tracker and standardizes the
// structured field names used across packages.
package logging
