// Package config loads, normalizes, and validates the tracker's TOML
// configuration. Defaults live in defaults.go; a fully annotated sample is
// embedded for `timesheet config init`.
package config
