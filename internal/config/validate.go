package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateIdentity(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateIdentity() error {
	switch c.Identity.Role {
	case "", "employee", "manager":
		return nil
	default:
		return fmt.Errorf("identity.role must be \"employee\" or \"manager\", got %q", c.Identity.Role)
	}
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.DailyCapHours < 1 || c.Workflow.DailyCapHours > 24 {
		return fmt.Errorf("workflow.daily_cap_hours must be between 1 and 24, got %d", c.Workflow.DailyCapHours)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
