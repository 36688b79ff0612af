package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"timesheet/internal/api"
	"timesheet/internal/config"
	"timesheet/internal/identity"
	"timesheet/internal/logging"
	"timesheet/internal/tasks"
	"timesheet/internal/workflow"
)

type commandContext struct {
	configFlag *string
	asFlag     *string
	roleFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, asFlag, roleFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		asFlag:     asFlag,
		roleFlag:   roleFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// principal resolves the acting caller from flags, falling back to the
// [identity] config section.
func (c *commandContext) principal() (identity.Principal, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return identity.Principal{}, err
	}

	id := cfg.Identity.ID
	if c.asFlag != nil && strings.TrimSpace(*c.asFlag) != "" {
		id = strings.TrimSpace(*c.asFlag)
	}
	if id == "" {
		return identity.Principal{}, errors.New("no identity configured; set identity.id in the config or pass --as")
	}

	roleValue := cfg.Identity.Role
	if c.roleFlag != nil && strings.TrimSpace(*c.roleFlag) != "" {
		roleValue = *c.roleFlag
	}
	role, ok := identity.ParseRole(roleValue)
	if !ok {
		return identity.Principal{}, fmt.Errorf("unknown role %q; use employee or manager", roleValue)
	}

	return identity.Principal{ID: id, Role: role}, nil
}

// withStore opens the task store for the duration of fn.
func (c *commandContext) withStore(fn func(*tasks.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := tasks.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// withEngine opens the store and hands fn a workflow engine. Mutating
// commands additionally hold the data-dir file lock so concurrent CLI
// invocations from other processes queue instead of interleaving.
func (c *commandContext) withEngine(fn func(*workflow.Engine) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "timesheet.lock"))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire data lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	return c.withStore(func(store *tasks.Store) error {
		engine := workflow.New(store, cfg.Workflow.DailyCapHours, c.ensureLogger())
		return fn(engine)
	})
}

// principalContext annotates the command context so engine log records carry
// the acting caller.
func principalContext(cmd *cobra.Command, principal identity.Principal) context.Context {
	return logging.WithPrincipal(cmd.Context(), principal.ID, string(principal.Role))
}

// withService opens the store and hands fn the read-only query service.
func (c *commandContext) withService(fn func(*api.TaskService) error) error {
	return c.withStore(func(store *tasks.Store) error {
		return fn(api.NewTaskService(store))
	})
}
