package main

import (
	"log/slog"
	"strings"
	"sync"

	"sortd/internal/config"
	"sortd/internal/ledger"
	"sortd/internal/logging"
	"sortd/internal/organizer"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
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

// ensureLogger builds the run logger writing to the configured log file.
// Terminal output stays on stdout and is produced by the commands directly.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{cfg.LogPath()},
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// withOrganizer opens the ledger store, builds an organizer on top of it,
// and guarantees the store is closed when fn returns.
func (c *commandContext) withOrganizer(fn func(*organizer.Organizer) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger := c.ensureLogger()

	store, err := ledger.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(organizer.New(cfg, store, logger))
}
