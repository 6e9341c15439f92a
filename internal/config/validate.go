package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	return c.validateCategories()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if !validCategoryName(c.Organize.FallbackCategory) {
		return fmt.Errorf("organize.fallback_category %q is not a valid directory name", c.Organize.FallbackCategory)
	}
	return nil
}

func (c *Config) validateCategories() error {
	for name, extensions := range c.Categories {
		if !validCategoryName(name) {
			return fmt.Errorf("categories: %q is not a valid directory name", name)
		}
		if len(extensions) == 0 {
			return fmt.Errorf("categories: %q lists no extensions", name)
		}
		for _, ext := range extensions {
			if ext == "." || strings.ContainsAny(ext, "/\\") {
				return fmt.Errorf("categories: %q lists invalid extension %q", name, ext)
			}
		}
	}
	return nil
}

// validCategoryName rejects names that would escape the target directory or
// collide with hidden-file filtering when used as a subdirectory name.
func validCategoryName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}
