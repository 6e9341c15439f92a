package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeOrganize()
	c.normalizeCategories()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeOrganize() {
	c.Organize.FallbackCategory = strings.TrimSpace(c.Organize.FallbackCategory)
	if c.Organize.FallbackCategory == "" {
		c.Organize.FallbackCategory = defaultFallbackCategory
	}
}

// normalizeCategories title-cases category names and canonicalizes extensions
// to lowercase with a leading dot, so classification and directory naming are
// deterministic regardless of how the user wrote the config.
func (c *Config) normalizeCategories() {
	if len(c.Categories) == 0 {
		return
	}
	titler := cases.Title(language.English, cases.NoLower)
	normalized := make(map[string][]string, len(c.Categories))
	for name, extensions := range c.Categories {
		name = titler.String(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		exts := make([]string, 0, len(extensions))
		for _, ext := range extensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			exts = append(exts, ext)
		}
		if len(exts) > 0 {
			normalized[name] = exts
		}
	}
	c.Categories = normalized
}
