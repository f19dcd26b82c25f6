package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDisplay()
	c.normalizeShopping()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("LARDER_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = value
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDisplay() {
	if value, ok := os.LookupEnv("LARDER_UNIT_SYSTEM"); ok && strings.TrimSpace(value) != "" {
		c.Display.UnitSystem = value
	}
	c.Display.UnitSystem = strings.ToLower(strings.TrimSpace(c.Display.UnitSystem))
	if c.Display.UnitSystem == "" {
		c.Display.UnitSystem = defaultUnitSystem
	}
}

func (c *Config) normalizeShopping() {
	c.Shopping.FallbackRecipeLabel = strings.TrimSpace(c.Shopping.FallbackRecipeLabel)
	if c.Shopping.FallbackRecipeLabel == "" {
		c.Shopping.FallbackRecipeLabel = defaultFallbackRecipeLabel
	}
	if c.Shopping.KeyCacheSize == 0 {
		c.Shopping.KeyCacheSize = defaultKeyCacheSize
	}
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
