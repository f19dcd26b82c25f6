package config

import (
	"errors"
	"fmt"

	"larder/internal/units"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateShopping(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateDisplay() error {
	if _, err := units.ParseSystem(c.Display.UnitSystem); err != nil {
		return fmt.Errorf("display.unit_system must be imperial or metric, got %q", c.Display.UnitSystem)
	}
	return nil
}

// UnitSystem returns the configured display unit system.
func (c *Config) UnitSystem() units.System {
	system, err := units.ParseSystem(c.Display.UnitSystem)
	if err != nil {
		return units.Imperial
	}
	return system
}

func (c *Config) validateShopping() error {
	if c.Shopping.KeyCacheSize < 0 {
		return errors.New("shopping.key_cache_size must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
