// Package config loads the tool's settings from the environment.
// Every setting has a default, so with nothing set the tool uses the fixed
// file names and threshold it always has.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Config holds all settings.
type Config struct {
	Store   StoreConfig
	UI      UIConfig
	Logging LoggingConfig
}

// StoreConfig holds file locations and query defaults.
type StoreConfig struct {
	// DataFile is the structured inventory document (default: inventory.json)
	DataFile string `env:"INVENTORY_FILE" default:"inventory.json"`

	// ExportFile is where exports are written (default: inventory_export.csv)
	ExportFile string `env:"INVENTORY_EXPORT_FILE" default:"inventory_export.csv"`

	// LowStockThreshold is the quantity at or below which an item is low (default: 5)
	LowStockThreshold int `env:"INVENTORY_LOW_STOCK" default:"5"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	// Theme is one of classic, neon, mono (default: classic)
	Theme string `env:"INVENTORY_THEME" default:"classic"`

	// NoColor disables ANSI colours
	NoColor bool `env:"NO_COLOR" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" default:"warn"`
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Load reads the environment, applies defaults and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func loadStruct(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := v.Field(i)
		if !fv.CanSet() {
			continue
		}
		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fv); err != nil {
				return err
			}
			continue
		}

		name := field.Tag.Get("env")
		if name == "" {
			continue
		}
		value, set := os.LookupEnv(name)
		if !set || value == "" {
			value = field.Tag.Get("default")
		}
		if value == "" {
			continue
		}
		if err := setField(fv, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", name, value, err)
		}
	}
	return nil
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int:
		i, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(int64(i))
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// NO_COLOR convention: any non-empty value disables colour
			b = true
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Store.DataFile) == "" {
		errs = append(errs, "INVENTORY_FILE must not be empty")
	}
	if strings.TrimSpace(c.Store.ExportFile) == "" {
		errs = append(errs, "INVENTORY_EXPORT_FILE must not be empty")
	}

	validThemes := map[string]bool{"classic": true, "neon": true, "mono": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, fmt.Sprintf("INVENTORY_THEME (%q) must be one of: classic, neon, mono", c.UI.Theme))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true, "logfmt": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json, logfmt", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
