package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/renameio/v2"

	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/internal/privilege"
)

// elevated is swapped in tests.
var elevated = privilege.Elevated

// ErrUnknownKey is returned for config keys lcd does not know about.
var ErrUnknownKey = errors.New("unknown config key")

// Config represents the user configuration
type Config struct {
	BacklightDir *string  `json:"backlightDir,omitempty"`
	PowerFile    *string  `json:"powerFile,omitempty"`
	Devices      []string `json:"devices,omitempty"`
	Exclude      []string `json:"exclude,omitempty"`
}

// Keys lists the settable config keys in display order.
var Keys = []string{"backlightDir", "powerFile", "devices", "exclude"}

// Path returns the location of the config file.
// If LCD_CONFIG is set and lcd is not running setuid, uses that path.
// Otherwise, uses $XDG_CONFIG_HOME/lcd/config.json (usually ~/.config/lcd/config.json)
func Path() (string, error) {
	if customPath := os.Getenv("LCD_CONFIG"); customPath != "" && !elevated() {
		return customPath, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(configDir, "lcd", "config.json"), nil
}

// Load reads the config at path with the invoking user's rights. A missing
// file yields an empty config.
func Load(path string) (*Config, error) {
	var data []byte
	err := privilege.AsRealUser(func() error {
		var readErr error
		data, readErr = os.ReadFile(path)
		return readErr
	})
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save atomically writes cfg to path, creating the parent directory.
// The write happens with the invoking user's rights, so a setuid run can
// only touch files that user could write anyway.
func Save(path string, cfg *Config) error {
	configJSON, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	configJSON = append(configJSON, '\n')

	return privilege.AsRealUser(func() error {
		return writeFile(path, configJSON)
	})
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0600))
	if err != nil {
		return fmt.Errorf("failed to create pending config file: %w", err)
	}
	defer func() { _ = pendingFile.Cleanup() }()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// Dir returns the backlight directory.
// LCD_BACKLIGHT_DIR takes precedence over the config file. Both are
// ignored when running setuid, since they would pick what root writes.
func (c *Config) Dir() string {
	if elevated() {
		return backlight.DefaultDir
	}
	if dir := os.Getenv("LCD_BACKLIGHT_DIR"); dir != "" {
		return dir
	}
	if c.BacklightDir != nil && *c.BacklightDir != "" {
		return *c.BacklightDir
	}
	return backlight.DefaultDir
}

// PowerFileName returns the power controller file name, or bl_power.
// The configured name is ignored when running setuid.
func (c *Config) PowerFileName() string {
	if elevated() {
		return backlight.PowerFile
	}
	if c.PowerFile != nil && *c.PowerFile != "" {
		return *c.PowerFile
	}
	return backlight.PowerFile
}

// Filter returns the device filter described by the config.
func (c *Config) Filter() backlight.Filter {
	return backlight.Filter{Include: c.Devices, Exclude: c.Exclude}
}

// Get returns the value of key formatted for display. Unset keys return "".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "backlightDir":
		return deref(c.BacklightDir), nil
	case "powerFile":
		return deref(c.PowerFile), nil
	case "devices":
		return strings.Join(c.Devices, ","), nil
	case "exclude":
		return strings.Join(c.Exclude, ","), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set updates key. List keys take a comma separated value.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backlightDir":
		if value == "" {
			return fmt.Errorf("backlightDir cannot be empty")
		}
		c.BacklightDir = &value
	case "powerFile":
		if value == "" || strings.ContainsRune(value, filepath.Separator) {
			return fmt.Errorf("powerFile must be a plain file name")
		}
		c.PowerFile = &value
	case "devices":
		c.Devices = splitList(value)
	case "exclude":
		c.Exclude = splitList(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Unset clears key back to its default.
func (c *Config) Unset(key string) error {
	switch key {
	case "backlightDir":
		c.BacklightDir = nil
	case "powerFile":
		c.PowerFile = nil
	case "devices":
		c.Devices = nil
	case "exclude":
		c.Exclude = nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// splitList splits a comma separated list, dropping blanks and duplicates.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" && !slices.Contains(out, part) {
			out = append(out, part)
		}
	}
	return out
}
