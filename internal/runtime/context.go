// Package runtime provides a context type that holds the logger and resolved
// settings for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"errors"
	"fmt"
	"os"

	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/internal/config"
	"lcd.dev/lcd/internal/privilege"
	"lcd.dev/lcd/internal/tui"
)

// ErrPathOverride is returned when device paths are overridden in a setuid run.
var ErrPathOverride = errors.New("--dir and --power-file cannot be used when running setuid; use sudo instead")

// elevated is swapped in tests.
var elevated = privilege.Elevated

// Context provides access to configuration and output for commands
type Context struct {
	Splog        *tui.Splog
	Config       *config.Config
	ConfigPath   string
	BacklightDir string
	PowerFile    string
}

// NewContext creates a context whose paths come from cfg.
func NewContext(splog *tui.Splog, cfg *config.Config) *Context {
	return &Context{
		Splog:        splog,
		Config:       cfg,
		BacklightDir: cfg.Dir(),
		PowerFile:    cfg.PowerFileName(),
	}
}

// Load reads the config file and builds a context from it.
func Load(splog *tui.Splog) (*Context, error) {
	path, err := config.Path()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(splog, cfg)
	ctx.ConfigPath = path
	return ctx, nil
}

// OverridePaths replaces the backlight directory and power file name with
// non-empty values from the command line. A setuid run refuses them: they
// would let any user pick the file root overwrites.
func (c *Context) OverridePaths(dir, powerFile string) error {
	if dir == "" && powerFile == "" {
		return nil
	}
	if elevated() {
		return ErrPathOverride
	}
	if dir != "" {
		c.BacklightDir = dir
	}
	if powerFile != "" {
		c.PowerFile = powerFile
	}
	return nil
}

// AllDevices lists every device in the backlight directory, ignoring the
// configured filter.
func (c *Context) AllDevices() ([]*backlight.Device, error) {
	devices, err := backlight.DevicesWithPowerFile(c.BacklightDir, c.PowerFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read backlight devices: %w", err)
	}
	return devices, nil
}

// Devices resolves the devices a command acts on. Explicit names bypass the
// configured filter but must exist; otherwise the config filter applies.
func (c *Context) Devices(names []string) ([]*backlight.Device, error) {
	devices, err := c.AllDevices()
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		return backlight.Select(devices, names)
	}
	return c.Config.Filter().Apply(devices), nil
}

// IsRoot reports whether lcd runs with an effective uid of 0, as it does when
// installed setuid-root.
func IsRoot() bool {
	return os.Geteuid() == 0
}
