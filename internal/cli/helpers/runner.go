package helpers

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/internal/runtime"
	"lcd.dev/lcd/internal/tui"
)

// Flag names shared by every command.
const (
	FlagDir       = "dir"
	FlagPowerFile = "power-file"
	FlagDebug     = "debug"
)

// AddPersistentFlags registers the global flags on the root command.
func AddPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagDir, "", "Backlight class directory (default /sys/class/backlight)")
	cmd.PersistentFlags().String(FlagPowerFile, "", "Name of the power controller file (default bl_power)")
	cmd.PersistentFlags().Bool(FlagDebug, false, "Print debug output")
}

// NewContext builds a runtime context from the config file and the global
// flags. Flags win over LCD_BACKLIGHT_DIR, which wins over the config file.
// A setuid run uses the default sysfs paths only.
func NewContext(cmd *cobra.Command) (*runtime.Context, error) {
	debug, _ := cmd.Flags().GetBool(FlagDebug)
	debug = debug || os.Getenv("DEBUG") != ""

	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath(), debug)
	if err != nil {
		splog.Debug("file logging disabled: %v", err)
	}

	ctx, err := runtime.Load(splog)
	if err != nil {
		_ = splog.Close()
		return nil, err
	}

	dir, _ := cmd.Flags().GetString(FlagDir)
	powerFile, _ := cmd.Flags().GetString(FlagPowerFile)
	if err := ctx.OverridePaths(dir, powerFile); err != nil {
		_ = splog.Close()
		return nil, err
	}

	splog.Debug("%s %s: dir=%s power-file=%s config=%s", cmd.Root().Name(), cmd.Name(), ctx.BacklightDir, ctx.PowerFile, ctx.ConfigPath)
	return ctx, nil
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := NewContext(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Splog.Close() }()
	return fn(ctx)
}

// WarnIfNotRoot warns before a write that will most likely be refused.
func WarnIfNotRoot(ctx *runtime.Context) {
	if !runtime.IsRoot() {
		ctx.Splog.Warn("Not running as root; writing %s will probably fail. Try `sudo rust-lcd install`.", ctx.PowerFile)
	}
}

// ErrNoDevicesSelected is returned when the interactive picker comes back empty.
var ErrNoDevicesSelected = errors.New("no devices selected")

// ResolveDevices returns the devices named in args, or the configured set
// when args is empty. With interactive set and no args the user picks from
// the configured set.
func ResolveDevices(ctx *runtime.Context, args []string, interactive bool) ([]*backlight.Device, error) {
	if !interactive || len(args) > 0 {
		return ctx.Devices(args)
	}

	devices, err := ctx.Devices(nil)
	if err != nil {
		return nil, err
	}
	names := backlight.Names(devices)
	labels := make(map[string]string, len(devices))
	for _, dev := range devices {
		if on, err := dev.IsOn(); err == nil {
			state := "off"
			if on {
				state = "on"
			}
			labels[dev.Name()] = fmt.Sprintf("%s (%s)", dev.Name(), state)
		}
	}

	picked, err := tui.PromptDevices("Select devices:", names, labels)
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return nil, ErrNoDevicesSelected
	}
	return backlight.Select(devices, picked)
}
