package actions

import (
	"errors"

	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/internal/runtime"
	"lcd.dev/lcd/internal/tui"
)

// PowerOptions contains options for the on and off commands
type PowerOptions struct {
	Devices []*backlight.Device
	On      bool
	DryRun  bool
}

// PowerAction forces every device on or off.
func PowerAction(ctx *runtime.Context, opts PowerOptions) error {
	if len(opts.Devices) == 0 {
		ctx.Splog.Warn("No backlight devices found in %s.", ctx.BacklightDir)
		return nil
	}

	var errs []error
	for _, dev := range opts.Devices {
		name := tui.ColorDeviceName(dev.Name())
		if opts.DryRun {
			on, err := dev.IsOn()
			if err != nil {
				errs = append(errs, reportFailure(ctx, dev, "read", err))
				continue
			}
			if on == opts.On {
				ctx.Splog.Info("%s: already %s", name, tui.ColorPower(on))
				continue
			}
			ctx.Splog.Info("%s: would turn %s", name, tui.ColorPower(opts.On))
			continue
		}

		op, set := "off", dev.Off
		if opts.On {
			op, set = "on", dev.On
		}
		if err := set(); err != nil {
			errs = append(errs, reportFailure(ctx, dev, op, err))
			continue
		}
		ctx.Splog.Info("%s: %s", name, tui.ColorPower(opts.On))
	}

	return errors.Join(errs...)
}
