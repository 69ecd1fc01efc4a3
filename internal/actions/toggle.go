package actions

import (
	"errors"

	"lcd.dev/lcd/internal/backlight"
	lcderrors "lcd.dev/lcd/internal/errors"
	"lcd.dev/lcd/internal/runtime"
	"lcd.dev/lcd/internal/tui"
)

// ToggleOptions contains options for the toggle command
type ToggleOptions struct {
	Devices []*backlight.Device
	DryRun  bool
}

// ToggleAction flips every device between on and off.
func ToggleAction(ctx *runtime.Context, opts ToggleOptions) error {
	if len(opts.Devices) == 0 {
		ctx.Splog.Warn("No backlight devices found in %s.", ctx.BacklightDir)
		return nil
	}

	var errs []error
	for _, dev := range opts.Devices {
		ctx.Splog.Debug("%s", dev)

		if opts.DryRun {
			on, err := dev.IsOn()
			if err != nil {
				errs = append(errs, reportFailure(ctx, dev, "read", err))
				continue
			}
			ctx.Splog.Info("%s: would turn %s", tui.ColorDeviceName(dev.Name()), tui.ColorPower(!on))
			continue
		}

		next, err := dev.Toggle()
		if err != nil {
			errs = append(errs, reportFailure(ctx, dev, "toggle", err))
			continue
		}
		ctx.Splog.Info("%s: %s", tui.ColorDeviceName(dev.Name()), tui.ColorPower(next == backlight.PowerOn))
	}

	return errors.Join(errs...)
}

func reportFailure(ctx *runtime.Context, dev *backlight.Device, op string, err error) error {
	devErr := lcderrors.NewDeviceError(dev.Name(), op, err)
	ctx.Splog.Error("%v", devErr)
	return devErr
}
