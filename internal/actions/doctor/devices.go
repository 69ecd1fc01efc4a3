package doctor

import (
	"os"
	"slices"

	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/internal/runtime"
)

// checkDevices checks that devices exist and their power files are usable
func checkDevices(ctx *runtime.Context, r *report) {
	devices, err := ctx.AllDevices()
	if err != nil {
		r.fail(ctx, "%v", err)
		return
	}
	if len(devices) == 0 {
		r.fail(ctx, "no devices with a %s file in %s", ctx.PowerFile, ctx.BacklightDir)
		return
	}
	r.ok(ctx, "%d device(s) in %s", len(devices), ctx.BacklightDir)

	names := backlight.Names(devices)
	for _, name := range ctx.Config.Devices {
		if !slices.Contains(names, name) {
			r.warn(ctx, "configured device %q does not exist", name)
		}
	}

	for _, dev := range devices {
		on, err := dev.IsOn()
		if err != nil {
			r.fail(ctx, "%s: %v", dev.Name(), err)
			continue
		}
		// Opening for write checks permission without changing the value.
		f, err := os.OpenFile(dev.PowerPath(), os.O_WRONLY, 0)
		if err != nil {
			r.warn(ctx, "%s: power file is not writable: %v", dev.Name(), err)
			continue
		}
		_ = f.Close()

		state := "off"
		if on {
			state = "on"
		}
		r.ok(ctx, "%s is %s and writable", dev.Name(), state)
	}
}
