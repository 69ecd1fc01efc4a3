package actions

import (
	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/internal/runtime"
)

// ListAction prints one device name per line.
func ListAction(ctx *runtime.Context, devices []*backlight.Device) error {
	for _, dev := range devices {
		ctx.Splog.Page(dev.Name() + "\n")
	}
	return nil
}
