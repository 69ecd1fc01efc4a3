package actions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/internal/runtime"
	"lcd.dev/lcd/internal/tui"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	Devices []*backlight.Device
	JSON    bool
}

// StatusAction prints the power state and brightness of every device.
func StatusAction(ctx *runtime.Context, opts StatusOptions) error {
	statuses := make([]backlight.Status, 0, len(opts.Devices))
	var errs []error
	for _, dev := range opts.Devices {
		st, err := dev.Status()
		if err != nil {
			errs = append(errs, reportFailure(ctx, dev, "status", err))
			continue
		}
		statuses = append(statuses, st)
	}

	if opts.JSON {
		data, err := json.MarshalIndent(statuses, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		ctx.Splog.Page(string(data))
		ctx.Splog.Newline()
		return errors.Join(errs...)
	}

	if len(statuses) == 0 && len(errs) == 0 {
		ctx.Splog.Warn("No backlight devices found in %s.", ctx.BacklightDir)
		return nil
	}
	if len(statuses) > 0 {
		ctx.Splog.Page(renderStatusTable(statuses))
		ctx.Splog.Newline()
	}
	return errors.Join(errs...)
}

func renderStatusTable(statuses []backlight.Status) string {
	rows := make([][]string, 0, len(statuses))
	for _, st := range statuses {
		brightness := tui.ColorDim("n/a")
		if pct := st.Percent(); pct >= 0 {
			brightness = fmt.Sprintf("%d/%d (%d%%)", st.Brightness, st.MaxBrightness, pct)
		}
		rows = append(rows, []string{st.Name, tui.ColorPower(st.On), brightness})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DEVICE", "POWER", "BRIGHTNESS").
		Rows(rows...).
		String()
}
