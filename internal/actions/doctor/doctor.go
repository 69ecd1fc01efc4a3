// Package doctor provides diagnostic functionality for checking the lcd environment and backlight devices.
package doctor

import (
	"fmt"

	"lcd.dev/lcd/internal/runtime"
)

// Options contains options for the doctor command
type Options struct {
	// Executable is the binary whose install is checked. Empty means the
	// running executable.
	Executable string
}

// report collects findings as checks run.
type report struct {
	warnings []string
	errors   []string
}

func (r *report) warn(ctx *runtime.Context, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.warnings = append(r.warnings, msg)
	ctx.Splog.Warn("  %s", msg)
}

func (r *report) fail(ctx *runtime.Context, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.errors = append(r.errors, msg)
	ctx.Splog.Error("  %s", msg)
}

func (r *report) ok(ctx *runtime.Context, format string, args ...interface{}) {
	ctx.Splog.Info("  ✅ "+format, args...)
}

// Action runs diagnostic checks on the lcd environment and devices
func Action(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog
	r := &report{}

	splog.Info("Running lcd doctor...")
	splog.Newline()

	splog.Info("Environment:")
	checkEnvironment(ctx, r, opts)

	splog.Newline()

	splog.Info("Devices:")
	checkDevices(ctx, r)

	splog.Newline()
	switch {
	case len(r.errors) > 0:
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(r.errors), len(r.warnings))
		return fmt.Errorf("doctor found %d error(s)", len(r.errors))
	case len(r.warnings) > 0:
		splog.Info("Doctor found %d warning(s). Your lcd setup is mostly healthy.", len(r.warnings))
	default:
		splog.Info("✅ All checks passed. Your lcd setup is healthy.")
	}

	return nil
}
