package doctor

import (
	"os"
	"syscall"

	"lcd.dev/lcd/internal/runtime"
)

// checkEnvironment checks privileges and how the binary is installed
func checkEnvironment(ctx *runtime.Context, r *report, opts Options) {
	if runtime.IsRoot() {
		r.ok(ctx, "running as root (uid %d, euid 0)", os.Getuid())
	} else {
		r.warn(ctx, "not running as root: devices cannot be switched (install with `sudo rust-lcd install`)")
	}

	exe := opts.Executable
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			r.warn(ctx, "cannot locate the running executable: %v", err)
			return
		}
	}

	info, err := os.Stat(exe)
	if err != nil {
		r.warn(ctx, "cannot stat %s: %v", exe, err)
		return
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	switch {
	case info.Mode()&os.ModeSetuid == 0:
		r.warn(ctx, "%s is not setuid (mode %s)", exe, info.Mode())
	case !ok || st.Uid != 0:
		r.warn(ctx, "%s is setuid but not owned by root", exe)
	default:
		r.ok(ctx, "%s is setuid-root (mode %s)", exe, info.Mode())
	}

	if ctx.ConfigPath != "" {
		if _, err := os.Stat(ctx.ConfigPath); err == nil {
			r.ok(ctx, "config loaded from %s", ctx.ConfigPath)
		} else {
			r.ok(ctx, "no config file, using defaults")
		}
	}
}
