package actions

import (
	"fmt"

	"lcd.dev/lcd/internal/install"
	"lcd.dev/lcd/internal/runtime"
	"lcd.dev/lcd/internal/tui"
)

// InstallOptions contains options for the install command
type InstallOptions struct {
	Install install.Options
	// Confirm asks before replacing files on the system.
	Confirm bool
}

// InstallAction installs the lcd binary as a setuid-root executable.
func InstallAction(ctx *runtime.Context, opts InstallOptions) error {
	if err := install.Check(opts.Install); err != nil {
		return err
	}
	target := opts.Install.Target()

	if opts.Confirm {
		ok, err := tui.PromptConfirm(fmt.Sprintf("Install %s as setuid-root?", target), false)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Splog.Info("Install aborted.")
			return nil
		}
	}

	path, err := install.Install(opts.Install)
	if err != nil {
		return err
	}
	if err := install.Verify(opts.Install); err != nil {
		return err
	}

	ctx.Splog.Info("Installed %s (%s).", tui.ColorCyan(path), opts.Install.Mode)
	return nil
}
