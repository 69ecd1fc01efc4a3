package cli

import (
	"github.com/spf13/cobra"

	"lcd.dev/lcd/internal/actions"
	"lcd.dev/lcd/internal/cli/helpers"
	"lcd.dev/lcd/internal/install"
	"lcd.dev/lcd/internal/runtime"
	"lcd.dev/lcd/internal/tui"
)

// newInstallCmd creates the install command
func newInstallCmd() *cobra.Command {
	var (
		prefix    string
		source    string
		yes       bool
		skipChown bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install rust-lcd as a setuid-root binary",
		Long: `Copy the binary to /usr/local/bin/rust-lcd, owned by root:root with mode 4755.

The setuid bit lets any user switch backlights without sudo. Run it once as root:

  sudo rust-lcd install

The installed setuid binary refuses to run install itself.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts := install.DefaultOptions()
				opts.DestDir = prefix
				opts.Source = source
				opts.SkipChown = skipChown

				return actions.InstallAction(ctx, actions.InstallOptions{
					Install: opts,
					Confirm: !yes && tui.IsTTY(),
				})
			})
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", install.DefaultDestDir, "Directory to install into")
	cmd.Flags().StringVar(&source, "source", "", "Binary to install (default: the running executable)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&skipChown, "skip-chown", false, "Keep the current owner (for unprivileged staging installs)")

	return cmd
}
