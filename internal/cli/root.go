package cli

import (
	"github.com/spf13/cobra"

	"lcd.dev/lcd/internal/actions"
	"lcd.dev/lcd/internal/cli/helpers"
	"lcd.dev/lcd/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rust-lcd",
		Short: "Toggle display backlights on and off",
		Long: `rust-lcd switches Linux backlight devices on and off through sysfs.

Run without a subcommand to toggle every configured device. Writing to
bl_power needs root, so lcd is normally installed setuid-root:

  sudo rust-lcd install`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				devices, err := ctx.Devices(nil)
				if err != nil {
					return err
				}
				helpers.WarnIfNotRoot(ctx)
				return actions.ToggleAction(ctx, actions.ToggleOptions{Devices: devices})
			})
		},
	}

	helpers.AddPersistentFlags(rootCmd)

	rootCmd.AddCommand(newToggleCmd())
	rootCmd.AddCommand(newOnCmd())
	rootCmd.AddCommand(newOffCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
