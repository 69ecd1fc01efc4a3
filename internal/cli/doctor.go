package cli

import (
	"github.com/spf13/cobra"

	"lcd.dev/lcd/internal/actions/doctor"
	"lcd.dev/lcd/internal/cli/helpers"
	"lcd.dev/lcd/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with your lcd setup",
		Long: `Run diagnostic checks on your lcd environment and devices.

The doctor command checks:
  - Environment: effective uid, whether the binary is setuid-root, and the config file
  - Devices: the backlight directory, each power file's value, and write access`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return doctor.Action(ctx, doctor.Options{})
			})
		},
	}

	return cmd
}
