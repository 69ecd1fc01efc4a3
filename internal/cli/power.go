package cli

import (
	"github.com/spf13/cobra"

	"lcd.dev/lcd/internal/actions"
	"lcd.dev/lcd/internal/cli/helpers"
	"lcd.dev/lcd/internal/runtime"
)

func newOnCmd() *cobra.Command {
	return newPowerCmd(true)
}

func newOffCmd() *cobra.Command {
	return newPowerCmd(false)
}

// newPowerCmd creates the on or off command
func newPowerCmd(on bool) *cobra.Command {
	var (
		dryRun      bool
		interactive bool
	)

	use, short := "off [device...]", "Turn devices off"
	if on {
		use, short = "on [device...]", "Turn devices on"
	}

	cmd := &cobra.Command{
		Use:               use,
		Short:             short,
		ValidArgsFunction: helpers.CompleteDevices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				devices, err := helpers.ResolveDevices(ctx, args, interactive)
				if err != nil {
					return err
				}
				if !dryRun {
					helpers.WarnIfNotRoot(ctx)
				}
				return actions.PowerAction(ctx, actions.PowerOptions{
					Devices: devices,
					On:      on,
					DryRun:  dryRun,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would change without writing")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick devices interactively")

	return cmd
}
