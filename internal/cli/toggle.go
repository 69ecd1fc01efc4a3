package cli

import (
	"github.com/spf13/cobra"

	"lcd.dev/lcd/internal/actions"
	"lcd.dev/lcd/internal/cli/helpers"
	"lcd.dev/lcd/internal/runtime"
)

// newToggleCmd creates the toggle command
func newToggleCmd() *cobra.Command {
	var (
		dryRun      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "toggle [device...]",
		Short: "Switch devices between on and off",
		Long: `Switch each device between on and off.

A device whose bl_power is 0 is turned off (1); any other value turns it on (0).
Without arguments every configured device is toggled.`,
		Aliases:           []string{"t"},
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
				return actions.ToggleAction(ctx, actions.ToggleOptions{
					Devices: devices,
					DryRun:  dryRun,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would change without writing")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick devices interactively")

	return cmd
}
