package cli

import (
	"github.com/spf13/cobra"

	"lcd.dev/lcd/internal/actions"
	"lcd.dev/lcd/internal/cli/helpers"
	"lcd.dev/lcd/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:               "status [device...]",
		Short:             "Show power state and brightness",
		Aliases:           []string{"s"},
		ValidArgsFunction: helpers.CompleteDevices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				devices, err := ctx.Devices(args)
				if err != nil {
					return err
				}
				return actions.StatusAction(ctx, actions.StatusOptions{
					Devices: devices,
					JSON:    asJSON,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")

	return cmd
}

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List backlight devices",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				devices, err := ctx.Devices(nil)
				if all {
					devices, err = ctx.AllDevices()
				}
				if err != nil {
					return err
				}
				return actions.ListAction(ctx, devices)
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Ignore the configured device filter")

	return cmd
}
