// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"slices"

	"github.com/spf13/cobra"

	"lcd.dev/lcd/internal/backlight"
)

// CompleteDevices is a helper for cobra.ValidArgsFunction that returns the
// device names not already given on the command line.
func CompleteDevices(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	ctx, err := NewContext(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer func() { _ = ctx.Splog.Close() }()

	devices, err := ctx.AllDevices()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, name := range backlight.Names(devices) {
		if !slices.Contains(args, name) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
