// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to an lcd command (toggle, on, off, status, ...)
// and works on devices already resolved by the cli package.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Splog and the loaded config
//   - Actions keep going after a per-device failure and return the joined errors
//   - Actions report progress through the tui package
package actions
