// Package config manages lcd's user configuration.
//
// It handles:
//   - Locating the config file ($LCD_CONFIG, then the XDG config dir)
//   - Reading it with defaults for every unset field
//   - Atomic writes for `config set` and `config unset`
//   - Doing all file access as the invoking user when running setuid
package config
