// Package tui provides the terminal user interface for lcd.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Interactive prompts (bubbletea confirmations, survey multi-selects)
//   - Terminal styling and colors (using lipgloss)
package tui
