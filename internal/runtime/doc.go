// Package runtime provides the execution context for lcd commands.
//
// It encapsulates shared dependencies needed by actions, such as the
// logger, the loaded configuration, and the resolved backlight directory.
package runtime
