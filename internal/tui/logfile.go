package tui

import (
	"os"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"

	"lcd.dev/lcd/internal/privilege"
)

// elevated is swapped in tests.
var elevated = privilege.Elevated

// GetLogFilePath returns the path of the file log, or "" when file logging
// is off. It is only enabled through LCD_LOG_FILE, and never when running
// setuid: lumberjack creates, renames and prunes files as the effective uid
// for as long as the process runs.
func GetLogFilePath() string {
	if elevated() {
		return ""
	}
	return os.Getenv("LCD_LOG_FILE")
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,     // 1MB (in megabytes) - default
		MaxBackups: 2,     // Keep 2 old files - default
		MaxAge:     30,    // Keep for 30 days - default
		Compress:   false, // Never compress logs - default
	}

	if maxSizeStr := os.Getenv("LCD_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("LCD_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("LCD_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}

	return config
}
