// Package privilege tracks whether lcd runs setuid and lets callers do
// filesystem work with the invoking user's rights.
package privilege

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Elevated reports whether lcd runs with an effective uid different from
// the real one, as it does when a user runs the setuid-root install.
//
// Anything the invoking user controls (flags, environment, their config
// file) must not choose paths that are opened with the effective uid.
func Elevated() bool {
	return os.Getuid() != os.Geteuid()
}

// AsRealUser runs fn with the effective uid set to the real uid, then
// restores it. The saved set-user-ID keeps root available for the restore.
// It changes process-wide credentials and must not run concurrently.
func AsRealUser(fn func() error) error {
	if !Elevated() {
		return fn()
	}

	euid := os.Geteuid()
	if err := unix.Setresuid(-1, os.Getuid(), -1); err != nil {
		return fmt.Errorf("failed to drop privileges: %w", err)
	}
	fnErr := fn()
	if err := unix.Setresuid(-1, euid, -1); err != nil {
		return fmt.Errorf("failed to restore privileges: %w", err)
	}
	return fnErr
}
