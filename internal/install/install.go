// Package install places the lcd binary on the system as a setuid-root
// executable at /usr/local/bin/rust-lcd, the equivalent of `sudo make install`.
package install

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/renameio/v2"

	"lcd.dev/lcd/internal/privilege"
)

const (
	// DefaultDestDir is where the binary is installed.
	DefaultDestDir = "/usr/local/bin"
	// DefaultName is the installed binary name.
	DefaultName = "rust-lcd"
	// DefaultMode is rwsr-xr-x: setuid, world-executable.
	DefaultMode = os.ModeSetuid | 0755
)

var (
	// ErrNotRoot is returned when ownership must change but the invoking
	// user is not root.
	ErrNotRoot = errors.New("installing a setuid-root binary requires root")
	// ErrSetuid is returned when install runs through the setuid binary.
	ErrSetuid = errors.New("install cannot run setuid; use sudo instead")
	// ErrMismatch is returned by Verify when owner or mode differ.
	ErrMismatch = errors.New("installed binary does not match")
)

// Options describes an installation.
type Options struct {
	Source  string
	DestDir string
	Name    string
	UID     int
	GID     int
	Mode    os.FileMode
	// SkipChown leaves ownership alone, for unprivileged test installs.
	SkipChown bool
}

// elevated is swapped in tests.
var elevated = privilege.Elevated

// DefaultOptions installs the running executable as /usr/local/bin/rust-lcd,
// owned by root:root with mode 4755.
func DefaultOptions() Options {
	return Options{
		DestDir: DefaultDestDir,
		Name:    DefaultName,
		UID:     0,
		GID:     0,
		Mode:    DefaultMode,
	}
}

// Target returns the installed file path.
func (o Options) Target() string {
	return filepath.Join(o.DestDir, o.Name)
}

func (o Options) withDefaults() (Options, error) {
	if o.DestDir == "" {
		o.DestDir = DefaultDestDir
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Mode == 0 {
		o.Mode = DefaultMode
	}
	if o.Source == "" {
		exe, err := os.Executable()
		if err != nil {
			return o, fmt.Errorf("failed to locate running executable: %w", err)
		}
		o.Source = exe
	}
	return o, nil
}

// Check reports whether the invoking user may perform the install.
//
// The real uid decides, not the effective one: run through the setuid
// binary, any user would otherwise place arbitrary root-owned setuid files.
func Check(opts Options) error {
	if elevated() {
		return ErrSetuid
	}
	if !opts.SkipChown && os.Getuid() != 0 {
		return ErrNotRoot
	}
	return nil
}

// Install copies the source binary to its target, sets ownership and then
// mode, and atomically moves it into place. It returns the target path.
func Install(opts Options) (string, error) {
	if err := Check(opts); err != nil {
		return "", err
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return "", err
	}

	src, err := os.Open(opts.Source)
	if err != nil {
		return "", fmt.Errorf("failed to open source binary: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(opts.DestDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", opts.DestDir, err)
	}

	target := opts.Target()
	pendingFile, err := renameio.NewPendingFile(target)
	if err != nil {
		return "", fmt.Errorf("failed to create pending file: %w", err)
	}
	defer func() { _ = pendingFile.Cleanup() }()

	if _, err := io.Copy(pendingFile, src); err != nil {
		return "", fmt.Errorf("failed to copy binary: %w", err)
	}

	if !opts.SkipChown {
		if err := pendingFile.Chown(opts.UID, opts.GID); err != nil {
			return "", fmt.Errorf("failed to chown %s: %w", target, err)
		}
	}
	// chown clears the setuid bit, so the mode goes on last.
	if err := pendingFile.Chmod(opts.Mode); err != nil {
		return "", fmt.Errorf("failed to chmod %s: %w", target, err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return "", fmt.Errorf("failed to install %s: %w", target, err)
	}
	return target, nil
}

// Verify checks that the installed file has the expected mode and, unless
// SkipChown is set, the expected owner.
func Verify(opts Options) error {
	opts, err := opts.withDefaults()
	if err != nil {
		return err
	}

	info, err := os.Stat(opts.Target())
	if err != nil {
		return err
	}

	const modeBits = os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky
	if got := info.Mode() & modeBits; got != opts.Mode {
		return fmt.Errorf("%w: mode is %s, want %s", ErrMismatch, got, opts.Mode)
	}

	if opts.SkipChown {
		return nil
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fmt.Errorf("cannot read ownership of %s", opts.Target())
	}
	if int(st.Uid) != opts.UID || int(st.Gid) != opts.GID {
		return fmt.Errorf("%w: owner is %d:%d, want %d:%d", ErrMismatch, st.Uid, st.Gid, opts.UID, opts.GID)
	}
	return nil
}
