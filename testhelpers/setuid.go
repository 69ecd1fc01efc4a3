package testhelpers

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// NobodyUID and NobodyGID identify the unprivileged user setuid tests run as.
const (
	NobodyUID = 65534
	NobodyGID = 65534
)

// SetuidBinary copies the shared binary into a fresh directory as
// root:root with mode 4755, the way `make install` leaves it.
//
// The test is skipped unless it runs as root on a filesystem that honours
// the setuid bit.
func SetuidBinary(t *testing.T) string {
	t.Helper()

	if os.Getuid() != 0 {
		t.Skip("setuid tests must run as root")
	}

	src := GetSharedBinaryPath()
	if src == "" {
		t.Fatalf("lcd binary not built: %v", GetBinaryError())
	}

	dir := OpenDir(t, 0, 0)
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		t.Fatalf("Failed to statfs %s: %v", dir, err)
	}
	if st.Flags&unix.ST_NOSUID != 0 {
		t.Skipf("%s is mounted nosuid", dir)
	}

	binary := filepath.Join(dir, "rust-lcd")
	copyFile(t, src, binary)
	require.NoError(t, os.Chown(binary, 0, 0))
	// chown clears setuid, so the mode goes on last.
	require.NoError(t, os.Chmod(binary, os.ModeSetuid|0755))
	return binary
}

// OpenDir creates a temporary directory owned by uid:gid that every user
// can traverse but only the owner can write.
func OpenDir(t *testing.T, uid, gid int) string {
	t.Helper()

	dir := t.TempDir()
	// t.TempDir nests the directory in a private 0700 parent.
	require.NoError(t, os.Chmod(filepath.Dir(dir), 0755))
	require.NoError(t, os.Chmod(dir, 0755))
	require.NoError(t, os.Chown(dir, uid, gid))
	return dir
}

// RunAs runs binary as uid:gid in dir with env as its whole environment
// (plus PATH and the non-interactive switches).
func RunAs(t *testing.T, binary, dir string, uid, gid uint32, env []string, args ...string) RunResult {
	t.Helper()

	cmd := exec.Command(binary, args...)
	cmd.Dir = dir
	cmd.Env = append([]string{
		"PATH=" + os.Getenv("PATH"),
		"LCD_TEST_NO_INTERACTIVE=1",
		"NO_COLOR=1",
	}, env...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Credential: &syscall.Credential{Uid: uid, Gid: gid},
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("failed to run %s: %v", binary, err)
	}
	return result
}

// Owner returns the uid owning path.
func Owner(t *testing.T, path string) uint32 {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return info.Sys().(*syscall.Stat_t).Uid
}

func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	in, err := os.Open(src)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		t.Fatalf("Failed to copy %s: %v", src, err)
	}
	require.NoError(t, out.Close())
}
