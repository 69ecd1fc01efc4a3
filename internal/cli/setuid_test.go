package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lcd.dev/lcd/testhelpers"
)

// Runs the installed root:root 4755 binary as nobody and checks that nothing
// the caller controls can make it touch files outside the caller's own.
func TestSetuidRun(t *testing.T) {
	t.Parallel()

	binary := testhelpers.SetuidBinary(t)

	// rootDir is traversable by nobody but only root may write to it.
	setup := func(t *testing.T) (home, rootDir string) {
		t.Helper()
		home = testhelpers.OpenDir(t, testhelpers.NobodyUID, testhelpers.NobodyGID)
		rootDir = testhelpers.OpenDir(t, 0, 0)
		return home, rootDir
	}
	runAsNobody := func(t *testing.T, home string, env []string, args ...string) testhelpers.RunResult {
		t.Helper()
		env = append([]string{"HOME=" + home}, env...)
		return testhelpers.RunAs(t, binary, home, testhelpers.NobodyUID, testhelpers.NobodyGID, env, args...)
	}

	t.Run("install is refused", func(t *testing.T) {
		t.Parallel()
		home, rootDir := setup(t)
		payload := filepath.Join(home, "payload")
		require.NoError(t, os.WriteFile(payload, []byte("#!/bin/sh\nid\n"), 0755))
		require.NoError(t, os.Chown(payload, testhelpers.NobodyUID, testhelpers.NobodyGID))
		out := filepath.Join(rootDir, "out")

		res := runAsNobody(t, home, nil, "install", "--source", payload, "--prefix", out, "--yes")
		require.Equal(t, 1, res.ExitCode, res.Stdout)
		require.Contains(t, res.Stderr, "install cannot run setuid")

		_, err := os.Stat(out)
		require.ErrorIs(t, err, os.ErrNotExist)

		res = runAsNobody(t, home, nil, "install", "--source", payload, "--prefix", out, "--yes", "--skip-chown")
		require.Equal(t, 1, res.ExitCode, res.Stdout)
		_, err = os.Stat(out)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("path flags are refused", func(t *testing.T) {
		t.Parallel()
		home, rootDir := setup(t)
		shadowDir := filepath.Join(rootDir, "etc")
		require.NoError(t, os.MkdirAll(shadowDir, 0755))
		shadow := filepath.Join(shadowDir, "shadow")
		require.NoError(t, os.WriteFile(shadow, []byte("root:$6$hash:19000:0:99999:7:::\n"), 0600))

		res := runAsNobody(t, home, nil, "off", "--dir", rootDir, "--power-file", "shadow")
		require.Equal(t, 1, res.ExitCode, res.Stdout)
		require.Contains(t, res.Stderr, "cannot be used when running setuid")

		data, err := os.ReadFile(shadow)
		require.NoError(t, err)
		require.Equal(t, "root:$6$hash:19000:0:99999:7:::\n", string(data))
	})

	t.Run("LCD_BACKLIGHT_DIR and config paths are ignored", func(t *testing.T) {
		t.Parallel()
		home, rootDir := setup(t)
		require.NoError(t, os.MkdirAll(filepath.Join(rootDir, "etc"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(rootDir, "etc", "bl_power"), []byte("0\n"), 0600))

		res := runAsNobody(t, home, nil, "config", "set", "backlightDir", rootDir)
		require.Zero(t, res.ExitCode, res.Stderr)

		res = runAsNobody(t, home, []string{"LCD_BACKLIGHT_DIR=" + rootDir}, "list", "--all")
		require.NotContains(t, res.Stdout, "etc")
	})

	t.Run("LCD_CONFIG is ignored", func(t *testing.T) {
		t.Parallel()
		home, rootDir := setup(t)
		evil := filepath.Join(rootDir, "evil")

		res := runAsNobody(t, home, []string{"LCD_CONFIG=" + evil}, "config", "set", "devices", "x")
		require.Zero(t, res.ExitCode, res.Stderr)

		_, err := os.Stat(evil)
		require.ErrorIs(t, err, os.ErrNotExist)
		require.Equal(t, uint32(0), testhelpers.Owner(t, rootDir))

		saved := filepath.Join(home, ".config", "lcd", "config.json")
		require.Equal(t, uint32(testhelpers.NobodyUID), testhelpers.Owner(t, saved))
	})

	t.Run("config is written with the caller's rights", func(t *testing.T) {
		t.Parallel()
		_, rootDir := setup(t)

		res := runAsNobody(t, rootDir, nil, "config", "set", "devices", "x")
		require.Equal(t, 1, res.ExitCode, res.Stdout)

		_, err := os.Stat(filepath.Join(rootDir, ".config"))
		require.ErrorIs(t, err, os.ErrNotExist)
		require.Equal(t, uint32(0), testhelpers.Owner(t, rootDir))
	})

	t.Run("LCD_LOG_FILE is ignored", func(t *testing.T) {
		t.Parallel()
		home, rootDir := setup(t)
		logFile := filepath.Join(rootDir, "logs", "rootlog")

		runAsNobody(t, home, []string{"LCD_LOG_FILE=" + logFile}, "list")

		_, err := os.Stat(filepath.Dir(logFile))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
