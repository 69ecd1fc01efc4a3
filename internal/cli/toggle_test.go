package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/testhelpers"
)

func twoDevices(scene *testhelpers.Scene) error {
	scene.AddDeviceWithBrightness("intel_backlight", 0, 100, 400)
	scene.AddDevice("acpi_video0", 1)
	scene.AddNonDevice("not_a_device")
	return nil
}

func TestRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("toggles every device", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)

		res := run(t, scene)
		require.Zero(t, res.ExitCode, res.Stderr)
		require.Contains(t, res.Stdout, "intel_backlight: OFF")
		require.Contains(t, res.Stdout, "acpi_video0: ON")
		testhelpers.ExpectPower(t, scene, map[string]string{"intel_backlight": "1", "acpi_video0": "0"})
	})

	t.Run("missing backlight directory fails", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		res := testhelpers.RunBinary(t, scene.Dir, "--dir", scene.Dir+"/missing")
		require.Equal(t, 1, res.ExitCode)
		require.Contains(t, res.Stderr, "failed to read backlight devices")
	})

	t.Run("empty directory only warns", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		res := run(t, scene)
		require.Zero(t, res.ExitCode, res.Stderr)
		require.Contains(t, res.Stdout, "No backlight devices found")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)

		res := run(t, scene, "intel_backlight")
		require.Equal(t, 1, res.ExitCode)
		testhelpers.ExpectPower(t, scene, map[string]string{"intel_backlight": "0"})
	})
}

func TestToggleCommand(t *testing.T) {
	t.Parallel()

	t.Run("named device only", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)

		res := run(t, scene, "toggle", "acpi_video0")
		require.Zero(t, res.ExitCode, res.Stderr)
		testhelpers.ExpectPower(t, scene, map[string]string{"intel_backlight": "0", "acpi_video0": "0"})
	})

	t.Run("dry run", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)

		res := run(t, scene, "toggle", "--dry-run")
		require.Zero(t, res.ExitCode, res.Stderr)
		require.Contains(t, res.Stdout, "intel_backlight: would turn OFF")
		testhelpers.ExpectPower(t, scene, map[string]string{"intel_backlight": "0", "acpi_video0": "1"})
	})

	t.Run("unknown device", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)

		res := run(t, scene, "toggle", "ghost")
		require.Equal(t, 1, res.ExitCode)
		require.Contains(t, res.Stderr, `device "ghost" not found`)
	})

	t.Run("interactive without a terminal", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)

		res := run(t, scene, "toggle", "-i")
		require.Equal(t, 1, res.ExitCode)
		require.Contains(t, res.Stderr, "interactive prompts are disabled")
	})

	t.Run("broken device fails but others still toggle", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)
		scene.AddRawDevice("broken", "x")

		res := run(t, scene, "toggle")
		require.Equal(t, 1, res.ExitCode)
		require.Contains(t, res.Stderr, "broken")
		testhelpers.ExpectPower(t, scene, map[string]string{"intel_backlight": "1", "acpi_video0": "0"})
	})
}

func TestOnOffCommands(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, twoDevices)

	res := run(t, scene, "off")
	require.Zero(t, res.ExitCode, res.Stderr)
	testhelpers.ExpectPower(t, scene, map[string]string{"intel_backlight": "1", "acpi_video0": "1"})

	res = run(t, scene, "on", "intel_backlight")
	require.Zero(t, res.ExitCode, res.Stderr)
	testhelpers.ExpectPower(t, scene, map[string]string{"intel_backlight": "0", "acpi_video0": "1"})
}

func TestStatusAndListCommands(t *testing.T) {
	t.Parallel()

	t.Run("status json", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)

		res := run(t, scene, "status", "--json")
		require.Zero(t, res.ExitCode, res.Stderr)

		var statuses []backlight.Status
		require.NoError(t, json.Unmarshal([]byte(res.Stdout), &statuses))
		require.Len(t, statuses, 2)
		require.Equal(t, "intel_backlight", statuses[1].Name)
		require.Equal(t, 25, statuses[1].Percent())
	})

	t.Run("status table", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)

		res := run(t, scene, "status")
		require.Zero(t, res.ExitCode, res.Stderr)
		require.Contains(t, res.Stdout, "100/400 (25%)")
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, twoDevices)

		res := run(t, scene, "list")
		require.Zero(t, res.ExitCode, res.Stderr)
		require.Equal(t, []string{"acpi_video0", "intel_backlight"}, strings.Fields(res.Stdout))
	})
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, nil)
	res := testhelpers.RunBinary(t, scene.Dir, "version")
	require.Zero(t, res.ExitCode, res.Stderr)
	require.True(t, strings.HasPrefix(res.Stdout, "rust-lcd dev"))
}
