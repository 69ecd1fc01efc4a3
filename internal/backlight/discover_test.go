package backlight_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/testhelpers"
)

func TestDevices(t *testing.T) {
	t.Parallel()

	t.Run("lists only entries with a power file", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.AddDevice("intel_backlight", 0)
		scene.AddDevice("acpi_video0", 1)
		scene.AddNonDevice("not_a_device")

		devices, err := backlight.Devices(scene.BacklightDir)
		require.NoError(t, err)
		require.Equal(t, []string{"acpi_video0", "intel_backlight"}, backlight.Names(devices))
		for _, dev := range devices {
			require.Equal(t, scene.BacklightDir, filepath.Dir(dev.Path()))
		}
	})

	t.Run("skips a directory named bl_power", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dir := scene.AddNonDevice("weird")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "bl_power"), 0755))

		devices, err := backlight.Devices(scene.BacklightDir)
		require.NoError(t, err)
		require.Empty(t, devices)
	})

	t.Run("custom power file", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.AddDevice("panel", 0)

		devices, err := backlight.DevicesWithPowerFile(scene.BacklightDir, "brightness")
		require.NoError(t, err)
		require.Empty(t, devices)
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		t.Parallel()
		_, err := backlight.Devices(filepath.Join(t.TempDir(), "nope"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestScan(t *testing.T) {
	t.Parallel()

	t.Run("yields devices", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.AddDevice("a", 0)
		scene.AddDevice("b", 0)

		var names []string
		for dev := range backlight.Scan(scene.BacklightDir) {
			names = append(names, dev.Name())
		}
		require.Equal(t, []string{"a", "b"}, names)
	})

	t.Run("stops early", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.AddDevice("a", 0)
		scene.AddDevice("b", 0)

		count := 0
		for range backlight.Scan(scene.BacklightDir) {
			count++
			break
		}
		require.Equal(t, 1, count)
	})

	t.Run("unreadable directory yields nothing", func(t *testing.T) {
		t.Parallel()
		count := 0
		for range backlight.Scan(filepath.Join(t.TempDir(), "nope")) {
			count++
		}
		require.Zero(t, count)
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	devices := []*backlight.Device{
		backlight.NewDevice("/x/a"),
		backlight.NewDevice("/x/b"),
		backlight.NewDevice("/x/c"),
	}

	t.Run("empty filter keeps all", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"a", "b", "c"}, backlight.Names(backlight.Filter{}.Apply(devices)))
	})

	t.Run("include", func(t *testing.T) {
		t.Parallel()
		f := backlight.Filter{Include: []string{"c", "a"}}
		require.Equal(t, []string{"a", "c"}, backlight.Names(f.Apply(devices)))
	})

	t.Run("exclude wins over include", func(t *testing.T) {
		t.Parallel()
		f := backlight.Filter{Include: []string{"a", "b"}, Exclude: []string{"b"}}
		require.Equal(t, []string{"a"}, backlight.Names(f.Apply(devices)))
	})
}

func TestSelect(t *testing.T) {
	t.Parallel()

	devices := []*backlight.Device{
		backlight.NewDevice("/x/a"),
		backlight.NewDevice("/x/b"),
	}

	t.Run("keeps requested order and drops duplicates", func(t *testing.T) {
		t.Parallel()
		out, err := backlight.Select(devices, []string{"b", "a", "b"})
		require.NoError(t, err)
		require.Equal(t, []string{"b", "a"}, backlight.Names(out))
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		_, err := backlight.Select(devices, []string{"zz"})
		require.ErrorIs(t, err, backlight.ErrDeviceNotFound)
		require.Contains(t, err.Error(), `"zz"`)
	})
}
