package backlight_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lcd.dev/lcd/internal/backlight"
	"lcd.dev/lcd/testhelpers"
)

func TestNewDevice(t *testing.T) {
	t.Parallel()

	t.Run("uses bl_power by default", func(t *testing.T) {
		t.Parallel()
		path := "/sys/class/backlight/intel_backlight"
		dev := backlight.NewDevice(path)
		require.Equal(t, path, dev.Path())
		require.Equal(t, filepath.Join(path, backlight.PowerFile), dev.PowerPath())
		require.Equal(t, "intel_backlight", dev.Name())
	})

	t.Run("custom power file", func(t *testing.T) {
		t.Parallel()
		dev := backlight.NewDeviceWithPowerFile("/tmp/dev", "power")
		require.Equal(t, "/tmp/dev/power", dev.PowerPath())
	})

	t.Run("empty custom power file falls back to default", func(t *testing.T) {
		t.Parallel()
		dev := backlight.NewDeviceWithPowerFile("/tmp/dev", "")
		require.Equal(t, "/tmp/dev/bl_power", dev.PowerPath())
	})
}

func TestDeviceToggle(t *testing.T) {
	t.Parallel()

	t.Run("on becomes off", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dev := backlight.NewDevice(scene.AddDevice("acpi_video0", 0))

		next, err := dev.Toggle()
		require.NoError(t, err)
		require.Equal(t, backlight.PowerOff, next)
		require.Equal(t, "1", scene.ReadPower("acpi_video0"))
	})

	t.Run("off becomes on", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dev := backlight.NewDevice(scene.AddDevice("acpi_video0", 1))

		next, err := dev.Toggle()
		require.NoError(t, err)
		require.Equal(t, backlight.PowerOn, next)
		require.Equal(t, "0", scene.ReadPower("acpi_video0"))
	})

	t.Run("any nonzero value becomes on", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dev := backlight.NewDevice(scene.AddDevice("acpi_video0", 4))

		next, err := dev.Toggle()
		require.NoError(t, err)
		require.Equal(t, backlight.PowerOn, next)
		require.Equal(t, "0", scene.ReadPower("acpi_video0"))
	})

	t.Run("toggling twice restores the state", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dev := backlight.NewDevice(scene.AddDevice("acpi_video0", 0))

		_, err := dev.Toggle()
		require.NoError(t, err)
		_, err = dev.Toggle()
		require.NoError(t, err)
		require.Equal(t, "0", scene.ReadPower("acpi_video0"))
	})

	t.Run("garbage content is rejected without writing", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dev := backlight.NewDevice(scene.AddRawDevice("broken", "on\n"))

		_, err := dev.Toggle()
		require.ErrorIs(t, err, backlight.ErrInvalidValue)
		require.Equal(t, "on", scene.ReadPower("broken"))
	})

	t.Run("missing power file", func(t *testing.T) {
		t.Parallel()
		dev := backlight.NewDevice(filepath.Join(t.TempDir(), "missing"))

		_, err := dev.Toggle()
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDevicePower(t *testing.T) {
	t.Parallel()

	t.Run("trims whitespace", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dev := backlight.NewDevice(scene.AddRawDevice("panel", "  1 \n"))

		v, err := dev.Power()
		require.NoError(t, err)
		require.Equal(t, 1, v)

		on, err := dev.IsOn()
		require.NoError(t, err)
		require.False(t, on)
	})

	t.Run("on and off write fixed values", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dev := backlight.NewDevice(scene.AddDevice("panel", 4))

		require.NoError(t, dev.On())
		require.Equal(t, "0", scene.ReadPower("panel"))
		require.NoError(t, dev.Off())
		require.Equal(t, "1", scene.ReadPower("panel"))
	})

	t.Run("set power does not create a missing file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		dev := backlight.NewDevice(dir)

		require.Error(t, dev.SetPower(0))
		_, err := os.Stat(dev.PowerPath())
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDeviceStatus(t *testing.T) {
	t.Parallel()

	t.Run("with brightness", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.LaptopSceneSetup)
		dev := backlight.NewDevice(filepath.Join(scene.BacklightDir, "intel_backlight"))

		st, err := dev.Status()
		require.NoError(t, err)
		require.Equal(t, "intel_backlight", st.Name)
		require.True(t, st.On)
		require.True(t, st.HasBrightness)
		require.Equal(t, 480, st.Brightness)
		require.Equal(t, 960, st.MaxBrightness)
		require.Equal(t, 50, st.Percent())
		require.Equal(t, 480, st.ActualBrightness)

		actual, err := dev.ActualBrightness()
		require.NoError(t, err)
		require.Equal(t, 480, actual)
	})

	t.Run("without brightness", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dev := backlight.NewDevice(scene.AddDevice("panel", 1))

		st, err := dev.Status()
		require.NoError(t, err)
		require.False(t, st.On)
		require.Equal(t, 1, st.Power)
		require.False(t, st.HasBrightness)
		require.Equal(t, -1, st.Percent())
		require.Equal(t, -1, st.ActualBrightness)
	})
}
