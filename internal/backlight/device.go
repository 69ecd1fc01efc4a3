package backlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	lcderrors "lcd.dev/lcd/internal/errors"
)

const (
	// DefaultDir is the directory where the kernel exposes backlight devices.
	DefaultDir = "/sys/class/backlight"

	// PowerFile is the default name of the file controlling device power.
	PowerFile = "bl_power"

	// BrightnessFile holds the requested brightness level.
	BrightnessFile = "brightness"
	// MaxBrightnessFile holds the highest level BrightnessFile accepts.
	MaxBrightnessFile = "max_brightness"
	// ActualBrightnessFile holds the level the hardware reports.
	ActualBrightnessFile = "actual_brightness"
)

// Power values written by On, Off and Toggle.
const (
	PowerOn  = 0
	PowerOff = 1
)

// ErrInvalidValue is returned when a sysfs file does not hold an integer.
var ErrInvalidValue = lcderrors.ErrInvalidValue

// Device is a single backlight that can be switched on and off.
type Device struct {
	path      string
	powerPath string
}

// NewDevice creates a device rooted at path using the default power file.
func NewDevice(path string) *Device {
	return NewDeviceWithPowerFile(path, "")
}

// NewDeviceWithPowerFile creates a device whose power controller is the
// file name inside path. An empty name selects PowerFile.
func NewDeviceWithPowerFile(path, name string) *Device {
	if name == "" {
		name = PowerFile
	}
	return &Device{
		path:      path,
		powerPath: filepath.Join(path, name),
	}
}

// Path returns the device directory.
func (d *Device) Path() string {
	return d.path
}

// PowerPath returns the path of the power controller file.
func (d *Device) PowerPath() string {
	return d.powerPath
}

// Name returns the device name, e.g. "intel_backlight".
func (d *Device) Name() string {
	return filepath.Base(d.path)
}

func (d *Device) String() string {
	return fmt.Sprintf("Device{path: %q, bl_power: %q}", d.path, d.powerPath)
}

// Power reads the current power value.
func (d *Device) Power() (int, error) {
	return readInt(d.powerPath)
}

// IsOn reports whether the backlight is currently unblanked.
func (d *Device) IsOn() (bool, error) {
	v, err := d.Power()
	if err != nil {
		return false, err
	}
	return v == PowerOn, nil
}

// SetPower writes value to the power file.
func (d *Device) SetPower(value int) error {
	return writeInt(d.powerPath, value)
}

// Toggle flips the device between on and off and returns the new value.
// A value of 0 becomes 1; every other value becomes 0.
func (d *Device) Toggle() (int, error) {
	old, err := d.Power()
	if err != nil {
		return 0, err
	}
	next := PowerOn
	if old == PowerOn {
		next = PowerOff
	}
	if err := d.SetPower(next); err != nil {
		return 0, err
	}
	return next, nil
}

// On unblanks the backlight.
func (d *Device) On() error {
	return d.SetPower(PowerOn)
}

// Off blanks the backlight.
func (d *Device) Off() error {
	return d.SetPower(PowerOff)
}

// Brightness reads the requested brightness level.
func (d *Device) Brightness() (int, error) {
	return readInt(filepath.Join(d.path, BrightnessFile))
}

// MaxBrightness reads the maximum brightness level.
func (d *Device) MaxBrightness() (int, error) {
	return readInt(filepath.Join(d.path, MaxBrightnessFile))
}

// ActualBrightness reads the brightness reported by the hardware.
func (d *Device) ActualBrightness() (int, error) {
	return readInt(filepath.Join(d.path, ActualBrightnessFile))
}

func readInt(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, ErrInvalidValue)
	}
	return v, nil
}

func writeInt(path string, value int) error {
	// Never create the attribute; a missing file means a missing device.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(strconv.Itoa(value)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
