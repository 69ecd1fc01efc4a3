package backlight

import (
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	lcderrors "lcd.dev/lcd/internal/errors"
)

// ErrDeviceNotFound is returned when a requested device name does not exist.
var ErrDeviceNotFound = lcderrors.ErrDeviceNotFound

// Devices lists the devices found in dir, sorted by name.
//
// It fails only if dir itself cannot be read. Entries without a regular
// power file are skipped.
func Devices(dir string) ([]*Device, error) {
	return DevicesWithPowerFile(dir, "")
}

// DevicesWithPowerFile is like Devices but looks for the named power file.
func DevicesWithPowerFile(dir, powerFile string) ([]*Device, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var devices []*Device
	for _, entry := range entries {
		dev := NewDeviceWithPowerFile(filepath.Join(dir, entry.Name()), powerFile)
		// Stat follows the symlinks sysfs uses for class devices.
		info, err := os.Stat(dev.PowerPath())
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		devices = append(devices, dev)
	}

	slices.SortFunc(devices, func(a, b *Device) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return devices, nil
}

// Scan iterates over the devices in dir. It yields nothing if dir cannot be
// read.
func Scan(dir string) iter.Seq[*Device] {
	return func(yield func(*Device) bool) {
		devices, err := Devices(dir)
		if err != nil {
			return
		}
		for _, dev := range devices {
			if !yield(dev) {
				return
			}
		}
	}
}

// Filter selects devices by name.
type Filter struct {
	// Include lists the names to keep. Empty keeps every device.
	Include []string
	// Exclude lists names to drop. It wins over Include.
	Exclude []string
}

// Apply returns the devices that pass the filter, preserving order.
func (f Filter) Apply(devices []*Device) []*Device {
	var out []*Device
	for _, dev := range devices {
		name := dev.Name()
		if slices.Contains(f.Exclude, name) {
			continue
		}
		if len(f.Include) > 0 && !slices.Contains(f.Include, name) {
			continue
		}
		out = append(out, dev)
	}
	return out
}

// Select returns the devices whose names are listed, in the order given.
// Every name must exist.
func Select(devices []*Device, names []string) ([]*Device, error) {
	byName := make(map[string]*Device, len(devices))
	for _, dev := range devices {
		byName[dev.Name()] = dev
	}

	out := make([]*Device, 0, len(names))
	for _, name := range names {
		dev, ok := byName[name]
		if !ok {
			return nil, lcderrors.NewDeviceNotFoundError(name)
		}
		if !slices.Contains(out, dev) {
			out = append(out, dev)
		}
	}
	return out, nil
}

// Names returns the names of devices.
func Names(devices []*Device) []string {
	names := make([]string, len(devices))
	for i, dev := range devices {
		names[i] = dev.Name()
	}
	return names
}
