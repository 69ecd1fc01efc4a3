// Package errors provides sentinel errors and custom error types for the lcd application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrDeviceNotFound indicates that a named backlight device does not exist
	ErrDeviceNotFound = errors.New("device not found")

	// ErrInvalidValue indicates that a sysfs attribute does not hold an integer
	ErrInvalidValue = errors.New("invalid value")
)

// DeviceNotFoundError represents an error when a device is not found
type DeviceNotFoundError struct {
	Name string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("device %q not found", e.Name)
}

// Is returns true if the target error is ErrDeviceNotFound
func (e *DeviceNotFoundError) Is(target error) bool {
	return target == ErrDeviceNotFound
}

// NewDeviceNotFoundError creates a new DeviceNotFoundError
func NewDeviceNotFoundError(name string) *DeviceNotFoundError {
	return &DeviceNotFoundError{Name: name}
}

// DeviceError represents a failed operation on a single device
type DeviceError struct {
	Device string
	Op     string
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Device, e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// NewDeviceError creates a new DeviceError
func NewDeviceError(device, op string, err error) *DeviceError {
	return &DeviceError{
		Device: device,
		Op:     op,
		Err:    err,
	}
}
