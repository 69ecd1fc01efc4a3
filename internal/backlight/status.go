package backlight

import (
	"errors"
	"io/fs"
)

// Status is a point-in-time snapshot of a device.
type Status struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	Power         int    `json:"power"`
	On            bool   `json:"on"`
	HasBrightness bool   `json:"hasBrightness"`
	Brightness    int    `json:"brightness,omitempty"`
	MaxBrightness int    `json:"maxBrightness,omitempty"`
	// ActualBrightness is what the hardware reports; -1 when not exposed.
	ActualBrightness int `json:"actualBrightness"`
}

// Percent returns brightness as a percentage of the maximum, or -1 when
// brightness is not available.
func (s Status) Percent() int {
	if !s.HasBrightness || s.MaxBrightness <= 0 {
		return -1
	}
	return s.Brightness * 100 / s.MaxBrightness
}

// Status reads the power state and, if exposed, the brightness levels.
// Missing brightness files are not an error.
func (d *Device) Status() (Status, error) {
	st := Status{Name: d.Name(), Path: d.path, ActualBrightness: -1}

	power, err := d.Power()
	if err != nil {
		return st, err
	}
	st.Power = power
	st.On = power == PowerOn

	brightness, err := d.Brightness()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return st, nil
	case err != nil:
		return st, err
	}
	maxBrightness, err := d.MaxBrightness()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return st, nil
	case err != nil:
		return st, err
	}

	st.HasBrightness = true
	st.Brightness = brightness
	st.MaxBrightness = maxBrightness

	actual, err := d.ActualBrightness()
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return st, err
	default:
		st.ActualBrightness = actual
	}
	return st, nil
}
