// Package backlight reads and switches Linux backlight devices through sysfs.
//
// Every directory below DefaultDir ("/sys/class/backlight") that holds a
// regular PowerFile ("bl_power") is a Device. Power values are plain
// decimal integers: 0 means the backlight is on, anything else means it is
// blanked. Writing them usually requires root.
package backlight
