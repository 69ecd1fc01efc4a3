package testhelpers

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Scene is a fake sysfs backlight tree rooted in a temporary directory.
//
// Devices are created the way the kernel lays them out: the real device
// directory lives under Dir/devices and BacklightDir holds symlinks to it.
type Scene struct {
	Dir          string
	BacklightDir string
	t            *testing.T
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new scene with an empty backlight directory.
// Everything is removed when the test finishes.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir := t.TempDir()
	scene := &Scene{
		Dir:          tmpDir,
		BacklightDir: filepath.Join(tmpDir, "class", "backlight"),
		t:            t,
	}

	if err := os.MkdirAll(scene.BacklightDir, 0755); err != nil {
		t.Fatalf("Failed to create backlight dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "devices"), 0755); err != nil {
		t.Fatalf("Failed to create devices dir: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// AddDevice creates a device with the given bl_power value and returns the
// path of its entry in BacklightDir.
func (s *Scene) AddDevice(name string, power int) string {
	s.t.Helper()
	target := s.deviceDir(name)
	s.writeFile(filepath.Join(target, "bl_power"), strconv.Itoa(power)+"\n")
	return s.link(name, target)
}

// AddDeviceWithBrightness creates a device that also exposes brightness
// and max_brightness.
func (s *Scene) AddDeviceWithBrightness(name string, power, brightness, maxBrightness int) string {
	s.t.Helper()
	path := s.AddDevice(name, power)
	s.writeFile(filepath.Join(path, "brightness"), strconv.Itoa(brightness)+"\n")
	s.writeFile(filepath.Join(path, "max_brightness"), strconv.Itoa(maxBrightness)+"\n")
	s.writeFile(filepath.Join(path, "actual_brightness"), strconv.Itoa(brightness)+"\n")
	return path
}

// AddRawDevice creates a device whose bl_power holds content verbatim.
func (s *Scene) AddRawDevice(name, content string) string {
	s.t.Helper()
	target := s.deviceDir(name)
	s.writeFile(filepath.Join(target, "bl_power"), content)
	return s.link(name, target)
}

// AddNonDevice creates an entry in BacklightDir without a bl_power file.
func (s *Scene) AddNonDevice(name string) string {
	s.t.Helper()
	path := filepath.Join(s.BacklightDir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		s.t.Fatalf("Failed to create %s: %v", path, err)
	}
	return path
}

// ReadPower returns the trimmed content of a device's bl_power file.
func (s *Scene) ReadPower(name string) string {
	s.t.Helper()
	data, err := os.ReadFile(filepath.Join(s.BacklightDir, name, "bl_power"))
	if err != nil {
		s.t.Fatalf("Failed to read bl_power of %s: %v", name, err)
	}
	return strings.TrimSpace(string(data))
}

func (s *Scene) deviceDir(name string) string {
	s.t.Helper()
	dir := filepath.Join(s.Dir, "devices", name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		s.t.Fatalf("Failed to create %s: %v", dir, err)
	}
	return dir
}

func (s *Scene) link(name, target string) string {
	s.t.Helper()
	path := filepath.Join(s.BacklightDir, name)
	if err := os.Symlink(target, path); err != nil {
		s.t.Fatalf("Failed to link %s: %v", path, err)
	}
	return path
}

func (s *Scene) writeFile(path, content string) {
	s.t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		s.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// LaptopSceneSetup creates a single intel_backlight device that is on.
func LaptopSceneSetup(scene *Scene) error {
	scene.AddDeviceWithBrightness("intel_backlight", 0, 480, 960)
	return nil
}
