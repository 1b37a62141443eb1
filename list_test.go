package upsline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListPorts(t *testing.T) {
	ports, err := ListPorts()
	if err != nil {
		t.Errorf("ListPorts failed: %v", err)
	}

	for _, port := range ports {
		if !strings.HasPrefix(port.Path, "/dev/") {
			t.Errorf("Port path doesn't start with /dev/: %s", port.Path)
		}
		if !isCharacterDevice(port.Path) {
			t.Errorf("Port is not a character device: %s", port.Path)
		}
	}

	for i := 1; i < len(ports); i++ {
		if ports[i-1].Path > ports[i].Path {
			t.Errorf("Ports are not sorted: %s > %s", ports[i-1].Path, ports[i].Path)
		}
	}
}

func TestIsCharacterDevice(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/dev/null", true},
		{"/dev/zero", true},
		{"/tmp", false},
		{"/nonexistent", false},
	}

	for _, test := range tests {
		result := isCharacterDevice(test.path)
		if result != test.expected {
			t.Errorf("isCharacterDevice(%s) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestGetPortDescription(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ttyUSB0", "USB Serial Port"},
		{"ttyACM0", "USB CDC/ACM Device"},
		{"ttyS0", "Standard Serial Port"},
		{"ttyAMA0", "ARM Serial Port"},
		{"ttymxc0", "i.MX Serial Port"},
		{"ttyO0", "OMAP Serial Port"},
		{"ttySAC0", "Samsung Serial Port"},
		{"ttyTHS0", "Tegra Serial Port"},
		{"unknown", "Serial Port"},
	}

	for _, test := range tests {
		result := getPortDescription(test.name)
		if result != test.expected {
			t.Errorf("getPortDescription(%s) = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestIsSerialName(t *testing.T) {
	tests := []struct {
		name        string
		shouldMatch bool
	}{
		{"ttyUSB0", true},
		{"ttyUSB1", true},
		{"ttyACM0", true},
		{"ttyS0", true},
		{"ttyAMA0", true},
		{"ttyTHS2", true},
		{"tty1", false},
		{"console", false},
		{"ptmx", false},
		{"ptyp0", false},
		{"random", false},
		{"ttyUSB", false},
	}

	for _, test := range tests {
		if got := isSerialName(test.name); got != test.shouldMatch {
			t.Errorf("isSerialName(%s) = %v, expected %v", test.name, got, test.shouldMatch)
		}
	}
}

// TestListPortsFiltering builds a fake /dev where serial names point at
// /dev/null, since character devices cannot be created without root
func TestListPortsFiltering(t *testing.T) {
	if !isCharacterDevice("/dev/null") {
		t.Skip("/dev/null is not a character device here")
	}

	dir := t.TempDir()
	for _, name := range []string{"ttyUSB1", "ttyS0", "ttyUSB0", "tty1", "console"} {
		if err := os.Symlink("/dev/null", filepath.Join(dir, name)); err != nil {
			t.Fatalf("symlink fixture: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "ttyACM0"), nil, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ports, err := listPorts(dir)
	if err != nil {
		t.Fatalf("listPorts failed: %v", err)
	}

	want := []string{"ttyS0", "ttyUSB0", "ttyUSB1"}
	if len(ports) != len(want) {
		t.Fatalf("listPorts returned %v, want names %v", ports, want)
	}
	for i, port := range ports {
		if port.Name != want[i] {
			t.Errorf("ports[%d].Name = %s, want %s", i, port.Name, want[i])
		}
		if port.Path != filepath.Join(dir, want[i]) {
			t.Errorf("ports[%d].Path = %s", i, port.Path)
		}
		if port.Description == "" {
			t.Errorf("ports[%d] has no description", i)
		}
	}
}

func TestListPortsMissingDir(t *testing.T) {
	if _, err := listPorts(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("listPorts on a missing directory returned no error")
	}
}
