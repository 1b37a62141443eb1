package cmd

import (
	"strings"
	"testing"

	upsline "github.com/allbin/go-upsline"
)

func TestListCommand(t *testing.T) {
	code, stdout, stderr := runWith(t, nil, "list")
	if code != ExitOK {
		t.Fatalf("exit code = %d, want %d (stderr %q)", code, ExitOK, stderr)
	}
	if stdout == "" {
		t.Error("list printed nothing")
	}
}

func TestListCommandRejectsArgs(t *testing.T) {
	code, _, _ := runWith(t, nil, "list", "extra")
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestFilterPorts(t *testing.T) {
	ports := []upsline.PortInfo{
		{Name: "ttyACM0", Path: "/dev/ttyACM0"},
		{Name: "ttyAMA0", Path: "/dev/ttyAMA0"},
		{Name: "ttyS0", Path: "/dev/ttyS0"},
		{Name: "ttySAC1", Path: "/dev/ttySAC1"},
		{Name: "ttyUSB0", Path: "/dev/ttyUSB0"},
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"ttyACM0", "ttyAMA0", "ttyS0", "ttySAC1", "ttyUSB0"}},
		{"all", []string{"ttyACM0", "ttyAMA0", "ttyS0", "ttySAC1", "ttyUSB0"}},
		{"usb", []string{"ttyACM0", "ttyUSB0"}},
		{"USB", []string{"ttyACM0", "ttyUSB0"}},
		{"standard", []string{"ttyS0"}},
		{"arm", []string{"ttyAMA0"}},
		{"bogus", nil},
	}

	for _, tt := range tests {
		got := filterPorts(ports, tt.filter)
		names := make([]string, len(got))
		for i, p := range got {
			names[i] = p.Name
		}
		if strings.Join(names, ",") != strings.Join(tt.want, ",") {
			t.Errorf("filterPorts(%q) = %v, want %v", tt.filter, names, tt.want)
		}
	}
}
