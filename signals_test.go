package upsline

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestSignalBits(t *testing.T) {
	tests := []struct {
		name     string
		signal   SignalMask
		expected int
	}{
		{"UPS On is CTS", UPSOn, unix.TIOCM_CTS},
		{"Battery Low is DCD", BatteryLow, unix.TIOCM_CAR},
		{"Utility Fail is RI", UtilityFail, unix.TIOCM_RI},
		{"Bypass is DSR", Bypass, unix.TIOCM_DSR},
		{"All signals", AllSignals, unix.TIOCM_CTS | unix.TIOCM_CAR | unix.TIOCM_RI | unix.TIOCM_DSR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.signal) != tt.expected {
				t.Errorf("%s = %#x, want %#x", tt.name, int(tt.signal), tt.expected)
			}
		})
	}
}

func TestMaskSignalsIdempotent(t *testing.T) {
	raws := []int{
		0,
		-1,
		unix.TIOCM_CTS,
		unix.TIOCM_CTS | unix.TIOCM_RTS | unix.TIOCM_DTR,
		unix.TIOCM_LE | unix.TIOCM_ST | unix.TIOCM_SR,
		unix.TIOCM_CAR | unix.TIOCM_RI | unix.TIOCM_DSR | 0x7fff0000,
		0x5a5a,
	}

	for _, raw := range raws {
		once := MaskSignals(raw)
		twice := MaskSignals(int(once))
		if once != twice {
			t.Errorf("MaskSignals(MaskSignals(%#x)) = %#x, want %#x", raw, int(twice), int(once))
		}
		if once&^AllSignals != 0 {
			t.Errorf("MaskSignals(%#x) = %#x keeps bits outside the UPS signals", raw, int(once))
		}
	}
}

func TestSignalMaskHas(t *testing.T) {
	m := UPSOn | Bypass

	if !m.Has(UPSOn) || !m.Has(Bypass) || !m.Has(UPSOn|Bypass) {
		t.Errorf("%v.Has() missed a set signal", m)
	}
	if m.Has(BatteryLow) || m.Has(UtilityFail) || m.Has(UPSOn|UtilityFail) {
		t.Errorf("%v.Has() reported a clear signal", m)
	}
	if m.Has(0) {
		t.Errorf("%v.Has(0) = true", m)
	}
}

func TestSignalMaskString(t *testing.T) {
	tests := []struct {
		mask     SignalMask
		expected string
	}{
		{0, "none"},
		{UPSOn, "CTS"},
		{UPSOn | Bypass, "CTS|DSR"},
		{AllSignals, "CTS|DCD|RI|DSR"},
	}

	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.expected {
			t.Errorf("SignalMask(%#x).String() = %q, want %q", int(tt.mask), got, tt.expected)
		}
	}
}

func TestSignalsOrder(t *testing.T) {
	got := Signals()
	want := []string{"CTS", "DCD", "RI", "DSR"}
	if len(got) != len(want) {
		t.Fatalf("Signals() returned %d signals, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Line != want[i] {
			t.Errorf("Signals()[%d].Line = %s, want %s", i, s.Line, want[i])
		}
		if s.Meaning == "" {
			t.Errorf("Signals()[%d] has no meaning", i)
		}
	}

	// callers cannot alter the package table
	got[0].Line = "XXX"
	if Signals()[0].Line != "CTS" {
		t.Error("Signals() exposes the package table")
	}
}
