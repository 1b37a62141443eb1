package upsline

import (
	"strings"

	"golang.org/x/sys/unix"
)

// SignalMask holds the UPS status bits read from the modem control lines.
// Bit positions are the kernel's TIOCM_* values, so a mask can be compared
// directly against a raw TIOCMGET result.
type SignalMask int

// UPS status signals and the modem control line each one is wired to
// on a UPS-to-USB cable (e.g. part no. 00FV631)
const (
	UPSOn       SignalMask = unix.TIOCM_CTS // CTS - Clear To Send
	BatteryLow  SignalMask = unix.TIOCM_CAR // DCD - Data Carrier Detect
	UtilityFail SignalMask = unix.TIOCM_RI  // RI  - Ring Indicator
	Bypass      SignalMask = unix.TIOCM_DSR // DSR - Data Set Ready

	AllSignals = UPSOn | BatteryLow | UtilityFail | Bypass
)

// Signal describes one UPS status signal
type Signal struct {
	Bit     SignalMask
	Line    string // modem control line name, e.g. "CTS"
	Meaning string // UPS meaning, e.g. "UPS On"
}

// signals is the fixed reporting order: CTS, DCD, RI, DSR
var signals = [...]Signal{
	{Bit: UPSOn, Line: "CTS", Meaning: "UPS On"},
	{Bit: BatteryLow, Line: "DCD", Meaning: "UPS Battery Low"},
	{Bit: UtilityFail, Line: "RI", Meaning: "UPS Utility Fail"},
	{Bit: Bypass, Line: "DSR", Meaning: "UPS Bypass"},
}

// Signals returns the four UPS signals in reporting order
func Signals() []Signal {
	out := make([]Signal, len(signals))
	copy(out, signals[:])
	return out
}

// MaskSignals keeps only the four UPS status bits of a raw TIOCMGET value
func MaskSignals(raw int) SignalMask {
	return SignalMask(raw) & AllSignals
}

// Has reports whether every bit of s is set in m
func (m SignalMask) Has(s SignalMask) bool {
	return s != 0 && m&s == s
}

// String lists the set lines, e.g. "CTS|DSR", or "none"
func (m SignalMask) String() string {
	var set []string
	for _, s := range signals {
		if m.Has(s.Bit) {
			set = append(set, s.Line)
		}
	}
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, "|")
}
