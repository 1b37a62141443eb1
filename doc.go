// Package upsline reads the status of a UPS attached through a serial
// "UPS to USB" cable (e.g. part no. 00FV631), which reports UPS state on the
// RS-232 modem control lines instead of as data:
//
//	CTS - Clear To Send       - UPS On
//	DCD - Data Carrier Detect - UPS Battery Low
//	RI  - Ring Indicator      - UPS Utility Fail
//	DSR - Data Set Ready      - UPS Bypass
//
// # Basic Usage
//
// One call performs one point-in-time read. The device is opened read only,
// queried with TIOCMGET and closed again before ReadSignals returns:
//
//	mask, err := upsline.ReadSignals("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if mask.Has(upsline.UtilityFail) {
//	    fmt.Println("running on battery")
//	}
//
// Only the four UPS bits are ever set in the returned mask.
//
// # Configuration Options
//
//	r, err := upsline.NewReader(upsline.WithFollowSymlinks(true))
//	mask, err := r.ReadSignals("/dev/serial/by-id/usb-FTDI_UPS-if00-port0")
//
// By default the entry is inspected with lstat(2), so symbolic links are
// rejected as NotACharacterDevice.
//
// # Error Handling
//
// Failures are returned as *ReadError with a FailureKind. Every kind except
// NotACharacterDevice carries the OS error:
//
//	if errors.Is(err, upsline.ErrAccessDenied) {
//	    // not readable (or missing: ENOENT)
//	}
//	if kind, ok := upsline.KindOf(err); ok {
//	    fmt.Println(kind) // e.g. ControlQueryFailed
//	}
//
// # Platform Support
//
// Linux. Bit positions come from the kernel's TIOCM_* constants as exposed
// by golang.org/x/sys/unix.
package upsline
