package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	upsline "github.com/allbin/go-upsline"
	"github.com/allbin/go-upsline/internal/report/styles"
)

// writeText prints the mask and one SET/CLEAR line per signal, e.g.
//
//	myUpsSignals = 32
//	CTS (UPS On) is SET.
func writeText(w io.Writer, snap Snapshot, theme styles.Theme) error {
	var b strings.Builder
	fmt.Fprintf(&b, "myUpsSignals = %d\n", snap.Mask)
	for _, s := range snap.Signals {
		fmt.Fprintf(&b, "%s (%s) is %s.\n", s.Line, s.Meaning, theme.State(s.Set))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// failureLine is the diagnostic printed for each kind before the errno line
func failureLine(kind upsline.FailureKind, device string) string {
	switch kind {
	case upsline.AccessDenied:
		return fmt.Sprintf("The device does not have read access, %s", device)
	case upsline.MetadataUnavailable:
		return fmt.Sprintf("Could not get the lstat (for file type and mode) of the device %s", device)
	case upsline.NotACharacterDevice:
		return fmt.Sprintf("This is not a character special device %s", device)
	case upsline.OpenFailed:
		return fmt.Sprintf("Cannot open device %s for reading.", device)
	case upsline.ControlQueryFailed:
		return fmt.Sprintf("Cannot ioctl (with TIOCMGET) device %s", device)
	default:
		return ""
	}
}

func writeFailureText(w io.Writer, device string, err error, theme styles.Theme) error {
	var b strings.Builder

	var re *upsline.ReadError
	if errors.As(err, &re) {
		if line := failureLine(re.Kind, device); line != "" {
			b.WriteString(theme.Error.Render(line))
			b.WriteByte('\n')
		}
		if errno, ok := re.Errno(); ok {
			fmt.Fprintf(&b, "%d errno ERROR: %s\n", int(errno), errno.Error())
		}
	} else {
		fmt.Fprintf(&b, "Error: %v\n", err)
	}
	fmt.Fprintf(&b, "There error is with device %s\n", device)

	_, werr := io.WriteString(w, b.String())
	return werr
}
