// Package report renders the result of a UPS signal read for the console
// and for monitoring scripts.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	upsline "github.com/allbin/go-upsline"
	"github.com/allbin/go-upsline/internal/report/styles"
)

// Format selects how a read is rendered
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the accepted output formats
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts a format name case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, formatNames())
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Options controls rendering
type Options struct {
	Format Format
	Color  bool // style SET/CLEAR for text and table output
}

func (o Options) theme(w io.Writer) styles.Theme {
	if o.Color {
		return styles.New(w)
	}
	return styles.Plain()
}

// SignalState is one line of a report
type SignalState struct {
	Line    string `json:"line" yaml:"line"`
	Meaning string `json:"meaning" yaml:"meaning"`
	Set     bool   `json:"set" yaml:"set"`
}

// Snapshot is the structured form of a successful read
type Snapshot struct {
	Device  string        `json:"device" yaml:"device"`
	Mask    int           `json:"mask" yaml:"mask"`
	Signals []SignalState `json:"signals" yaml:"signals"`
}

// NewSnapshot expands mask into per-signal states in reporting order
func NewSnapshot(device string, mask upsline.SignalMask) Snapshot {
	snap := Snapshot{Device: device, Mask: int(mask)}
	for _, s := range upsline.Signals() {
		snap.Signals = append(snap.Signals, SignalState{
			Line:    s.Line,
			Meaning: s.Meaning,
			Set:     mask.Has(s.Bit),
		})
	}
	return snap
}

// Write renders a successful read of device
func Write(w io.Writer, device string, mask upsline.SignalMask, opts Options) error {
	snap := NewSnapshot(device, mask)
	switch opts.Format {
	case FormatText, "":
		return writeText(w, snap, opts.theme(w))
	case FormatTable:
		return writeTable(w, snap, opts.theme(w))
	case FormatJSON:
		return writeJSON(w, snap)
	case FormatYAML:
		return writeYAML(w, snap)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}
}

// Failure is the structured form of a failed read
type Failure struct {
	Device  string `json:"device" yaml:"device"`
	Kind    string `json:"kind" yaml:"kind"`
	Errno   int    `json:"errno,omitempty" yaml:"errno,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// NewFailure describes err for device. Errors that are not read errors
// get an empty kind.
func NewFailure(device string, err error) Failure {
	f := Failure{Device: device, Message: err.Error()}
	var re *upsline.ReadError
	if errors.As(err, &re) {
		f.Kind = re.Kind.String()
		if errno, ok := re.Errno(); ok {
			f.Errno = int(errno)
		}
	}
	return f
}

// WriteFailure renders a failed read of device. Text and table output
// produce the console diagnostics; json and yaml produce a Failure document.
func WriteFailure(w io.Writer, device string, err error, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, NewFailure(device, err))
	case FormatYAML:
		return writeYAML(w, NewFailure(device, err))
	default:
		return writeFailureText(w, device, err, opts.theme(w))
	}
}
