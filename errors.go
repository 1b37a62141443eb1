package upsline

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// FailureKind classifies why a single read of the UPS status lines failed
type FailureKind int

const (
	AccessDenied        FailureKind = iota + 1 // read-permission check failed
	MetadataUnavailable                        // lstat/stat failed
	NotACharacterDevice                        // entry exists but is not S_IFCHR
	OpenFailed                                 // open(2) failed
	ControlQueryFailed                         // TIOCMGET failed after a successful open
)

// Predefined error types for robust error handling
var (
	ErrAccessDenied        = errors.New("device is not readable")
	ErrMetadataUnavailable = errors.New("cannot stat device")
	ErrNotACharacterDevice = errors.New("not a character special device")
	ErrOpenFailed          = errors.New("cannot open device for reading")
	ErrControlQueryFailed  = errors.New("cannot read modem control lines (TIOCMGET)")
)

func (k FailureKind) String() string {
	switch k {
	case AccessDenied:
		return "AccessDenied"
	case MetadataUnavailable:
		return "MetadataUnavailable"
	case NotACharacterDevice:
		return "NotACharacterDevice"
	case OpenFailed:
		return "OpenFailed"
	case ControlQueryFailed:
		return "ControlQueryFailed"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// sentinel returns the package error matching the kind
func (k FailureKind) sentinel() error {
	switch k {
	case AccessDenied:
		return ErrAccessDenied
	case MetadataUnavailable:
		return ErrMetadataUnavailable
	case NotACharacterDevice:
		return ErrNotACharacterDevice
	case OpenFailed:
		return ErrOpenFailed
	case ControlQueryFailed:
		return ErrControlQueryFailed
	default:
		return nil
	}
}

// ReadError is returned by ReadSignals when any step of the read fails.
//
// Err holds the operating system error for every kind except
// NotACharacterDevice, where no system call failed and Err is nil.
type ReadError struct {
	Kind FailureKind
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Path, e.Kind.sentinel())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the OS error, so
// errors.Is(err, ErrOpenFailed) and errors.Is(err, unix.EACCES) both work.
func (e *ReadError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Errno returns the OS error code carried by the failure, if any
func (e *ReadError) Errno() (unix.Errno, bool) {
	var errno unix.Errno
	if e.Err != nil && errors.As(e.Err, &errno) {
		return errno, true
	}
	return 0, false
}

// KindOf reports the failure kind of an error returned by ReadSignals
func KindOf(err error) (FailureKind, bool) {
	var re *ReadError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}

func newReadError(kind FailureKind, path string, err error) *ReadError {
	return &ReadError{Kind: kind, Path: path, Err: err}
}
