package upsline

import (
	"golang.org/x/sys/unix"
)

// openFlags opens the tty read only, without making it the controlling
// terminal and without waiting for carrier (DCD is a UPS status line here,
// so a blocking open would hang while the battery is fine).
const openFlags = unix.O_RDONLY | unix.O_NOCTTY | unix.O_NONBLOCK | unix.O_CLOEXEC

// sysCalls is the set of OS primitives a read needs
type sysCalls struct {
	access       func(path string, mode uint32) error
	stat         func(path string, st *unix.Stat_t) error
	lstat        func(path string, st *unix.Stat_t) error
	open         func(path string, mode int, perm uint32) (int, error)
	getModemBits func(fd int) (int, error)
	close        func(fd int) error
}

func hostSysCalls() sysCalls {
	return sysCalls{
		access:       unix.Access,
		stat:         unix.Stat,
		lstat:        unix.Lstat,
		open:         unix.Open,
		getModemBits: getModemStatus,
		close:        unix.Close,
	}
}

// getModemStatus retrieves modem control signals using unix package
func getModemStatus(fd int) (int, error) {
	return unix.IoctlGetInt(fd, unix.TIOCMGET)
}

// Reader reads the UPS status lines of a serial device. A Reader holds no
// state between reads and is safe for concurrent use.
type Reader struct {
	config Config
	sys    sysCalls
}

// NewReader creates a Reader with the given options
func NewReader(opts ...Option) (*Reader, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	return &Reader{config: config, sys: hostSysCalls()}, nil
}

// Config returns the reader configuration
func (r *Reader) Config() Config {
	return r.config
}

// ReadSignals reads the UPS status lines of path with the default configuration
func ReadSignals(path string) (SignalMask, error) {
	r := Reader{config: DefaultConfig(), sys: hostSysCalls()}
	return r.ReadSignals(path)
}

// ReadSignals performs one point-in-time read of the UPS status lines.
//
// The checks run in a fixed order and the first failure is returned as a
// *ReadError: readability (AccessDenied), entry metadata
// (MetadataUnavailable), entry type (NotACharacterDevice), open (OpenFailed),
// and TIOCMGET (ControlQueryFailed). A nonexistent path therefore fails
// with AccessDenied carrying ENOENT. The device is opened only after it is
// known to be a readable character device, and is closed before ReadSignals
// returns on every path after a successful open.
func (r *Reader) ReadSignals(path string) (SignalMask, error) {
	if err := r.sys.access(path, unix.R_OK); err != nil {
		return 0, newReadError(AccessDenied, path, err)
	}

	statFn := r.sys.lstat
	if r.config.FollowSymlinks {
		statFn = r.sys.stat
	}

	var st unix.Stat_t
	if err := statFn(path, &st); err != nil {
		return 0, newReadError(MetadataUnavailable, path, err)
	}
	if st.Mode&unix.S_IFMT != unix.S_IFCHR {
		return 0, newReadError(NotACharacterDevice, path, nil)
	}

	fd, err := r.sys.open(path, openFlags, 0)
	if err != nil {
		return 0, newReadError(OpenFailed, path, err)
	}
	defer r.sys.close(fd)

	raw, err := r.sys.getModemBits(fd)
	if err != nil {
		return 0, newReadError(ControlQueryFailed, path, err)
	}

	return MaskSignals(raw), nil
}
