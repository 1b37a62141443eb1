package upsline

// Config holds the configuration for a Reader
type Config struct {
	// FollowSymlinks inspects the entry with stat(2) instead of lstat(2),
	// so a /dev/serial/by-id/... link resolves to its tty. The default
	// (false) rejects links as NotACharacterDevice.
	FollowSymlinks bool
}

// Option is a functional option for configuring a Reader
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		FollowSymlinks: false,
	}
}

// WithFollowSymlinks selects stat(2) (true) or lstat(2) (false) for the
// device type check
func WithFollowSymlinks(follow bool) Option {
	return func(c *Config) error {
		c.FollowSymlinks = follow
		return nil
	}
}
