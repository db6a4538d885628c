package ihex

// config holds the decode configuration.
type config struct {
	// noBlockMerging keeps each data record as a separate stored block
	noBlockMerging bool

	// logger is used for logging decode operations (optional)
	logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() config {
	return config{
		logger: noopLogger{},
	}
}

// Option is a functional option for configuring a decode operation.
type Option func(*config)

// WithNoBlockMerging disables coalescing of address-contiguous data records.
// By default adjacent writes are merged into a single stored block; with this
// option each data record remains its own block even when adjacent.
//
// Example:
//
//	img, err := ihex.Parse("firmware.hex", ihex.WithNoBlockMerging())
func WithNoBlockMerging() Option {
	return func(c *config) {
		c.noBlockMerging = true
	}
}

// WithLogger sets a logger for the decode operation.
//
// Example:
//
//	img, err := ihex.Parse("firmware.hex", ihex.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
