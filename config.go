package smpp

import (
	"github.com/rcrowley/go-metrics"
)

// Config is used to pass multiple configuration options to the Decode helpers.
type Config struct {
	// MaxPDUSize is the largest PDU, in bytes, that Decode will accept (default 64 KiB).
	// It must be able to hold at least a header.
	MaxPDUSize int

	// AllowTrailingBytes lets Decode succeed when the PDU type stops reading before the
	// end of the buffer. Leftover bytes are a decoding error by default.
	AllowTrailingBytes bool

	// The registry to define metrics into.
	// Defaults to a local registry.
	// If you want to disable metrics gathering, set "metrics.UseNilMetrics" to "true"
	// prior to decoding.
	MetricRegistry metrics.Registry
}

// NewConfig returns a new configuration instance with sane defaults.
func NewConfig() *Config {
	c := &Config{}

	c.MaxPDUSize = 64 * 1024
	c.MetricRegistry = metrics.NewRegistry()

	return c
}

// Validate checks a Config instance. It will return a
// ConfigurationError if the specified values don't make sense.
func (c *Config) Validate() error {
	// some configuration values should be warned on but not fail completely, do those first
	if c.AllowTrailingBytes {
		Logger.Println("AllowTrailingBytes is enabled; PDUs with unread trailing bytes will be accepted.")
	}
	if c.MaxPDUSize > 1<<24 {
		Logger.Println("MaxPDUSize is larger than 16 MiB; no SMSC sends PDUs that large.")
	}

	switch {
	case c.MaxPDUSize < HeaderLength:
		return ConfigurationError("MaxPDUSize must be >= 16")
	case c.MetricRegistry == nil:
		return ConfigurationError("MetricRegistry must not be nil")
	}

	return nil
}
