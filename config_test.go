package smpp

import (
	"testing"

	"github.com/rcrowley/go-metrics"
	assert "github.com/stretchr/testify/require"
)

// NewTestConfig returns a config meant to be used by tests. Every call gets its own
// metric registry so meter counts do not leak between tests.
func NewTestConfig() *Config {
	config := NewConfig()
	config.MetricRegistry = metrics.NewRegistry()
	return config
}

func TestDefaultConfigValidates(t *testing.T) {
	config := NewTestConfig()
	if err := config.Validate(); err != nil {
		t.Error(err)
	}
	if config.MetricRegistry == nil {
		t.Error("Expected non nil metrics.MetricRegistry, got nil")
	}
}

func TestConfigValidates(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*Config)
		err  string
	}{
		{
			"MaxPDUSize",
			func(cfg *Config) {
				cfg.MaxPDUSize = HeaderLength - 1
			},
			"MaxPDUSize must be >= 16",
		},
		{
			"MetricRegistry",
			func(cfg *Config) {
				cfg.MetricRegistry = nil
			},
			"MetricRegistry must not be nil",
		},
	}

	for i, test := range tests {
		c := NewTestConfig()
		test.cfg(c)
		err := c.Validate()
		var target ConfigurationError
		assert.ErrorAs(t, err, &target, "Test %d (%s)", i, test.name)
		assert.ErrorContains(t, err, test.err)
	}
}

func TestConfigWarnings(t *testing.T) {
	oldLogger := Logger
	defer func() { Logger = oldLogger }()
	recorder := &recordingLogger{}
	Logger = recorder

	config := NewTestConfig()
	config.AllowTrailingBytes = true
	config.MaxPDUSize = 1 << 25
	assert.NoError(t, config.Validate())
	assert.Len(t, recorder.lines, 2)
}
