package jsontree

import "fmt"

// Config holds parser limits and policies.
type Config struct {
	// MaxInputSize bounds the input length in bytes. Zero disables the check.
	MaxInputSize int64 `json:"max_input_size"`

	// MaxNestingDepth bounds how deeply arrays and objects may nest.
	MaxNestingDepth int `json:"max_nesting_depth"`

	// AllowTrailingContent accepts non-whitespace after the root value
	// instead of failing with StatusRootNotSingular.
	AllowTrailingContent bool `json:"allow_trailing_content"`

	// MaxRetainedScratch is the largest scratch arena, in elements, a Parser
	// keeps between calls.
	MaxRetainedScratch int `json:"max_retained_scratch"`

	// EnableMetrics turns on parse statistics collection.
	EnableMetrics bool `json:"enable_metrics"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxInputSize:         DefaultMaxInputSize,
		MaxNestingDepth:      DefaultMaxNestingDepth,
		AllowTrailingContent: false,
		MaxRetainedScratch:   DefaultMaxRetainedScratch,
		EnableMetrics:        true,
	}
}

// HighSecurityConfig returns a configuration with tighter limits for
// untrusted input.
func HighSecurityConfig() *Config {
	config := DefaultConfig()
	config.MaxInputSize = 1024 * 1024
	config.MaxNestingDepth = 32
	return config
}

// LargeDataConfig returns a configuration for large documents.
func LargeDataConfig() *Config {
	config := DefaultConfig()
	config.MaxInputSize = 512 * 1024 * 1024
	config.MaxNestingDepth = 2048
	config.MaxRetainedScratch = 1024 * 1024
	return config
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}
	clone := *c
	return &clone
}

// Validate checks the configuration and clamps out-of-range values.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("jsontree: config cannot be nil")
	}
	if c.MaxInputSize < 0 {
		return fmt.Errorf("jsontree: MaxInputSize cannot be negative: %d", c.MaxInputSize)
	}
	if c.MaxInputSize > MaxAllowedInputSize {
		c.MaxInputSize = MaxAllowedInputSize
	}

	if c.MaxNestingDepth <= 0 {
		c.MaxNestingDepth = DefaultMaxNestingDepth
	} else if c.MaxNestingDepth > MaxAllowedNestingDepth {
		c.MaxNestingDepth = MaxAllowedNestingDepth
	}

	if c.MaxRetainedScratch <= 0 {
		c.MaxRetainedScratch = DefaultMaxRetainedScratch
	}
	return nil
}
