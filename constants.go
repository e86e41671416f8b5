package jsontree

import "time"

const (
	// Limits
	DefaultMaxInputSize    = 10 * 1024 * 1024
	DefaultMaxNestingDepth = 512
	MaxAllowedInputSize    = 1024 * 1024 * 1024
	MaxAllowedNestingDepth = 10000

	// Scratch arenas larger than this are released after each parse.
	DefaultMaxRetainedScratch = 64 * 1024

	// Logging
	SlowParseThreshold = 100 * time.Millisecond
	maxLoggedErrorLen  = 200
)
