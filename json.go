package jsontree

import (
	"sync"
	"sync/atomic"
)

var (
	defaultParser   atomic.Pointer[Parser]
	defaultParserMu sync.Mutex
)

// getDefaultParser returns the package-level parser, creating it on first use.
func getDefaultParser() *Parser {
	if p := defaultParser.Load(); p != nil {
		return p
	}

	defaultParserMu.Lock()
	defer defaultParserMu.Unlock()

	if p := defaultParser.Load(); p != nil {
		return p
	}
	p := NewParser()
	defaultParser.Store(p)
	return p
}

// SetGlobalParser replaces the parser used by the package-level functions.
// A nil parser restores the default on next use.
func SetGlobalParser(parser *Parser) {
	defaultParserMu.Lock()
	defer defaultParserMu.Unlock()
	defaultParser.Store(parser)
}

// Parse parses text into v using the package-level parser.
//
// v is freed before parsing. On success v holds the parsed tree and the caller
// owns it; on failure v is null and the error is a *ParseError whose Status
// tells what went wrong.
func Parse(v *Value, text string) error {
	return getDefaultParser().Parse(v, text)
}

// ParseBytes parses b into v using the package-level parser.
func ParseBytes(v *Value, b []byte) error {
	return getDefaultParser().ParseBytes(v, b)
}

// Valid reports whether text is a single well-formed JSON value.
func Valid(text string) bool {
	return getDefaultParser().Valid(text)
}
