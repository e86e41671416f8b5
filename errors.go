package jsontree

import (
	"errors"
	"fmt"
)

// Status is the outcome of a parse. Every non-OK status has a sentinel error.
type Status int

const (
	StatusOK Status = iota
	StatusExpectValue
	StatusInvalidValue
	StatusRootNotSingular
	StatusNumberTooBig
	StatusMissingQuotationMark
	StatusInvalidStringEscape
	StatusInvalidStringChar
	StatusInvalidUnicodeHex
	StatusInvalidUnicodeSurrogate
	StatusMissingCommaOrSquareBracket
	StatusMissingKey
	StatusMissingColon
	StatusMissingCommaOrCurlyBracket
	StatusDepthLimit
	StatusSizeLimit
)

var statusNames = [...]string{
	StatusOK:                          "ok",
	StatusExpectValue:                 "expect_value",
	StatusInvalidValue:                "invalid_value",
	StatusRootNotSingular:             "root_not_singular",
	StatusNumberTooBig:                "number_too_big",
	StatusMissingQuotationMark:        "missing_quotation_mark",
	StatusInvalidStringEscape:         "invalid_string_escape",
	StatusInvalidStringChar:           "invalid_string_char",
	StatusInvalidUnicodeHex:           "invalid_unicode_hex",
	StatusInvalidUnicodeSurrogate:     "invalid_unicode_surrogate",
	StatusMissingCommaOrSquareBracket: "missing_comma_or_square_bracket",
	StatusMissingKey:                  "missing_key",
	StatusMissingColon:                "missing_colon",
	StatusMissingCommaOrCurlyBracket:  "missing_comma_or_curly_bracket",
	StatusDepthLimit:                  "depth_limit",
	StatusSizeLimit:                   "size_limit",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Parse errors, one per non-OK status.
var (
	ErrExpectValue                 = errors.New("expect value")
	ErrInvalidValue                = errors.New("invalid value")
	ErrRootNotSingular             = errors.New("root not singular")
	ErrNumberTooBig                = errors.New("number too big")
	ErrMissingQuotationMark        = errors.New("missing quotation mark")
	ErrInvalidStringEscape         = errors.New("invalid string escape")
	ErrInvalidStringChar           = errors.New("invalid string char")
	ErrInvalidUnicodeHex           = errors.New("invalid unicode hex")
	ErrInvalidUnicodeSurrogate     = errors.New("invalid unicode surrogate")
	ErrMissingCommaOrSquareBracket = errors.New("missing comma or square bracket")
	ErrMissingKey                  = errors.New("missing key")
	ErrMissingColon                = errors.New("missing colon")
	ErrMissingCommaOrCurlyBracket  = errors.New("missing comma or curly bracket")
	ErrDepthLimit                  = errors.New("depth limit exceeded")
	ErrSizeLimit                   = errors.New("size limit exceeded")
)

// Encoding errors
var (
	ErrUnsupportedNumber = errors.New("number cannot be represented in JSON")
)

var statusErrors = [...]error{
	StatusOK:                          nil,
	StatusExpectValue:                 ErrExpectValue,
	StatusInvalidValue:                ErrInvalidValue,
	StatusRootNotSingular:             ErrRootNotSingular,
	StatusNumberTooBig:                ErrNumberTooBig,
	StatusMissingQuotationMark:        ErrMissingQuotationMark,
	StatusInvalidStringEscape:         ErrInvalidStringEscape,
	StatusInvalidStringChar:           ErrInvalidStringChar,
	StatusInvalidUnicodeHex:           ErrInvalidUnicodeHex,
	StatusInvalidUnicodeSurrogate:     ErrInvalidUnicodeSurrogate,
	StatusMissingCommaOrSquareBracket: ErrMissingCommaOrSquareBracket,
	StatusMissingKey:                  ErrMissingKey,
	StatusMissingColon:                ErrMissingColon,
	StatusMissingCommaOrCurlyBracket:  ErrMissingCommaOrCurlyBracket,
	StatusDepthLimit:                  ErrDepthLimit,
	StatusSizeLimit:                   ErrSizeLimit,
}

// Err returns the sentinel error for s, or nil for StatusOK.
func (s Status) Err() error {
	if s >= 0 && int(s) < len(statusErrors) {
		return statusErrors[s]
	}
	return nil
}

// ParseError describes where and why a parse failed.
type ParseError struct {
	Op      string `json:"op"`      // Operation that failed
	Offset  int    `json:"offset"`  // Byte offset into the input
	Status  Status `json:"status"`  // Machine-readable outcome
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Sentinel for Status
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("JSON %s failed at offset %d: %s: %s", e.Op, e.Offset, e.Err, e.Message)
	}
	return fmt.Sprintf("JSON %s failed at offset %d: %s", e.Op, e.Offset, e.Err)
}

// Unwrap returns the underlying error for error chain support
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *ParseError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*ParseError); ok {
		return e.Status == targetErr.Status
	}
	return errors.Is(e.Err, target)
}

func newParseError(status Status, offset int, message string) *ParseError {
	return &ParseError{
		Op:      "parse",
		Offset:  offset,
		Status:  status,
		Message: message,
		Err:     status.Err(),
	}
}

// StatusOf maps an error returned by this package back to its Status.
// A nil error is StatusOK; errors from elsewhere map to StatusInvalidValue.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Status
	}
	for s, sentinel := range statusErrors {
		if sentinel != nil && errors.Is(err, sentinel) {
			return Status(s)
		}
	}
	return StatusInvalidValue
}

// ContractError is the panic value raised when a typed accessor is used
// against a Value holding a different type, or with an index out of range.
type ContractError struct {
	Op       string
	Expected Type
	Actual   Type
	Index    int
	Size     int
}

func (e *ContractError) Error() string {
	if e.Size >= 0 {
		return fmt.Sprintf("jsontree: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Size)
	}
	return fmt.Sprintf("jsontree: %s on %s value, want %s", e.Op, e.Actual, e.Expected)
}

func typeViolation(op string, want, got Type) {
	panic(&ContractError{Op: op, Expected: want, Actual: got, Size: -1})
}

func indexViolation(op string, t Type, index, size int) {
	panic(&ContractError{Op: op, Expected: t, Actual: t, Index: index, Size: size})
}
