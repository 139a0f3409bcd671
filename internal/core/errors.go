// Package core defines sentinel errors.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors, wrapped by the structured errors below.
var (
	// Header decoding errors
	ErrInputTooShort = errors.New("v6hdr: input too short")
	ErrInvalidHex    = errors.New("v6hdr: invalid hexadecimal")
	ErrTrailingInput = errors.New("v6hdr: unexpected trailing input")

	// Header encoding errors
	ErrFieldOverflow = errors.New("v6hdr: field value exceeds its bit width")

	// Output errors
	ErrUnsupportedFormat = errors.New("v6hdr: unsupported output format")

	// Configuration errors
	ErrConfigInvalid = errors.New("v6hdr: invalid configuration")
)

// ParseError reports malformed header text. Group is the index of the
// 8-character group being parsed, or -1 when the failure concerns the
// input length as a whole.
type ParseError struct {
	Offset int
	Group  int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Group < 0 {
		return fmt.Sprintf("decode header: %v (length %d, want %d)", e.Err, e.Offset, HeaderHexLen)
	}
	return fmt.Sprintf("decode header: group %d at offset %d (%q): %v", e.Group, e.Offset, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UsageError reports a wrong invocation. Its message is shown to the user as is.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }
