package types

import "errors"

// Pipeline-fatal error categories. Per-record extraction issues are logged
// and skipped instead; these terminate the run with a non-zero exit.
var (
	// ErrInputNotFound indicates a required input file (source dump or
	// question-bank JSON) does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrMalformedInput indicates an input file exists but cannot be decoded.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutputWriteFailed indicates an output path could not be written.
	ErrOutputWriteFailed = errors.New("output write failed")
)
