package common

import "errors"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// Error kinds. Concrete errors wrap one of these so callers can classify
// failures with errors.Is.
var (
	// ErrInputIO means an input stream could not be opened or read.
	ErrInputIO = errors.New("input i/o error")
	// ErrInputFormat means the CSV framing of an input stream is broken.
	ErrInputFormat = errors.New("input format error")
	// ErrTypeConversion means a label is marked convertible but no conversion rule matches it.
	ErrTypeConversion = errors.New("type conversion failure")
	// ErrOutputIO means writing the JDL output or cleaning a target directory failed.
	ErrOutputIO = errors.New("output i/o error")
)
