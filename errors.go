package envjson

import (
	"errors"
	"fmt"
)

// Configuration errors returned by New.
var (
	// ErrEmptySeparator is returned when WithSeparator is given an empty string.
	ErrEmptySeparator = errors.New("envjson: separator must not be empty")

	// ErrInvalidDocument is returned when WithDocument is given a value that
	// is not a JSON-style object.
	ErrInvalidDocument = errors.New("envjson: base document must be an object")
)

// PatternError reports an include or exclude pattern that failed to compile.
type PatternError struct {
	Pattern string // Pattern as given to WithInclude or WithExclude
	Err     error  // Underlying regexp compilation error
}

// Error formats the failing pattern together with the compilation error.
func (e *PatternError) Error() string {
	return fmt.Sprintf("envjson: invalid filter pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the regexp compilation error.
func (e *PatternError) Unwrap() error {
	return e.Err
}
