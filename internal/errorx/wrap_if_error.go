package errorx

import (
	"fmt"
)

// WrapIfError wraps the provided error with an additional message if it is not
// nil. This is intended to be used inside a defer to wrap the returned error
func WrapIfError(msg string, err *error) {
	if *err != nil {
		*err = fmt.Errorf("%s: %w", msg, *err)
	}
}

// WrapIfErrorf is WrapIfError with a formatted message. The arguments are
// evaluated when the defer statement runs, not when the function returns.
func WrapIfErrorf(err *error, format string, args ...any) {
	if *err != nil {
		*err = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), *err)
	}
}
