package availability

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed time or date input. The engine never
// swallows a parse failure: a swallowed error that defaulted to
// "allowed" would let a double-booking through.
var ErrInvalidInput = errors.New("invalid input")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}
