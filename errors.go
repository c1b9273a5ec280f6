package humanms

import "errors"

// The full error surface of the package. Failures are wrapped with
// fmt.Errorf("%w: ...") so callers match with errors.Is while the
// message keeps the diagnostic detail (offending input, limit, token).
var (
	// ErrEmptyInput is returned by Parse for an empty string.
	ErrEmptyInput = errors.New("cannot parse an empty duration string")

	// ErrTooLong is returned by Parse when the input exceeds the
	// configured maximum length; the wrapped message reports the limit.
	ErrTooLong = errors.New("duration string exceeds maximum length")

	// ErrInvalidFormat is returned by Parse when the input does not
	// match the duration grammar; the wrapped message echoes the input.
	ErrInvalidFormat = errors.New("invalid duration format")

	// ErrInvalidNumber is returned by Parse when the numeric portion
	// does not convert to a finite float.
	ErrInvalidNumber = errors.New("duration value is not a finite number")

	// ErrUnknownUnit is returned by Parse for an unrecognized unit
	// token; the wrapped message names the token.
	ErrUnknownUnit = errors.New("unknown duration unit")

	// ErrNotFinite is returned by Format for NaN or infinite input.
	ErrNotFinite = errors.New("value must be a finite number")

	// ErrUnsupportedType is returned by Convert when the input is
	// neither a string nor a number.
	ErrUnsupportedType = errors.New("unsupported input type")
)
