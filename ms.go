// Package humanms converts between human-readable duration strings
// ("2 hours", "1.5h", "-30s") and millisecond counts, and back.
//
// Parse and Format are independent pure functions; Convert routes to
// one of them based on the argument type. Every call is deterministic,
// allocation-light and safe for concurrent use: the unit tables are
// read-only and each call only touches its own stack.
package humanms

import "fmt"

// Options configures a single call. The zero value gives the defaults:
// DefaultMaxLength for parsing, short output for formatting.
type Options struct {
	MaxLength int  // Parse: cap on input length; 0 means DefaultMaxLength
	Long      bool // Format: spell out the unit name ("1 hour" vs "1h")
}

// Convert is the combined entry point: a string is parsed into
// milliseconds (float64), a number of any built-in numeric type is
// formatted into a string. Anything else fails with ErrUnsupportedType.
func Convert(value any, opts ...Options) (any, error) {
	switch v := value.(type) {
	case string:
		ms, err := Parse(v, opts...)
		if err != nil {
			return nil, err
		}
		return ms, nil
	case float64:
		return formatAny(v, opts)
	case float32:
		return formatAny(float64(v), opts)
	case int:
		return formatAny(float64(v), opts)
	case int8:
		return formatAny(float64(v), opts)
	case int16:
		return formatAny(float64(v), opts)
	case int32:
		return formatAny(float64(v), opts)
	case int64:
		return formatAny(float64(v), opts)
	case uint:
		return formatAny(float64(v), opts)
	case uint8:
		return formatAny(float64(v), opts)
	case uint16:
		return formatAny(float64(v), opts)
	case uint32:
		return formatAny(float64(v), opts)
	case uint64:
		return formatAny(float64(v), opts)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func formatAny(ms float64, opts []Options) (any, error) {
	s, err := Format(ms, opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}
