package humanms

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultMaxLength is the input length cap applied by Parse when
// Options.MaxLength is unset.
const DefaultMaxLength = 100

// parsePattern accepts an optional sign, an integer or decimal literal
// (a leading "." is fine), an optional single space, and an optional
// alphabetic unit token. Anchored at both ends: no trailing garbage.
var parsePattern = regexp.MustCompile(`(?i)^(-?(?:\d+)?\.?\d+) ?([a-z]+)?$`)

// Parse converts a human-readable duration string like "2 hours",
// "1.5h" or "-30s" into milliseconds. A bare number is taken as
// milliseconds. The result can be fractional; no rounding happens at
// parse time.
func Parse(s string, opts ...Options) (float64, error) {
	maxLength := DefaultMaxLength
	if len(opts) > 0 && opts[0].MaxLength > 0 {
		maxLength = opts[0].MaxLength
	}

	if s == "" {
		return 0, ErrEmptyInput
	}
	if len(s) > maxLength {
		return 0, fmt.Errorf("%w: limit is %d characters", ErrTooLong, maxLength)
	}

	match := parsePattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	magnitude, err := strconv.ParseFloat(match[1], 64)
	if err != nil || math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, match[1])
	}

	if match[2] == "" {
		return magnitude, nil
	}
	multiplier, ok := unitAliases[strings.ToLower(match[2])]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, match[2])
	}
	return magnitude * multiplier, nil
}
