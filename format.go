package humanms

import (
	"fmt"
	"math"
)

// Format renders a millisecond count as a short string like "1h" or,
// with Options.Long, a spelled-out one like "1 hour". The largest unit
// whose multiplier the absolute value reaches is selected, scanning
// day, hour, minute, second; smaller values fall back to milliseconds.
// The sign is preserved: Format(-3600000) is "-1h".
func Format(ms float64, opts ...Options) (string, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return "", fmt.Errorf("%w: %v", ErrNotFinite, ms)
	}

	abs := math.Abs(ms)
	for _, u := range formatUnits {
		if abs >= u.multiplier {
			if o.Long {
				return longForm(ms, abs, u.multiplier, u.name), nil
			}
			return fmt.Sprintf("%d%s", round(ms/u.multiplier), u.suffix), nil
		}
	}
	if o.Long {
		return fmt.Sprintf("%d ms", round(ms)), nil
	}
	return fmt.Sprintf("%dms", round(ms)), nil
}

// longForm pluralizes on the pre-rounding ratio: 1.4999 hours is still
// "1 hour", 1.5 hours rounds up to "2 hours".
func longForm(ms, abs, multiplier float64, name string) string {
	if abs >= 1.5*multiplier {
		name += "s"
	}
	return fmt.Sprintf("%d %s", round(ms/multiplier), name)
}

// round is half-away-from-zero, matching math.Round.
func round(v float64) int64 {
	return int64(math.Round(v))
}
