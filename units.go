package humanms

// Millisecond multipliers for every unit the parser understands.
// A year is approximated as 365.25 days; calendar-accurate arithmetic
// is out of scope.
const (
	Millisecond float64 = 1
	Second              = 1000 * Millisecond
	Minute              = 60 * Second
	Hour                = 60 * Minute
	Day                 = 24 * Hour
	Week                = 7 * Day
	Year                = 365.25 * Day
)

// unitAliases maps every accepted spelling (lower-cased) to its
// millisecond multiplier. Each alias belongs to exactly one unit.
var unitAliases = map[string]float64{
	"ms":           Millisecond,
	"msec":         Millisecond,
	"msecs":        Millisecond,
	"millisecond":  Millisecond,
	"milliseconds": Millisecond,
	"s":            Second,
	"sec":          Second,
	"secs":         Second,
	"second":       Second,
	"seconds":      Second,
	"m":            Minute,
	"min":          Minute,
	"mins":         Minute,
	"minute":       Minute,
	"minutes":      Minute,
	"h":            Hour,
	"hr":           Hour,
	"hrs":          Hour,
	"hour":         Hour,
	"hours":        Hour,
	"d":            Day,
	"day":          Day,
	"days":         Day,
	"w":            Week,
	"week":         Week,
	"weeks":        Week,
	"y":            Year,
	"yr":           Year,
	"yrs":          Year,
	"year":         Year,
	"years":        Year,
}

// formatUnits lists the output units in descending order. Formatting
// never emits weeks or years even though parsing accepts them; the
// largest auto-selected unit is the day.
var formatUnits = []struct {
	multiplier float64
	suffix     string
	name       string
}{
	{Day, "d", "day"},
	{Hour, "h", "hour"},
	{Minute, "m", "minute"},
	{Second, "s", "second"},
}
