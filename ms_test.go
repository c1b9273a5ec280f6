package humanms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrnz/humanms"
)

func TestConvertDispatch(t *testing.T) {
	t.Run("string routes to parse", func(t *testing.T) {
		got, err := humanms.Convert("1h")
		require.NoError(t, err)
		assert.Equal(t, float64(3600000), got)
	})

	t.Run("number routes to format", func(t *testing.T) {
		got, err := humanms.Convert(3600000)
		require.NoError(t, err)
		assert.Equal(t, "1h", got)
	})

	t.Run("options reach the parser", func(t *testing.T) {
		_, err := humanms.Convert("12345", humanms.Options{MaxLength: 3})
		assert.ErrorIs(t, err, humanms.ErrTooLong)
	})

	t.Run("options reach the formatter", func(t *testing.T) {
		got, err := humanms.Convert(60000, humanms.Options{Long: true})
		require.NoError(t, err)
		assert.Equal(t, "1 minute", got)
	})

	t.Run("parse errors propagate", func(t *testing.T) {
		_, err := humanms.Convert("")
		assert.ErrorIs(t, err, humanms.ErrEmptyInput)
	})
}

func TestConvertNumericTypes(t *testing.T) {
	inputs := []any{
		int(60000),
		int8(100),
		int16(30000),
		int32(60000),
		int64(60000),
		uint(60000),
		uint8(200),
		uint16(60000),
		uint32(60000),
		uint64(60000),
		float32(60000),
		float64(60000),
	}

	for _, input := range inputs {
		got, err := humanms.Convert(input)
		require.NoError(t, err, "input %T", input)
		assert.IsType(t, "", got, "input %T", input)
	}
}

func TestConvertUnsupportedType(t *testing.T) {
	for _, input := range []any{nil, true, []byte("1h"), struct{}{}} {
		_, err := humanms.Convert(input)
		require.ErrorIs(t, err, humanms.ErrUnsupportedType)
	}

	_, err := humanms.Convert(true)
	assert.Contains(t, err.Error(), "bool")
}

func TestRoundTrip(t *testing.T) {
	// Format may round to the selected unit, so the round trip is only
	// exact up to half of that unit. Years and weeks format as days.
	units := map[string]float64{
		"millisecond": humanms.Millisecond,
		"second":      humanms.Second,
		"minute":      humanms.Minute,
		"hour":        humanms.Hour,
		"day":         humanms.Day,
		"week":        humanms.Week,
		"year":        humanms.Year,
	}

	for name, multiplier := range units {
		t.Run(name, func(t *testing.T) {
			formatted, err := humanms.Format(multiplier)
			require.NoError(t, err)
			back, err := humanms.Parse(formatted)
			require.NoError(t, err)
			assert.InDelta(t, multiplier, back, humanms.Day/2)
		})
	}
}

func TestSignPreservationRoundTrip(t *testing.T) {
	ms, err := humanms.Parse("-1h")
	require.NoError(t, err)
	assert.Equal(t, float64(-3600000), ms)

	s, err := humanms.Format(ms)
	require.NoError(t, err)
	assert.Equal(t, "-1h", s)
}
