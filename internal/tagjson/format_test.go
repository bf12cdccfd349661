package tagjson

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomltag/tomltag/internal/model"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"one", 1.0, "1"},
		{"half", 0.5, "0.5"},
		{"negative", -2.25, "-2.25"},
		{"pi", 3.141592653589793, "3.141592653589793"},
		{"negative zero", math.Copysign(0, -1), "-0"},
		{"nan", math.NaN(), "nan"},
		{"positive infinity", math.Inf(1), "inf"},
		{"negative infinity", math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFloat(model.Float(tt.input)))
		})
	}
}

func TestFormatFloat_RoundTrip(t *testing.T) {
	values := []float64{
		0, 1, -1, 0.1, 1.0 / 3.0,
		math.Pi, math.E,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		1e22, -6.626e-34,
	}

	for _, v := range values {
		rendered := formatFloat(model.Float(v))
		parsed, err := strconv.ParseFloat(rendered, 64)
		require.NoError(t, err, "value %v rendered as %q", v, rendered)
		assert.Equal(t, v, parsed, "value %v rendered as %q", v, rendered)
	}
}

func TestFormatLocalTime(t *testing.T) {
	tests := []struct {
		name     string
		input    model.LocalTime
		expected string
	}{
		{"midnight", model.LocalTime{}, "00:00:00"},
		{"plain", model.LocalTime{Hour: 7, Minute: 32, Second: 5}, "07:32:05"},
		{"half second", model.LocalTime{Microsecond: 500000}, "00:00:00.500000"},
		{"one microsecond", model.LocalTime{Hour: 23, Minute: 59, Second: 59, Microsecond: 1}, "23:59:59.000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatLocalTime(tt.input))
		})
	}
}

func TestFormatLocalDate(t *testing.T) {
	assert.Equal(t, "1979-05-27", formatLocalDate(model.LocalDate{Year: 1979, Month: 5, Day: 27}))
	assert.Equal(t, "0001-01-01", formatLocalDate(model.LocalDate{Year: 1, Month: 1, Day: 1}))
}

func TestFormatLocalDateTime(t *testing.T) {
	dt := model.LocalDateTime{
		Date: model.LocalDate{Year: 1979, Month: 5, Day: 27},
		Time: model.LocalTime{Hour: 7, Minute: 32},
	}
	assert.Equal(t, "1979-05-27T07:32:00", formatLocalDateTime(dt))
}

func TestFormatOffsetDateTime(t *testing.T) {
	date := model.LocalDate{Year: 1979, Month: 5, Day: 27}
	clock := model.LocalTime{Hour: 7, Minute: 32}

	tests := []struct {
		name     string
		offset   int
		expected string
	}{
		{"utc", 0, "1979-05-27T07:32:00+00:00"},
		{"positive", 90, "1979-05-27T07:32:00+01:30"},
		{"negative", -465, "1979-05-27T07:32:00-07:45"},
		{"whole hours", -420, "1979-05-27T07:32:00-07:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := model.OffsetDateTime{Date: date, Time: clock, OffsetMinutes: tt.offset}
			assert.Equal(t, tt.expected, formatOffsetDateTime(dt))
		})
	}
}
