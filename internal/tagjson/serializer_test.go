package tagjson

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomltag/tomltag/internal/model"
)

func encodeToString(t *testing.T, v model.Value) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(v))
	return buf.String()
}

func TestEncode_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    model.Value
		expected string
	}{
		{"bool true", model.Boolean(true), `{"type":"bool","value":"true"}`},
		{"bool false", model.Boolean(false), `{"type":"bool","value":"false"}`},
		{"integer", model.Integer(42), `{"type":"integer","value":"42"}`},
		{"negative integer", model.Integer(-17), `{"type":"integer","value":"-17"}`},
		{"min int64", model.Integer(math.MinInt64), `{"type":"integer","value":"-9223372036854775808"}`},
		{"float", model.Float(0.5), `{"type":"float","value":"0.5"}`},
		{"nan", model.Float(math.NaN()), `{"type":"float","value":"nan"}`},
		{"string", model.String("hi"), `{"type":"string","value":"hi"}`},
		{"string with quote", model.String(`a"b`), `{"type":"string","value":"a\"b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, encodeToString(t, tt.input))
		})
	}
}

func TestEncode_DateTimes(t *testing.T) {
	date := model.LocalDate{Year: 1979, Month: 5, Day: 27}
	clock := model.LocalTime{Hour: 7, Minute: 32}

	tests := []struct {
		name     string
		input    model.Value
		expected string
	}{
		{"local time", clock, `{"type":"time-local","value":"07:32:00"}`},
		{"local date", date, `{"type":"date-local","value":"1979-05-27"}`},
		{"local datetime", model.LocalDateTime{Date: date, Time: clock},
			`{"type":"datetime-local","value":"1979-05-27T07:32:00"}`},
		{"offset datetime", model.OffsetDateTime{Date: date, Time: clock, OffsetMinutes: 0},
			`{"type":"datetime","value":"1979-05-27T07:32:00+00:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, encodeToString(t, tt.input))
		})
	}
}

func TestEncode_Containers(t *testing.T) {
	t.Run("empty array", func(t *testing.T) {
		assert.Equal(t, "[]", encodeToString(t, model.Array{}))
	})

	t.Run("empty table", func(t *testing.T) {
		assert.Equal(t, "{}", encodeToString(t, model.NewTable()))
	})

	t.Run("array of scalars", func(t *testing.T) {
		arr := model.Array{model.Integer(1), model.Integer(2), model.Integer(3)}
		expected := `[{"type":"integer","value":"1"},{"type":"integer","value":"2"},{"type":"integer","value":"3"}]`
		assert.Equal(t, expected, encodeToString(t, arr))
	})

	t.Run("nested arrays", func(t *testing.T) {
		arr := model.Array{model.Array{model.Boolean(true)}, model.Array{}}
		expected := `[[{"type":"bool","value":"true"}],[]]`
		assert.Equal(t, expected, encodeToString(t, arr))
	})

	t.Run("table order is declaration order", func(t *testing.T) {
		table := model.NewTable()
		table.Set("b", model.Integer(1))
		table.Set("a", model.Integer(2))
		expected := `{"b":{"type":"integer","value":"1"},"a":{"type":"integer","value":"2"}}`
		assert.Equal(t, expected, encodeToString(t, table))
	})

	t.Run("table key is escaped", func(t *testing.T) {
		table := model.NewTable()
		table.Set(`we"ird`, model.Boolean(true))
		expected := `{"we\"ird":{"type":"bool","value":"true"}}`
		assert.Equal(t, expected, encodeToString(t, table))
	})

	t.Run("nested table", func(t *testing.T) {
		inner := model.NewTable()
		inner.Set("x", model.Float(1.5))
		outer := model.NewTable()
		outer.Set("inner", inner)
		outer.Set("list", model.Array{model.String("s")})
		expected := `{"inner":{"x":{"type":"float","value":"1.5"}},"list":[{"type":"string","value":"s"}]}`
		assert.Equal(t, expected, encodeToString(t, outer))
	})
}

// Every variant of the value tree must have a rendering; a variant
// falling through to the panic default is a bug this test catches.
func TestEncode_AllVariantsRender(t *testing.T) {
	variants := []model.Value{
		model.Boolean(true),
		model.Integer(1),
		model.Float(1.5),
		model.String("s"),
		model.LocalTime{Hour: 1},
		model.LocalDate{Year: 2020, Month: 1, Day: 1},
		model.LocalDateTime{},
		model.OffsetDateTime{},
		model.Array{},
		model.NewTable(),
	}

	for _, v := range variants {
		assert.NotPanics(t, func() {
			var buf bytes.Buffer
			require.NoError(t, NewEncoder(&buf).Encode(v))
			assert.NotEmpty(t, buf.String())
		}, "variant %T", v)
	}
}

// The output must itself be valid JSON.
func TestEncode_OutputIsValidJSON(t *testing.T) {
	inner := model.NewTable()
	inner.Set("when", model.OffsetDateTime{
		Date: model.LocalDate{Year: 2020, Month: 2, Day: 29},
		Time: model.LocalTime{Hour: 12, Microsecond: 250000},
	})
	root := model.NewTable()
	root.Set("b", model.String("é\U0001F600"))
	root.Set("a", model.Array{model.Integer(1), inner})

	out := encodeToString(t, root)
	assert.True(t, json.Valid([]byte(out)), "output %s", out)
}

func TestEncode_WriterErrorSurfaces(t *testing.T) {
	big := model.NewTable()
	for _, k := range []string{"a", "b", "c"} {
		big.Set(k, model.String(string(make([]byte, 4096))))
	}
	err := NewEncoder(failingWriter{}).Encode(big)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}
