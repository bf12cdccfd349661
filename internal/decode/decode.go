// Package decode is the boundary to the external TOML parser. It hands
// the document text to github.com/BurntSushi/toml and rebuilds the
// result as an ordered value tree; it performs no parsing of its own.
package decode

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tomltag/tomltag/internal/errors"
	"github.com/tomltag/tomltag/internal/model"
)

// Reader parses a TOML document from r into a value tree.
func Reader(r io.Reader) (*model.Table, error) {
	var raw any
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, errors.NewSyntaxError(err.Error(), err)
	}
	root, ok := raw.(map[string]any)
	if !ok {
		// The parser always produces a table at the root.
		return nil, errors.NewSyntaxError(fmt.Sprintf("document root is %T, not a table", raw), nil)
	}
	return buildTable(root, buildOrder(md.Keys())), nil
}

// String parses a TOML document held in a string.
func String(doc string) (*model.Table, error) {
	return Reader(strings.NewReader(doc))
}

// File parses a TOML document from a file path.
func File(path string) (*model.Table, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", path),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	return Reader(file)
}

// buildTable rebuilds one table level, ordering the map's keys by their
// position in the document.
func buildTable(m map[string]any, order *keyOrder) *model.Table {
	table := model.NewTable()
	for _, key := range order.sortedKeys(m) {
		table.Set(key, buildValue(m[key], order.child(key)))
	}
	return table
}

func buildValue(v any, order *keyOrder) model.Value {
	switch v := v.(type) {
	case map[string]any:
		return buildTable(v, order)
	case []map[string]any:
		// Arrays of tables decode to this shape. All elements share
		// the array's key order node.
		arr := make(model.Array, len(v))
		for i, elem := range v {
			arr[i] = buildTable(elem, order)
		}
		return arr
	case []any:
		arr := make(model.Array, len(v))
		for i, elem := range v {
			arr[i] = buildValue(elem, order)
		}
		return arr
	case bool:
		return model.Boolean(v)
	case int64:
		return model.Integer(v)
	case float64:
		return model.Float(v)
	case string:
		return model.String(v)
	case time.Time:
		return buildDateTime(v)
	default:
		panic(fmt.Sprintf("decode: unsupported parser value type %T", v))
	}
}

// buildDateTime maps a parser time value onto the four date/time
// variants. The parser marks the local variants with named zones;
// anything else carries a real UTC offset. Nanoseconds truncate to
// microseconds.
func buildDateTime(t time.Time) model.Value {
	date := model.LocalDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
	clock := model.LocalTime{
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Microsecond: t.Nanosecond() / 1000,
	}
	switch t.Location().String() {
	case "date-local":
		return date
	case "time-local":
		return clock
	case "datetime-local":
		return model.LocalDateTime{Date: date, Time: clock}
	}
	_, offsetSeconds := t.Zone()
	return model.OffsetDateTime{Date: date, Time: clock, OffsetMinutes: offsetSeconds / 60}
}
