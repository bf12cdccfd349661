package model

// Value is one node of a parsed TOML value tree. The set of variants is
// closed: Boolean, Integer, Float, String, LocalTime, LocalDate,
// LocalDateTime, OffsetDateTime, Array and *Table, and nothing else.
// Trees are built once by the decoder and are read-only afterwards.
type Value interface {
	isValue()
}

// Boolean is a TOML boolean.
type Boolean bool

// Integer is a TOML integer. TOML integers are signed 64-bit.
type Integer int64

// Float is a TOML float. NaN and both infinities are legal values.
type Float float64

// String is a TOML string, kept as its raw UTF-8 byte sequence.
type String string

// LocalTime is a wall-clock time without a date or offset. Sub-second
// precision is normalized to microseconds.
type LocalTime struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// LocalDate is a calendar date without a time or offset. Month is the
// calendar month, 1 through 12.
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

// LocalDateTime is a date and time without an offset.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

// OffsetDateTime is a date and time with a UTC offset in minutes.
// The offset is signed; zero means UTC.
type OffsetDateTime struct {
	Date          LocalDate
	Time          LocalTime
	OffsetMinutes int
}

// Array is an ordered sequence of values. Element order is significant.
type Array []Value

// Table is a mapping from string keys to values that preserves
// insertion order. Keys are unique within a table.
type Table struct {
	keys   []string
	values map[string]Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]Value)}
}

// Set inserts or replaces the value for key. A new key is appended to
// the iteration order; an existing key keeps its original position.
func (t *Table) Set(key string, v Value) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

// Get returns the value for key and whether the key is present.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the table's keys in insertion order. The returned slice
// is shared with the table and must not be modified.
func (t *Table) Keys() []string {
	return t.keys
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.keys)
}

func (Boolean) isValue()        {}
func (Integer) isValue()        {}
func (Float) isValue()          {}
func (String) isValue()         {}
func (LocalTime) isValue()      {}
func (LocalDate) isValue()      {}
func (LocalDateTime) isValue()  {}
func (OffsetDateTime) isValue() {}
func (Array) isValue()          {}
func (*Table) isValue()         {}
