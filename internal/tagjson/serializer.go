// Package tagjson serializes a TOML value tree as tagged JSON: every
// leaf value becomes a {"type":...,"value":...} object so that a
// consumer can tell apart values plain JSON would conflate, such as
// the integer 1 and the string "1".
package tagjson

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/tomltag/tomltag/internal/model"
)

// MalformedMode selects how bytes that do not form a complete UTF-8
// sequence are rendered inside string values.
type MalformedMode string

const (
	// MalformedPassthrough copies the offending byte into the output
	// unescaped.
	MalformedPassthrough MalformedMode = "passthrough"
	// MalformedReplace substitutes U+FFFD for the offending byte.
	MalformedReplace MalformedMode = "replace"
)

// Options control string rendering. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// EscapeUnicode renders every non-ASCII codepoint as a \uXXXX
	// escape, keeping the output pure ASCII. JSON permits either form.
	EscapeUnicode bool
	// MalformedUTF8 selects the fallback for truncated multi-byte
	// sequences.
	MalformedUTF8 MalformedMode
}

// DefaultOptions returns the wire-contract behavior: ASCII-clean output
// with truncated sequences passed through raw.
func DefaultOptions() Options {
	return Options{
		EscapeUnicode: true,
		MalformedUTF8: MalformedPassthrough,
	}
}

// Encoder writes the tagged-JSON form of a value tree to an output
// stream. Output is produced in a single depth-first pass; nothing
// larger than one escaped string is buffered beyond the write buffer.
type Encoder struct {
	w       *bufio.Writer
	opt     Options
	scratch []byte
}

// NewEncoder returns an encoder with default options.
func NewEncoder(w io.Writer) *Encoder {
	return NewEncoderOptions(w, DefaultOptions())
}

// NewEncoderOptions returns an encoder with explicit options.
func NewEncoderOptions(w io.Writer, opt Options) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), opt: opt}
}

// Encode writes the serialization of v. The visit itself cannot fail on
// a well-formed tree; the returned error is the underlying writer's,
// surfaced when the buffer is flushed.
func (e *Encoder) Encode(v model.Value) error {
	e.encodeValue(v)
	return e.w.Flush()
}

func (e *Encoder) encodeValue(v model.Value) {
	switch v := v.(type) {
	case model.Boolean:
		if v {
			e.writeTagged("bool", "true")
		} else {
			e.writeTagged("bool", "false")
		}
	case model.Integer:
		e.writeTagged("integer", strconv.FormatInt(int64(v), 10))
	case model.Float:
		e.writeTagged("float", formatFloat(v))
	case model.String:
		e.writeTagged("string", string(v))
	case model.LocalTime:
		e.writeTagged("time-local", formatLocalTime(v))
	case model.LocalDate:
		e.writeTagged("date-local", formatLocalDate(v))
	case model.LocalDateTime:
		e.writeTagged("datetime-local", formatLocalDateTime(v))
	case model.OffsetDateTime:
		e.writeTagged("datetime", formatOffsetDateTime(v))
	case model.Array:
		e.w.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				e.w.WriteByte(',')
			}
			e.encodeValue(elem)
		}
		e.w.WriteByte(']')
	case *model.Table:
		e.w.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				e.w.WriteByte(',')
			}
			e.writeQuoted(key)
			e.w.WriteByte(':')
			val, _ := v.Get(key)
			e.encodeValue(val)
		}
		e.w.WriteByte('}')
	default:
		panic(fmt.Sprintf("tagjson: unhandled value variant %T", v))
	}
}

// writeTagged emits one tagged leaf. The value string goes through the
// same escaping as string content.
func (e *Encoder) writeTagged(tag, value string) {
	e.w.WriteString(`{"type":"`)
	e.w.WriteString(tag)
	e.w.WriteString(`","value":`)
	e.writeQuoted(value)
	e.w.WriteByte('}')
}

func (e *Encoder) writeQuoted(s string) {
	e.scratch = appendQuoted(e.scratch[:0], s, e.opt)
	e.w.Write(e.scratch)
}
