package tagjson

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tomltag/tomltag/internal/model"
)

// formatFloat renders a float for the value field. Non-finite values
// use the literals nan, inf and -inf; finite values use the shortest
// representation that round-trips the 64-bit float.
func formatFloat(f model.Float) string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatLocalTime renders HH:MM:SS, appending a six-digit microsecond
// fraction only when it is nonzero.
func formatLocalTime(t model.LocalTime) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Microsecond != 0 {
		s += fmt.Sprintf(".%06d", t.Microsecond)
	}
	return s
}

func formatLocalDate(d model.LocalDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func formatLocalDateTime(dt model.LocalDateTime) string {
	return formatLocalDate(dt.Date) + "T" + formatLocalTime(dt.Time)
}

// formatOffsetDateTime renders the local datetime followed by the UTC
// offset as +HH:MM or -HH:MM. A zero offset renders as +00:00.
func formatOffsetDateTime(dt model.OffsetDateTime) string {
	sign := "+"
	minutes := dt.OffsetMinutes
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%sT%s%s%02d:%02d",
		formatLocalDate(dt.Date), formatLocalTime(dt.Time),
		sign, minutes/60, minutes%60)
}
