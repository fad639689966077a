package sql

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// DataType represents the logical type of a value in a column.
type DataType int

const (
	TypeNull DataType = iota
	TypeNumber
	TypeString
)

func (t DataType) String() string {
	switch t {
	case TypeNumber:
		return "NUMBER"
	case TypeString:
		return "STRING"
	default:
		return "NULL"
	}
}

// Value represents a single cell in a table (one column in one row).
// Only the field matching Type should be read; other fields remain at their
// zero values.
type Value struct {
	Type DataType

	F64 float64 // for TypeNumber
	S   string  // for TypeString
}

// Null returns the NULL value. A column missing from a row reads as NULL.
func Null() Value { return Value{Type: TypeNull} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Type: TypeNumber, F64: f} }

// String returns a string value.
func String(s string) Value { return Value{Type: TypeString, S: s} }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.Type == TypeNull }

// String renders v for display: numbers without a trailing ".0", strings
// verbatim and NULL as "NULL".
func (v Value) String() string {
	switch v.Type {
	case TypeNumber:
		return formatNumber(v.F64)
	case TypeString:
		return v.S
	default:
		return "NULL"
	}
}

// MarshalJSON encodes v as a JSON number, string or null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case TypeNumber:
		if math.IsInf(v.F64, 0) || math.IsNaN(v.F64) {
			return json.Marshal(formatNumber(v.F64))
		}
		return []byte(formatNumber(v.F64)), nil
	case TypeString:
		return json.Marshal(v.S)
	default:
		return []byte("null"), nil
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Row represents one record in a table: a slice of Values, one per column.
type Row []Value

// Clone returns a copy of r that shares no backing array with it.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Column describes metadata for a single column in a table.
type Column struct {
	Name       string
	Type       DataType
	PrimaryKey bool
}

// ColumnNames returns the names of cols in order.
func ColumnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// ParseNumber converts s to a number the way a loosely typed comparison does:
// surrounding whitespace is ignored and a blank string is zero. Besides
// decimals it accepts "Infinity" with an optional sign and the unsigned
// integer forms 0x1A, 0o17 and 0b101. ok is false when s is not numeric.
func ParseNumber(s string) (f float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if len(s) > 2 && s[0] == '0' {
		if base := radixOf(s[1]); base != 0 {
			return parseRadix(s[2:], base)
		}
	}

	unsigned := s
	if s[0] == '+' || s[0] == '-' {
		unsigned = s[1:]
	}
	if unsigned == "Infinity" {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	// strconv also takes hex floats, underscores, "inf" and "nan"
	for i := 0; i < len(unsigned); i++ {
		c := unsigned[i]
		if !isDigit(c) && c != '.' && c != 'e' && c != 'E' && c != '+' && c != '-' {
			return 0, false
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	return f, true
}

func radixOf(c byte) float64 {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

// parseRadix reads unsigned digits in base. The result may exceed the range
// of an integer type.
func parseRadix(digits string, base float64) (float64, bool) {
	var f float64
	for i := 0; i < len(digits); i++ {
		var d float64
		switch c := digits[i]; {
		case isDigit(c):
			d = float64(c - '0')
		case c >= 'a' && c <= 'f':
			d = float64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = float64(c-'A') + 10
		default:
			return 0, false
		}
		if d >= base {
			return 0, false
		}
		f = f*base + d
	}
	return f, true
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
