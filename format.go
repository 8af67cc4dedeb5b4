package sqltpl

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// formatter renders classified values as SQL literals for one dialect.
type formatter struct {
	dialect Dialect
	escaper Escaper
}

func newFormatter(d Dialect, esc Escaper) formatter {
	if esc == nil {
		esc = d
	}
	return formatter{dialect: d, escaper: esc}
}

// convert renders a value according to the placeholder that consumed it.
func (f formatter) convert(marker markerKind, v value) (string, error) {
	switch marker {
	case markerValue:
		return f.escape(v)
	case markerInt:
		return f.formatInt(v)
	case markerFloat:
		return f.formatFloat(v)
	case markerArray:
		return f.formatArray(v)
	case markerIdent:
		return f.formatIdentifiers(v)
	}
	return "", fmt.Errorf("placeholder ?%c: %w", marker, ErrUnsupportedType)
}

// escape renders a scalar for an untyped ? placeholder.
func (f formatter) escape(v value) (string, error) {
	if v.kind != valueScalar {
		return "", fmt.Errorf("list value for scalar placeholder: %w", ErrUnsupportedType)
	}
	return f.formatScalar(v.raw)
}

func (f formatter) formatScalar(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "NULL", nil
	case bool:
		return f.dialect.FormatBool(v), nil
	case string:
		return "'" + f.escaper.EscapeString(v) + "'", nil
	case []byte:
		return f.dialect.FormatBytes(v), nil
	case time.Time:
		return f.dialect.FormatTime(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}

	// named basic types
	r := reflect.ValueOf(raw)
	switch r.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return f.dialect.FormatBool(r.Bool()), nil
	case reflect.String:
		return "'" + f.escaper.EscapeString(r.String()) + "'", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(r.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(r.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(r.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(r.Float(), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("value of type %T: %w", raw, ErrUnsupportedType)
	}
}

// formatInt renders a value for a ?d placeholder. Strings are parsed by their
// leading integer prefix ("42abc" becomes 42), floats truncate toward zero.
func (f formatter) formatInt(v value) (string, error) {
	if v.kind != valueScalar {
		return "", fmt.Errorf("list value for ?d placeholder: %w", ErrInvalidArgumentType)
	}

	switch n := v.raw.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if n {
			return "1", nil
		}
		return "0", nil
	case string:
		return strconv.FormatInt(leadingInt(n), 10), nil
	case int:
		return strconv.FormatInt(int64(n), 10), nil
	case int8:
		return strconv.FormatInt(int64(n), 10), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	case float32:
		return strconv.FormatInt(int64(n), 10), nil
	case float64:
		return strconv.FormatInt(int64(n), 10), nil
	}

	r := reflect.ValueOf(v.raw)
	switch r.Kind() { //nolint:exhaustive
	case reflect.Bool:
		if r.Bool() {
			return "1", nil
		}
		return "0", nil
	case reflect.String:
		return strconv.FormatInt(leadingInt(r.String()), 10), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(r.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(r.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatInt(int64(r.Float()), 10), nil
	default:
		return "", fmt.Errorf("value of type %T for ?d placeholder: %w", v.raw, ErrUnsupportedType)
	}
}

// formatFloat renders a value for a ?f placeholder. Strings are parsed by
// their leading numeric prefix ("3.14abc" becomes 3.14).
func (f formatter) formatFloat(v value) (string, error) {
	if v.kind != valueScalar {
		return "", fmt.Errorf("list value for ?f placeholder: %w", ErrInvalidArgumentType)
	}

	switch n := v.raw.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if n {
			return "1", nil
		}
		return "0", nil
	case string:
		return strconv.FormatFloat(leadingFloat(n), 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), nil
	}

	r := reflect.ValueOf(v.raw)
	switch r.Kind() { //nolint:exhaustive
	case reflect.String:
		return strconv.FormatFloat(leadingFloat(r.String()), 'g', -1, 64), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(r.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(r.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(r.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(r.Float(), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("value of type %T for ?f placeholder: %w", v.raw, ErrUnsupportedType)
	}
}

// formatArray renders a value for a ?a placeholder. Associations become
// quoted key = value pairs, in ascending key order for Go maps and in the
// given order for []Pair. Sequences become a plain value list. Both are
// joined with ", ".
func (f formatter) formatArray(v value) (string, error) {
	switch v.kind {
	case valueMapping:
		parts := make([]string, 0, len(v.pairs))
		for _, p := range v.pairs {
			elem, err := f.formatElement(p.Value)
			if err != nil {
				return "", err
			}
			parts = append(parts, f.dialect.QuoteIdentifier(p.Key)+" = "+elem)
		}
		return strings.Join(parts, ", "), nil

	case valueSequence:
		parts := make([]string, 0, len(v.seq))
		for _, raw := range v.seq {
			elem, err := f.formatElement(raw)
			if err != nil {
				return "", err
			}
			parts = append(parts, elem)
		}
		return strings.Join(parts, ", "), nil
	}

	return "", fmt.Errorf("?a placeholder requires a slice or a string-keyed map: %w", ErrInvalidArgumentType)
}

func (f formatter) formatElement(raw any) (string, error) {
	v, err := classify(raw)
	if err != nil {
		return "", err
	}
	if v.kind != valueScalar {
		return "", fmt.Errorf("non-scalar element in array value: %w", ErrUnsupportedType)
	}
	return f.formatScalar(v.raw)
}

// formatIdentifiers renders a value for a ?# placeholder. Identifiers are
// quoted but never escaped: they must come from the application, not from
// user input.
func (f formatter) formatIdentifiers(v value) (string, error) {
	switch v.kind {
	case valueScalar:
		name, ok := v.raw.(string)
		if !ok {
			return "", fmt.Errorf("identifier of type %T: %w", v.raw, ErrUnsupportedType)
		}
		return f.dialect.QuoteIdentifier(name), nil

	case valueSequence:
		parts := make([]string, 0, len(v.seq))
		for _, raw := range v.seq {
			name, ok := raw.(string)
			if !ok {
				return "", fmt.Errorf("identifier of type %T: %w", raw, ErrUnsupportedType)
			}
			parts = append(parts, f.dialect.QuoteIdentifier(name))
		}
		return strings.Join(parts, ", "), nil
	}

	return "", fmt.Errorf("?# placeholder requires a string or a slice of strings: %w", ErrInvalidArgumentType)
}

// leadingInt parses the integer prefix of s, ignoring leading whitespace.
// A string without an integer prefix parses as 0, an out-of-range prefix
// saturates.
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r")

	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}

	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return n
}

// leadingFloat parses the numeric prefix of s, ignoring leading whitespace.
// A string without a numeric prefix parses as 0.
func leadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	end := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		end = i
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			end = i
		}
	}
	if end > 0 && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > expStart {
			end = j
		}
	}

	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return n
}
