package sqltpl

import (
	"database/sql/driver"
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

// Pair is one key = value entry of an ordered association for a ?a
// placeholder. A []Pair renders its entries in the given order, a plain Go
// map renders them by ascending key. Association keys are strings; maps with
// any other key type have no rendering under any placeholder.
type Pair struct {
	Key   string
	Value any
}

type valueKind int

const (
	valueScalar valueKind = iota
	valueSequence
	valueMapping
	valueSkip
)

// value is the classified form of a single template argument. Exactly one
// payload field is meaningful, selected by kind.
type value struct {
	kind  valueKind
	raw   any    // valueScalar
	seq   []any  // valueSequence, elements in original order
	pairs []Pair // valueMapping, entries in render order
}

// classify resolves an argument into its value form. driver.Valuer arguments
// are unwrapped and pointers dereferenced before classification, so e.g.
// *string and uuid.UUID arguments behave like their underlying values. A nil
// pointer is nil even when its type implements driver.Valuer.
func classify(arg any) (value, error) {
	if _, ok := arg.(skipValue); ok {
		return value{kind: valueSkip}, nil
	}

	switch v := arg.(type) {
	case driver.Valuer:
		// a typed nil pointer satisfies the interface, but calling Value
		// on it would panic; the pointer path below turns it into nil
		if r := reflect.ValueOf(arg); r.Kind() == reflect.Ptr && r.IsNil() {
			break
		}
		var err error
		if arg, err = v.Value(); err != nil {
			return value{}, err
		}
	}

	r := reflect.ValueOf(arg)
	if r.Kind() == reflect.Ptr {
		if r.IsNil() {
			arg = nil
		} else {
			arg = r.Elem().Interface()
			r = reflect.ValueOf(arg)
		}
	}

	if arg == nil {
		return value{kind: valueScalar, raw: nil}, nil
	}

	if pairs, ok := arg.([]Pair); ok {
		return value{kind: valueMapping, pairs: pairs}, nil
	}

	if isListValue(arg) {
		seq := make([]any, r.Len())
		for i := 0; i < r.Len(); i++ {
			seq[i] = r.Index(i).Interface()
		}
		return value{kind: valueSequence, seq: seq}, nil
	}

	if r.Kind() == reflect.Map {
		// non-string keys have no rendering, the bound placeholder reports them
		if r.Type().Key().Kind() != reflect.String {
			return value{kind: valueScalar, raw: arg}, nil
		}
		pairs := make([]Pair, 0, r.Len())
		iter := r.MapRange()
		for iter.Next() {
			pairs = append(pairs, Pair{Key: iter.Key().String(), Value: iter.Value().Interface()})
		}
		slices.SortFunc(pairs, func(a, b Pair) int {
			return strings.Compare(a.Key, b.Key)
		})
		return value{kind: valueMapping, pairs: pairs}, nil
	}

	return value{kind: valueScalar, raw: arg}, nil
}

// isListValue reports whether v renders as a list of elements. []byte is a
// driver value and therefore a scalar, not a list.
func isListValue(v any) bool {
	if driver.IsValue(v) {
		return false
	}
	r := reflect.ValueOf(v)
	return r.Kind() == reflect.Array || r.Kind() == reflect.Slice
}
