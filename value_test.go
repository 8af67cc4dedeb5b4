package sqltpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySkip(t *testing.T) {
	t.Parallel()
	v, err := classify(Skip())
	require.NoError(t, err)
	assert.Equal(t, valueSkip, v.kind)
}

func TestClassifyScalars(t *testing.T) {
	t.Parallel()

	for _, arg := range []any{nil, 1, int64(2), 3.5, "s", true, []byte("b")} {
		v, err := classify(arg)
		require.NoError(t, err)
		assert.Equal(t, valueScalar, v.kind, "arg %#v", arg)
		assert.Equal(t, arg, v.raw, "arg %#v", arg)
	}
}

func TestClassifyPointer(t *testing.T) {
	t.Parallel()

	n := 5
	v, err := classify(&n)
	require.NoError(t, err)
	assert.Equal(t, valueScalar, v.kind)
	assert.Equal(t, 5, v.raw)

	var missing *int
	v, err = classify(missing)
	require.NoError(t, err)
	assert.Equal(t, valueScalar, v.kind)
	assert.Nil(t, v.raw)
}

func TestClassifyValuer(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	v, err := classify(id)
	require.NoError(t, err)
	assert.Equal(t, valueScalar, v.kind)
	assert.Equal(t, id.String(), v.raw)
}

func TestClassifyNilValuerPointer(t *testing.T) {
	t.Parallel()

	// *uuid.UUID satisfies driver.Valuer; a nil one classifies like any
	// other nil pointer instead of calling Value on a nil receiver
	v, err := classify((*uuid.UUID)(nil))
	require.NoError(t, err)
	assert.Equal(t, valueScalar, v.kind)
	assert.Nil(t, v.raw)
}

func TestClassifySequence(t *testing.T) {
	t.Parallel()

	v, err := classify([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, valueSequence, v.kind)
	assert.Equal(t, []any{1, 2, 3}, v.seq)

	v, err = classify([2]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, valueSequence, v.kind)
	assert.Equal(t, []any{"a", "b"}, v.seq)
}

func TestClassifyBytesAreScalar(t *testing.T) {
	t.Parallel()

	v, err := classify([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, valueScalar, v.kind)
}

func TestClassifyMapSortsKeys(t *testing.T) {
	t.Parallel()

	v, err := classify(map[string]any{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	assert.Equal(t, valueMapping, v.kind)
	assert.Equal(t, []Pair{{"a", 1}, {"b", 2}, {"c", 3}}, v.pairs)
}

func TestClassifyPairsKeepOrder(t *testing.T) {
	t.Parallel()

	pairs := []Pair{{"z", 1}, {"a", 2}}
	v, err := classify(pairs)
	require.NoError(t, err)
	assert.Equal(t, valueMapping, v.kind)
	assert.Equal(t, pairs, v.pairs)
}

func TestClassifyMapNonStringKeys(t *testing.T) {
	t.Parallel()

	// not an association, rejection happens at the bound placeholder
	v, err := classify(map[int]string{1: "a"})
	require.NoError(t, err)
	assert.Equal(t, valueScalar, v.kind)
}

func TestIsListValue(t *testing.T) {
	t.Parallel()

	assert.True(t, isListValue([]int{1}))
	assert.True(t, isListValue([1]int{1}))
	assert.False(t, isListValue([]byte("b")))
	assert.False(t, isListValue("s"))
	assert.False(t, isListValue(5))
}
