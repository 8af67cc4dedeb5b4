package sqltpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseNoBraces(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "SELECT 1", collapseFragments("SELECT 1"))
}

func TestCollapseKeepsBlockContent(t *testing.T) {
	t.Parallel()
	out := collapseFragments("a = 1 {AND b = 2}")
	assert.Equal(t, "a = 1 AND b = 2", out)
}

func TestCollapseDropsSkippedBlock(t *testing.T) {
	t.Parallel()
	out := collapseFragments("a = 1 {AND b = " + skipToken + "}")
	assert.Equal(t, "a = 1 ", out)
}

func TestCollapseMultipleBlocks(t *testing.T) {
	t.Parallel()
	out := collapseFragments("a{ AND b = " + skipToken + "}{ AND c = 3}")
	assert.Equal(t, "a AND c = 3", out)
}

func TestCollapseEmptyBlock(t *testing.T) {
	t.Parallel()

	// surrounding whitespace is preserved as-is
	out := collapseFragments("a = 1 {} AND b = 2")
	assert.Equal(t, "a = 1  AND b = 2", out)
}

func TestCollapseInnerBraces(t *testing.T) {
	t.Parallel()

	// a brace that never closes before another one opens stays literal
	out := collapseFragments("{a{b}c}")
	assert.Equal(t, "{abc}", out)
}

func TestCollapseUnbalanced(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a = 1 {AND b", collapseFragments("a = 1 {AND b"))
	assert.Equal(t, "a = 1 } AND b", collapseFragments("a = 1 } AND b"))
}

func TestCollapseSkipTokenRemains(t *testing.T) {
	t.Parallel()

	// outside any block the token survives for the caller to detect
	out := collapseFragments("a = " + skipToken)
	assert.Equal(t, "a = "+skipToken, out)
}
