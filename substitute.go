package sqltpl

import (
	"bytes"
	"fmt"
)

// skipToken marks the spot where a skip argument was bound. Bare single
// quotes and NUL bytes never survive string escaping in any dialect, so
// escaped data cannot contain this token.
const skipToken = "\x00'skip'\x00"

// argCursor walks the argument list left to right. One cursor spans the
// whole template, including placeholders inside conditional blocks.
type argCursor struct {
	args []any
	pos  int
}

func newArgCursor(args []any) *argCursor {
	return &argCursor{args: args}
}

func (c *argCursor) next() (any, error) {
	if c.pos >= len(c.args) {
		return nil, fmt.Errorf("placeholder %d: %w", c.pos+1, ErrInsufficientArguments)
	}
	arg := c.args[c.pos]
	c.pos++
	return arg, nil
}

// substitute renders a compiled template, replacing each placeholder with the
// next argument from the cursor. Skip arguments leave a skipToken behind for
// collapseFragments to find. Replacement text is never rescanned.
func (f formatter) substitute(t *template, cur *argCursor) (string, error) {
	buf := &bytes.Buffer{}
	buf.Grow(len(t.source))

	for _, seg := range t.segments {
		if seg.marker == markerNone {
			_, _ = buf.WriteString(seg.text)
			continue
		}

		arg, err := cur.next()
		if err != nil {
			return "", err
		}
		v, err := classify(arg)
		if err != nil {
			return "", fmt.Errorf("placeholder %d: %w", cur.pos, err)
		}
		if v.kind == valueSkip {
			_, _ = buf.WriteString(skipToken)
			continue
		}

		s, err := f.convert(seg.marker, v)
		if err != nil {
			return "", fmt.Errorf("placeholder %d: %w", cur.pos, err)
		}
		_, _ = buf.WriteString(s)
	}

	return buf.String(), nil
}
