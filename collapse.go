package sqltpl

import (
	"bytes"
	"strings"
)

// collapseFragments resolves {...} conditional blocks in rendered SQL.
// Blocks do not nest: a block runs from a { to the nearest following } with
// no further brace in between. A block containing a skipToken is deleted
// together with its braces, any other block keeps its content byte for byte
// with the braces stripped. Unbalanced braces stay in the output untouched.
func collapseFragments(sql string) string {
	if !strings.ContainsAny(sql, "{}") {
		return sql
	}

	buf := &bytes.Buffer{}
	buf.Grow(len(sql))

	for {
		open := strings.IndexByte(sql, '{')
		if open < 0 {
			break
		}

		rel := strings.IndexAny(sql[open+1:], "{}")
		if rel < 0 {
			// opening brace without a closing one
			break
		}
		if sql[open+1+rel] == '{' {
			// the first brace never closes, keep it literal
			_, _ = buf.WriteString(sql[:open+1])
			sql = sql[open+1:]
			continue
		}

		closing := open + 1 + rel
		fragment := sql[open+1 : closing]
		_, _ = buf.WriteString(sql[:open])
		if !strings.Contains(fragment, skipToken) {
			_, _ = buf.WriteString(fragment)
		}
		sql = sql[closing+1:]
	}

	_, _ = buf.WriteString(sql)
	return buf.String()
}
