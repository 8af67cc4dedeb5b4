package sqltpl

import (
	"encoding/hex"
	"strings"
	"time"
)

// Escaper escapes raw string data for inclusion in a single-quoted SQL
// literal. Implementations must be safe for concurrent use. A custom Escaper
// (e.g. one backed by a live connection charset) can be set on a builder to
// override the dialect's default escaping.
type Escaper interface {
	EscapeString(s string) string
}

// Dialect controls how values and identifiers are rendered as SQL text.
type Dialect interface {
	Escaper

	// QuoteIdentifier wraps an identifier in dialect quotes. The identifier
	// itself is trusted and written as-is: identifiers must come from the
	// application, never from user input.
	QuoteIdentifier(name string) string

	FormatBool(b bool) string
	FormatTime(t time.Time) string
	FormatBytes(b []byte) string
}

type mysqlDialect struct{}

// MySQL renders literals with backslash escaping and backtick identifiers.
var MySQL Dialect = mysqlDialect{}

func (mysqlDialect) EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case 0:
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case 0x1a:
			b.WriteString(`\Z`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (mysqlDialect) QuoteIdentifier(name string) string {
	return "`" + name + "`"
}

func (mysqlDialect) FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (mysqlDialect) FormatTime(t time.Time) string {
	return "'" + t.UTC().Format("2006-01-02 15:04:05") + "'"
}

func (mysqlDialect) FormatBytes(b []byte) string {
	return "x'" + hex.EncodeToString(b) + "'"
}

type postgresDialect struct{}

// Postgres renders literals with quote doubling and double-quoted
// identifiers. Assumes standard_conforming_strings, the server default.
var Postgres Dialect = postgresDialect{}

func (postgresDialect) EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func (postgresDialect) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (postgresDialect) FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func (postgresDialect) FormatTime(t time.Time) string {
	return "'" + t.Format("2006-01-02 15:04:05.9999999-07:00") + "'"
}

func (postgresDialect) FormatBytes(b []byte) string {
	return `'\x` + hex.EncodeToString(b) + "'"
}
