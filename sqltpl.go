// Package sqltpl compiles SQL query templates into finished SQL strings.
//
// A template carries typed placeholders replaced left to right from the
// argument list: ? for any escaped scalar, ?d for integers, ?f for floats,
// ?a for value lists and key = value sets, ?# for identifiers. Parts of the
// template wrapped in {...} are conditional: binding Skip() to a placeholder
// inside a block removes the whole block from the result.
//
// Ex:
//
//	sql, err := sqltpl.BuildQuery(
//		"SELECT * FROM users WHERE ?# = ?d {AND login = ?}",
//		"user_id", 42, "bob",
//	)
//	// SELECT * FROM users WHERE `user_id` = 42 AND login = 'bob'
//
// The same call with sqltpl.Skip() in place of "bob" drops the AND block.
package sqltpl

import "github.com/lann/builder"

// DefaultBuilder builds queries for MySQL without a template cache.
var DefaultBuilder = QueryBuilder(builder.EmptyBuilder).Dialect(MySQL)

// BuildQuery substitutes args into the template and resolves conditional
// blocks using DefaultBuilder.
func BuildQuery(tpl string, args ...any) (string, error) {
	return DefaultBuilder.BuildQuery(tpl, args...)
}

// MustBuildQuery is like BuildQuery.
// It panics if there are any errors.
func MustBuildQuery(tpl string, args ...any) string {
	return DefaultBuilder.MustBuildQuery(tpl, args...)
}

// skipValue is the reserved sentinel type. No argument built outside this
// package can be one, so skip detection never misfires on data.
type skipValue struct{}

// Skip returns the marker that removes the conditional block containing its
// placeholder. Binding it to a placeholder outside any block is an error.
func Skip() any {
	return skipValue{}
}
