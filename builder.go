package sqltpl

import (
	"strings"
	"time"

	"github.com/lann/builder"
)

// Info describes one BuildQuery call, delivered to the builder's log
// function when one is set.
type Info struct {
	Template string
	SQL      string
	Args     []any
	Err      error
	Duration time.Duration
	Cached   bool
}

// LogFunc receives a build report after every BuildQuery call. It must be
// safe for concurrent use.
type LogFunc func(Info)

type queryData struct {
	Dialect Dialect
	Escaper Escaper
	Cache   *TemplateCache
	Logger  LogFunc
}

func (d *queryData) buildQuery(tpl string, args []any) (sql string, err error) {
	start := time.Now()
	cached := false

	if d.Logger != nil {
		defer func() {
			d.Logger(Info{
				Template: tpl,
				SQL:      sql,
				Args:     args,
				Err:      err,
				Duration: time.Since(start),
				Cached:   cached,
			})
		}()
	}

	dialect := d.Dialect
	if dialect == nil {
		dialect = MySQL
	}

	var t *template
	if d.Cache != nil {
		t, cached = d.Cache.get(tpl)
	}
	if t == nil {
		t = parseTemplate(tpl)
		if d.Cache != nil {
			d.Cache.put(t)
		}
	}

	f := newFormatter(dialect, d.Escaper)
	rendered, err := f.substitute(t, newArgCursor(args))
	if err != nil {
		return "", err
	}

	sql = collapseFragments(rendered)
	if strings.Contains(sql, skipToken) {
		return "", ErrSkipOutsideBlock
	}
	return sql, nil
}

// Builder

// QueryBuilder compiles query templates into SQL strings.
type QueryBuilder builder.Builder

func init() {
	builder.Register(QueryBuilder{}, queryData{})
}

// Format methods

// Dialect sets the SQL dialect (e.g. MySQL or Postgres) used to render
// values and identifiers.
func (b QueryBuilder) Dialect(d Dialect) QueryBuilder {
	return builder.Set(b, "Dialect", d).(QueryBuilder)
}

// Escaper overrides the dialect's string escaping, e.g. with one backed by a
// live connection charset. Quoting and non-string rendering stay with the
// dialect.
func (b QueryBuilder) Escaper(e Escaper) QueryBuilder {
	return builder.Set(b, "Escaper", e).(QueryBuilder)
}

// Cache sets a compiled-template cache. Without one every call parses the
// template anew.
func (b QueryBuilder) Cache(c *TemplateCache) QueryBuilder {
	return builder.Set(b, "Cache", c).(QueryBuilder)
}

// Logger sets a function receiving a build report after every BuildQuery
// call.
func (b QueryBuilder) Logger(fn LogFunc) QueryBuilder {
	return builder.Set(b, "Logger", fn).(QueryBuilder)
}

// SQL methods

// BuildQuery substitutes args into the template and resolves conditional
// blocks, returning the finished SQL string.
func (b QueryBuilder) BuildQuery(tpl string, args ...any) (string, error) {
	data := builder.GetStruct(b).(queryData)
	return data.buildQuery(tpl, args)
}

// MustBuildQuery is like BuildQuery.
// It panics if there are any errors.
func (b QueryBuilder) MustBuildQuery(tpl string, args ...any) string {
	sql, err := b.BuildQuery(tpl, args...)
	if err != nil {
		panic(err)
	}
	return sql
}
