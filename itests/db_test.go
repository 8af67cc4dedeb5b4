//go:build itest

package itests

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/n-r-w/sqltpl"
	"github.com/n-r-w/testdock/v2"
	"github.com/stretchr/testify/require"
)

// pg builds queries for the test database. One shared template cache covers
// all tests.
var pg = func() sqltpl.QueryBuilder {
	cache, err := sqltpl.NewTemplateCache(64)
	if err != nil {
		panic(err)
	}
	return sqltpl.DefaultBuilder.Dialect(sqltpl.Postgres).Cache(cache)
}()

func newTestPool(t *testing.T) (*pgxpool.Pool, context.Context) {
	t.Helper()

	ctx := context.Background()
	pool, _ := testdock.GetPgxPool(t, testdock.DefaultPostgresDSN)
	t.Cleanup(pool.Close)

	return pool, ctx
}

func execSetup(t *testing.T, pool *pgxpool.Pool, ctx context.Context, setupSQL string) {
	t.Helper()

	_, err := pool.Exec(ctx, setupSQL)
	require.NoError(t, err)
}

func buildQuery(t *testing.T, tpl string, args ...any) string {
	t.Helper()

	sql, err := pg.BuildQuery(tpl, args...)
	require.NoError(t, err)
	return sql
}
