// Package sqlite provides a SQLite target, mostly used for local runs and
// tests. Config.Database is the database file path, or ":memory:".
package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/rowpump/rowpump/connector"
	"github.com/rowpump/rowpump/dialect"
)

type Provider struct{}

func init() {
	connector.Register("sqlite", &Provider{})
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	db, err := sql.Open("sqlite", cfg.Database)
	if err != nil {
		return nil, err
	}

	// An in-memory database exists per connection; a second pooled
	// connection would see an empty schema.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &connection{db: db, dialect: dialect.NewSQLiteDialect()}, nil
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewSQLiteDialect()
}

type connection struct {
	db      *sql.DB
	dialect dialect.Dialect
}

func (c *connection) DB() *sql.DB {
	return c.db
}

func (c *connection) Dialect() dialect.Dialect {
	return c.dialect
}

func (c *connection) Health(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *connection) Close() error {
	return c.db.Close()
}
