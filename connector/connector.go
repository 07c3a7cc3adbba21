// Package connector manages connections to migration targets through
// registered database providers.
package connector

import (
	"context"
	"database/sql"

	"github.com/rowpump/rowpump/dialect"
)

// Connection is an established target-database connection.
type Connection interface {
	DB() *sql.DB
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Close() error
}

// Connector opens Connections for one configured target.
type Connector interface {
	Connect(ctx context.Context) (Connection, error)
	ConnectWithRetry(ctx context.Context, opts RetryOptions) (Connection, error)
}

// Provider implements connection establishment for one database kind.
type Provider interface {
	Connect(ctx context.Context, config Config) (Connection, error)
	Dialect() dialect.Dialect
}
