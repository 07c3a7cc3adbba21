// Package mysql provides MySQL and TiDB targets through go-sql-driver.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"

	"github.com/rowpump/rowpump/connector"
	"github.com/rowpump/rowpump/dialect"
)

type Provider struct{}

func init() {
	connector.Register("mysql", &Provider{})
}

func (p *Provider) buildDSN(cfg connector.Config) string {
	mc := gomysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.DBName = cfg.Database
	if len(cfg.Params) > 0 {
		mc.Params = cfg.Params
	}
	return mc.FormatDSN()
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	cfg = cfg.WithPoolDefaults()

	db, err := sql.Open("mysql", p.buildDSN(cfg))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Pool.MaxOpen)
	db.SetMaxIdleConns(cfg.Pool.MaxIdle)
	db.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	db.SetConnMaxIdleTime(cfg.Pool.MaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &connection{db: db, dialect: dialect.NewMySQLDialect()}, nil
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewMySQLDialect()
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
