// Package rowpump is the write path of a row-level data migration: it turns
// changed-row records into cached, dialect-quoted DML statements and executes
// them against a target database.
package rowpump

import (
	"context"

	"github.com/rowpump/rowpump/connector"
	"github.com/rowpump/rowpump/record"
	"github.com/rowpump/rowpump/writer"

	_ "github.com/rowpump/rowpump/providers/mysql"
	_ "github.com/rowpump/rowpump/providers/postgres"
	_ "github.com/rowpump/rowpump/providers/sqlite"
)

type Config = connector.Config
type Record = record.Record
type Column = record.Column
type Batch = record.Batch

const (
	KindInsert = record.KindInsert
	KindUpdate = record.KindUpdate
	KindDelete = record.KindDelete
)

// Connect opens a target connection through a registered provider and wraps
// it in a Writer. The caller owns both and closes the connection last.
func Connect(ctx context.Context, provider string, cfg Config, opts ...writer.Option) (*writer.Writer, connector.Connection, error) {
	c, err := connector.New(provider, cfg)
	if err != nil {
		return nil, nil, err
	}
	conn, err := c.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	return writer.New(conn.DB(), conn.Dialect(), opts...), conn, nil
}
