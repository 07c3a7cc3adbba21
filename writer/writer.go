// Package writer executes generated DML against the target database. It is
// the binding point between the template builder, the prepared-statement
// cache and the driver.
package writer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rowpump/rowpump/cache"
	"github.com/rowpump/rowpump/dialect"
	"github.com/rowpump/rowpump/naming"
	"github.com/rowpump/rowpump/record"
	"github.com/rowpump/rowpump/sqlbuilder"
)

const defaultStatementCacheSize = 256

// Writer turns changed-row records into executed statements. Safe for
// concurrent use; multiple workers may share one Writer or hold one each.
type Writer struct {
	id       string
	db       *sql.DB
	builder  *sqlbuilder.Builder
	stmts    *cache.StatementCache
	rebind   func(string) string
	mapper   naming.TableMapper
	stmtSize int
}

type Option func(*Writer)

// WithStatementCacheSize bounds the prepared-statement LRU.
func WithStatementCacheSize(n int) Option {
	return func(w *Writer) {
		if n > 0 {
			w.stmtSize = n
		}
	}
}

// WithTableMapper routes records to renamed target tables.
func WithTableMapper(m naming.TableMapper) Option {
	return func(w *Writer) {
		w.mapper = m
	}
}

func New(db *sql.DB, d dialect.Dialect, opts ...Option) *Writer {
	w := &Writer{
		id:       uuid.NewString(),
		db:       db,
		builder:  sqlbuilder.New(d),
		mapper:   naming.Identity{},
		stmtSize: defaultStatementCacheSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.stmts = cache.NewStatementCache(w.stmtSize)
	if r, ok := d.(dialect.Rebinder); ok {
		w.rebind = r.Rebind
	}
	return w
}

// ID identifies this writer in wrapped errors, distinguishing workers when
// many run against the same target.
func (w *Writer) ID() string {
	return w.id
}

// Write executes the statement for a single record.
func (w *Writer) Write(ctx context.Context, r record.Record) error {
	query, args, err := w.render(r)
	if err != nil {
		return err
	}
	stmt, err := w.stmts.GetOrPrepare(ctx, w.db, query)
	if err != nil {
		return fmt.Errorf("writer %s: prepare %s %s: %w", w.id, r.Kind, r.Table, err)
	}
	if _, err := stmt.ExecContext(ctx, args...); err != nil {
		return fmt.Errorf("writer %s: exec %s %s: %w", w.id, r.Kind, r.Table, err)
	}
	return nil
}

// WriteBatch executes all records of a batch in one transaction, rolling back
// on the first failure.
func (w *Writer) WriteBatch(ctx context.Context, b record.Batch) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("writer %s: begin batch %s: %w", w.id, b.ID, err)
	}
	for _, r := range b.Records {
		query, args, err := w.render(r)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("batch %s: %w", b.ID, err)
		}
		stmt, err := w.stmts.GetOrPrepare(ctx, w.db, query)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("writer %s: batch %s: prepare %s %s: %w", w.id, b.ID, r.Kind, r.Table, err)
		}
		if _, err := tx.StmtContext(ctx, stmt).ExecContext(ctx, args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("writer %s: batch %s: exec %s %s: %w", w.id, b.ID, r.Kind, r.Table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("writer %s: commit batch %s: %w", w.id, b.ID, err)
	}
	return nil
}

// Close releases the prepared statements. The *sql.DB stays open; it belongs
// to the caller.
func (w *Writer) Close() error {
	return w.stmts.Close()
}

// render maps the table, builds the statement text and collects the bind
// arguments in the builder's documented order.
func (w *Writer) render(r record.Record) (string, []any, error) {
	r.Table = w.mapper.TargetTable(r.Table)

	var (
		query string
		args  []any
		err   error
	)
	switch r.Kind {
	case record.KindInsert:
		query, err = w.builder.BuildInsertSQL(r)
		args = record.InsertArgs(r)
	case record.KindUpdate:
		query, err = w.builder.BuildUpdateSQL(r)
		args = record.UpdateArgs(r)
	case record.KindDelete:
		query, err = w.builder.BuildDeleteSQL(r)
		args = record.DeleteArgs(r)
	default:
		return "", nil, fmt.Errorf("writer %s: unsupported record kind %d", w.id, r.Kind)
	}
	if err != nil {
		return "", nil, err
	}
	if w.rebind != nil {
		query = w.rebind(query)
	}
	return query, args, nil
}
