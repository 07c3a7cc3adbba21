// Package sqlbuilder generates the parameterized DML statements of the
// migration write path. Statement text is cached per (kind, table): writers
// emit very many rows against a small fixed set of tables, so the invariant
// portion of each statement is built once and reused.
package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rowpump/rowpump/cache"
	"github.com/rowpump/rowpump/dialect"
	"github.com/rowpump/rowpump/record"
)

var (
	// ErrNoColumns is returned for an INSERT record with no columns.
	ErrNoColumns = errors.New("record has no columns")

	// ErrNoPrimaryKey is returned for an UPDATE or DELETE record whose table
	// has neither primary-key nor unique-key columns.
	ErrNoPrimaryKey = errors.New("record has no primary or unique key columns")

	// ErrNoUpdatedColumns is returned for an UPDATE record with an empty SET
	// clause.
	ErrNoUpdatedColumns = errors.New("record has no updated columns")
)

// Builder produces dialect-quoted, ?-parameterized INSERT, UPDATE and DELETE
// statements for changed-row records. Safe for concurrent use by any number
// of writer workers; all builds are fast, synchronous computations.
type Builder struct {
	dialect   dialect.Dialect
	templates *cache.TemplateCache
}

func New(d dialect.Dialect) *Builder {
	return &Builder{
		dialect:   d,
		templates: cache.NewTemplateCache(),
	}
}

// BuildInsertSQL returns INSERT INTO <t>(<c1>,<c2>,...) VALUES(?,?,...) for
// r's table, one placeholder per column in declaration order. The caller
// binds every column value in that order.
//
// The first record seen for a table fixes the cached template; later records
// for the same table must share its column set and order.
func (b *Builder) BuildInsertSQL(r record.Record) (string, error) {
	return b.templates.GetOrCompute(cache.Key{Kind: record.KindInsert, Table: r.Table}, func() (string, error) {
		if len(r.Columns) == 0 {
			return "", fmt.Errorf("insert into %s: %w", r.Table, ErrNoColumns)
		}
		names := make([]string, len(r.Columns))
		holders := make([]string, len(r.Columns))
		for i, c := range r.Columns {
			names[i] = b.quote(c.Name)
			holders[i] = "?"
		}
		return fmt.Sprintf("INSERT INTO %s(%s) VALUES(%s)",
			b.quote(r.Table), strings.Join(names, ","), strings.Join(holders, ",")), nil
	})
}

// BuildUpdateSQL returns UPDATE <t> SET <set> WHERE <pk1> = ?,... for r. The
// table and WHERE portions are cached per table; the SET clause is rendered
// fresh on every call from the columns flagged Updated, so each record's
// statement reflects exactly its own updated columns.
//
// Binding order: updated-column values in declaration order, then primary-key
// values in the WHERE order.
func (b *Builder) BuildUpdateSQL(r record.Record) (string, error) {
	tmpl, err := b.templates.GetOrCompute(cache.Key{Kind: record.KindUpdate, Table: r.Table}, func() (string, error) {
		primary := record.PrimaryColumns(r)
		if len(primary) == 0 {
			return "", fmt.Errorf("update %s: %w", r.Table, ErrNoPrimaryKey)
		}
		return fmt.Sprintf("UPDATE %s SET %%s WHERE %s", b.quote(r.Table), b.assignments(primary)), nil
	})
	if err != nil {
		return "", err
	}

	updated := record.UpdatedColumns(r)
	if len(updated) == 0 {
		return "", fmt.Errorf("update %s: %w", r.Table, ErrNoUpdatedColumns)
	}
	return fmt.Sprintf(tmpl, b.assignments(updated)), nil
}

// BuildDeleteSQL returns DELETE FROM <t> WHERE <pk1> = ?,... for r's table.
// The caller binds the primary-key values in the WHERE order.
func (b *Builder) BuildDeleteSQL(r record.Record) (string, error) {
	return b.templates.GetOrCompute(cache.Key{Kind: record.KindDelete, Table: r.Table}, func() (string, error) {
		primary := record.PrimaryColumns(r)
		if len(primary) == 0 {
			return "", fmt.Errorf("delete from %s: %w", r.Table, ErrNoPrimaryKey)
		}
		return fmt.Sprintf("DELETE FROM %s WHERE %s", b.quote(r.Table), b.assignments(primary)), nil
	})
}

// assignments renders "<q>name<q> = ?" per column, comma-joined.
func (b *Builder) assignments(cols []record.Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = b.quote(c.Name) + " = ?"
	}
	return strings.Join(parts, ",")
}

func (b *Builder) quote(name string) string {
	return b.dialect.LeftQuote() + name + b.dialect.RightQuote()
}
