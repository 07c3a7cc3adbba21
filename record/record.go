// Package record models a single changed row flowing through the migration
// write path: which table it belongs to, the operation that changed it, and
// its columns with their key/updated flags.
package record

// Kind identifies the DML operation a Record describes.
type Kind uint8

const (
	KindInsert Kind = iota
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "INSERT"
	case KindUpdate:
		return "UPDATE"
	case KindDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Column is one cell of a changed row. Immutable once constructed by the
// change source.
type Column struct {
	Name       string
	Value      any
	PrimaryKey bool
	UniqueKey  bool
	Updated    bool
}

// Record describes one changed row.
//
// Invariant: column order is stable for a given table across records. The SQL
// template cache assumes all records for the same table share the same column
// set and order.
type Record struct {
	Kind    Kind
	Table   string
	Columns []Column
}

// PrimaryColumns returns r's primary-key columns in declaration order. Tables
// without a primary key fall back to their unique-key columns.
func PrimaryColumns(r Record) []Column {
	var primary, unique []Column
	for _, c := range r.Columns {
		if c.PrimaryKey {
			primary = append(primary, c)
		}
		if c.UniqueKey {
			unique = append(unique, c)
		}
	}
	if len(primary) > 0 {
		return primary
	}
	return unique
}

// UpdatedColumns returns the columns flagged Updated, in declaration order.
func UpdatedColumns(r Record) []Column {
	var updated []Column
	for _, c := range r.Columns {
		if c.Updated {
			updated = append(updated, c)
		}
	}
	return updated
}

// InsertArgs returns the values to bind to an INSERT statement: every column
// value in declaration order.
func InsertArgs(r Record) []any {
	args := make([]any, len(r.Columns))
	for i, c := range r.Columns {
		args[i] = c.Value
	}
	return args
}

// UpdateArgs returns the values to bind to an UPDATE statement: updated-column
// values first, then primary-key values in the WHERE order.
func UpdateArgs(r Record) []any {
	updated := UpdatedColumns(r)
	primary := PrimaryColumns(r)
	args := make([]any, 0, len(updated)+len(primary))
	for _, c := range updated {
		args = append(args, c.Value)
	}
	for _, c := range primary {
		args = append(args, c.Value)
	}
	return args
}

// DeleteArgs returns the values to bind to a DELETE statement: primary-key
// values in the WHERE order.
func DeleteArgs(r Record) []any {
	primary := PrimaryColumns(r)
	args := make([]any, len(primary))
	for i, c := range primary {
		args[i] = c.Value
	}
	return args
}
