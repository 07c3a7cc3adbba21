package dialect

// TiDB speaks the MySQL wire protocol and quoting rules; only the name
// differs so provider lookup stays explicit.
type TiDB struct {
	MySQL
}

func NewTiDBDialect() Dialect {
	return TiDB{}
}

func init() {
	Register("tidb", NewTiDBDialect())
}

func (TiDB) Name() string {
	return "tidb"
}
