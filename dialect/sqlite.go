package dialect

type SQLite struct{}

func NewSQLiteDialect() Dialect {
	return SQLite{}
}

func init() {
	Register("sqlite", NewSQLiteDialect())
}

func (SQLite) Name() string {
	return "sqlite"
}

func (SQLite) LeftQuote() string {
	return `"`
}

func (SQLite) RightQuote() string {
	return `"`
}
