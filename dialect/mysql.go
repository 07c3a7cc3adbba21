package dialect

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return MySQL{}
}

func init() {
	Register("mysql", NewMySQLDialect())
}

func (MySQL) Name() string {
	return "mysql"
}

func (MySQL) LeftQuote() string {
	return "`"
}

func (MySQL) RightQuote() string {
	return "`"
}
