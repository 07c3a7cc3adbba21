package dialect

import (
	"strconv"
	"strings"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return Postgres{}
}

func init() {
	Register("postgres", NewPostgresDialect())
}

func (Postgres) Name() string {
	return "postgres"
}

func (Postgres) LeftQuote() string {
	return `"`
}

func (Postgres) RightQuote() string {
	return `"`
}

// Rebind converts ? placeholders to the $n form pgx expects. Generated
// statements never carry ? inside literals or identifiers, so a byte scan is
// enough.
func (Postgres) Rebind(sql string) string {
	var b strings.Builder
	b.Grow(len(sql) + 8)
	n := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(sql[i])
	}
	return b.String()
}
