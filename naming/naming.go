// Package naming maps source table names to the names written on the
// migration target.
package naming

import (
	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton instance for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// TableMapper rewrites a source table name into the table written on the
// target. Must return consistent results for the same input: the template
// cache keys on the mapped name.
type TableMapper interface {
	TargetTable(source string) string
}

// Identity keeps table names unchanged.
type Identity struct{}

func (Identity) TargetTable(source string) string {
	return source
}

// Prefix prepends a fixed prefix, e.g. when migrating into staging tables.
type Prefix string

func (p Prefix) TargetTable(source string) string {
	return string(p) + source
}

// Plural pluralizes singular legacy table names (user -> users) for targets
// that follow plural naming conventions.
type Plural struct{}

func (Plural) TargetTable(source string) string {
	return pluralizeClient.Pluralize(source, 2, false)
}
