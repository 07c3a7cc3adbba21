// Package dialect supplies the identifier-quoting convention of a target
// database. The SQL builder is parameterized over a Dialect and never inspects
// anything beyond the quote pair.
package dialect

import (
	"fmt"
	"sync"
)

// Dialect exposes the identifier quote pair for a target database. Both
// methods are pure and total; they are consulted only while a statement
// template is being built.
type Dialect interface {
	Name() string
	LeftQuote() string
	RightQuote() string
}

// Rebinder is implemented by dialects whose drivers do not accept ?
// placeholders. The builder always emits ?; the writer rebinds just before
// preparing the statement, so cached templates stay driver-agnostic.
type Rebinder interface {
	Rebind(sql string) string
}

var (
	mu       sync.RWMutex
	dialects = make(map[string]Dialect)
)

// Register makes a dialect available under name. Called from dialect init
// functions and by external dialect implementations.
func Register(name string, d Dialect) {
	mu.Lock()
	defer mu.Unlock()
	dialects[name] = d
}

// Get returns the dialect registered under name.
func Get(name string) (Dialect, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("dialect %s not registered", name)
	}
	return d, nil
}
