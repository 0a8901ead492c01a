package exprql

import "context"

// Connection executes rendered SQL. Implementations report the dialect their
// statements are rendered for.
type Connection interface {
	Execute(ctx context.Context, sql string) (Cursor, error)
	Dialect() Dialect
}

// Cursor yields result rows one at a time, in the manner of *sql.Rows.
type Cursor interface {
	Next() bool
	Values() ([]any, error)
	Err() error
	Close() error
	Dialect() Dialect
}
