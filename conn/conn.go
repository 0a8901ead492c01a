// Package conn adapts database/sql to the exprql Connection contract.
package conn

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/internal/logging"
)

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger used to trace executed statements.
func WithLogger(l *slog.Logger) Option {
	return func(c *DB) {
		if l != nil {
			c.logger = l
		}
	}
}

// DB is a Connection over a *sql.DB. Statements render with its dialect.
type DB struct {
	db      *sql.DB
	dialect exprql.Dialect
	logger  *slog.Logger
}

// New wraps an open *sql.DB.
func New(db *sql.DB, d exprql.Dialect, opts ...Option) *DB {
	c := &DB{
		db:      db,
		dialect: d.Normalize(),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open opens driverName with dsn and wraps the handle. No connection is made
// until first use; call Ping to check the target.
func Open(driverName, dsn string, d exprql.Dialect, opts ...Option) (*DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	return New(db, d, opts...), nil
}

// Dialect returns the dialect statements are rendered for.
func (c *DB) Dialect() exprql.Dialect {
	return c.dialect
}

// DB returns the underlying handle.
func (c *DB) DB() *sql.DB {
	return c.db
}

// Ping verifies the database is reachable.
func (c *DB) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the underlying handle.
func (c *DB) Close() error {
	return c.db.Close()
}

// Execute runs sql and returns a cursor over its result rows.
func (c *DB) Execute(ctx context.Context, query string) (exprql.Cursor, error) {
	c.logger.DebugContext(ctx, "executing statement", "dialect", c.dialect, "sql", query)

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		c.logger.DebugContext(ctx, "statement failed", "dialect", c.dialect, "error", err)
		return nil, fmt.Errorf("execute: %w", err)
	}
	cols, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("columns: %w", err)
	}
	return &cursor{rows: rows, dialect: c.dialect, width: len(cols)}, nil
}

// Exec runs sql without reading rows and reports the rows affected.
func (c *DB) Exec(ctx context.Context, query string) (int64, error) {
	c.logger.DebugContext(ctx, "executing statement", "dialect", c.dialect, "sql", query)

	res, err := c.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("exec: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// ExecStatement renders s with the connection dialect and runs it with Exec.
func (c *DB) ExecStatement(ctx context.Context, s *exprql.Statement) (int64, error) {
	query, err := s.Render(c.dialect)
	if err != nil {
		return 0, err
	}
	return c.Exec(ctx, query)
}

type cursor struct {
	rows    *sql.Rows
	dialect exprql.Dialect
	width   int
}

func (c *cursor) Next() bool {
	return c.rows.Next()
}

// Values scans the current row. []byte values are returned as strings since
// the driver may reuse their backing memory.
func (c *cursor) Values() ([]any, error) {
	values := make([]any, c.width)
	dest := make([]any, c.width)
	for i := range values {
		dest[i] = &values[i]
	}
	if err := c.rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	return values, nil
}

func (c *cursor) Err() error {
	return c.rows.Err()
}

func (c *cursor) Close() error {
	return c.rows.Close()
}

func (c *cursor) Dialect() exprql.Dialect {
	return c.dialect
}
