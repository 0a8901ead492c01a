// Package testing provides test utilities for exprql.
package testing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/exprql"
)

// TestSchema creates a schema catalog for testing.
// Includes users, posts, and orders tables.
func TestSchema(t *testing.T) *exprql.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("login", "varchar"))
	users.AddColumn(dbml.NewColumn("name", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	project.AddTable(posts)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	project.AddTable(orders)

	schema, err := exprql.NewSchema(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// FakeConn is an in-memory Connection. It records every executed statement
// and answers each with a cursor over Rows.
type FakeConn struct {
	D    exprql.Dialect
	Rows [][]any
	// Fail, when set, is returned by Execute.
	Fail error

	mu       sync.Mutex
	executed []string
	cursors  []*FakeCursor
}

// NewFakeConn creates a fake connection for dialect d returning rows.
func NewFakeConn(d exprql.Dialect, rows ...[]any) *FakeConn {
	return &FakeConn{D: d, Rows: rows}
}

// Execute records sql and returns a cursor over the configured rows.
func (c *FakeConn) Execute(_ context.Context, sql string) (exprql.Cursor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.executed = append(c.executed, sql)
	if c.Fail != nil {
		return nil, c.Fail
	}
	cur := &FakeCursor{D: c.D, Rows: c.Rows}
	c.cursors = append(c.cursors, cur)
	return cur, nil
}

// Dialect returns the configured dialect.
func (c *FakeConn) Dialect() exprql.Dialect {
	return c.D
}

// Executed returns the statements executed so far.
func (c *FakeConn) Executed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.executed...)
}

// Cursors returns the cursors handed out so far.
func (c *FakeConn) Cursors() []*FakeCursor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*FakeCursor(nil), c.cursors...)
}

// FakeCursor walks a fixed list of rows.
type FakeCursor struct {
	D    exprql.Dialect
	Rows [][]any
	// FailAt makes Values fail on the row with this 1-based number.
	FailAt int

	pos    int
	err    error
	closed bool
}

// Next advances to the next row.
func (c *FakeCursor) Next() bool {
	if c.closed || c.pos >= len(c.Rows) {
		return false
	}
	c.pos++
	return true
}

// Values returns the current row.
func (c *FakeCursor) Values() ([]any, error) {
	if c.FailAt != 0 && c.pos == c.FailAt {
		c.err = errors.New("fake cursor failure")
		return nil, c.err
	}
	return c.Rows[c.pos-1], nil
}

// Err returns the iteration error.
func (c *FakeCursor) Err() error { return c.err }

// Close marks the cursor closed.
func (c *FakeCursor) Close() error {
	c.closed = true
	return nil
}

// Closed reports whether Close was called.
func (c *FakeCursor) Closed() bool { return c.closed }

// Dialect returns the configured dialect.
func (c *FakeCursor) Dialect() exprql.Dialect { return c.D }

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertRender renders s for d and compares the result with expected.
func AssertRender(t *testing.T, expected string, s *exprql.Statement, d exprql.Dialect) {
	t.Helper()
	sql, err := s.Render(d)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	AssertSQL(t, expected, sql)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorIs checks that err matches target with errors.Is.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("Expected error matching %v, got: %v", target, err)
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
