// Package sqlite opens exprql connections to SQLite databases using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/conn"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// DriverName is the database/sql driver name registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Memory is the DSN of a private in-memory database.
const Memory = ":memory:"

// Open opens the database at dsn. An in-memory database lives only as long
// as its connection, so the pool is limited to a single connection for it.
func Open(dsn string, opts ...conn.Option) (*conn.DB, error) {
	c, err := conn.Open(DriverName, dsn, exprql.SQLite, opts...)
	if err != nil {
		return nil, err
	}
	if dsn == Memory {
		c.DB().SetMaxOpenConns(1)
	}
	return c, nil
}
