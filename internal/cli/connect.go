package cli

import (
	"fmt"
	"log/slog"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/conn"
	"github.com/zoobzio/exprql/mariadb"
	"github.com/zoobzio/exprql/mssql"
	"github.com/zoobzio/exprql/mysql"
	"github.com/zoobzio/exprql/postgres"
	"github.com/zoobzio/exprql/sqlite"
)

// Open opens a connection for dialect d. An empty DSN selects a private
// in-memory database for sqlite and is an error for every other dialect.
func Open(d exprql.Dialect, dsn string, logger *slog.Logger) (*conn.DB, error) {
	opts := []conn.Option{conn.WithLogger(logger)}

	d = d.Normalize()
	if dsn == "" {
		if d != exprql.SQLite {
			return nil, fmt.Errorf("no database DSN configured for %s", d)
		}
		dsn = sqlite.Memory
	}

	switch {
	case d == exprql.SQLite:
		return sqlite.Open(dsn, opts...)
	case d.IsPostgres():
		return postgres.Open(dsn, opts...)
	case d == exprql.MariaDB:
		return mariadb.Open(dsn, opts...)
	case d == exprql.MySQL:
		return mysql.Open(dsn, opts...)
	case d == exprql.MSSQL:
		return mssql.Open(dsn, opts...)
	}
	return nil, fmt.Errorf("no driver available for dialect %q", d)
}
