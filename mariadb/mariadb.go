// Package mariadb opens exprql connections to MariaDB. MariaDB speaks the
// MySQL protocol and shares its literal rules.
package mariadb

import (
	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/conn"
	"github.com/zoobzio/exprql/mysql"
)

// Open opens a MariaDB connection pool for dsn, in go-sql-driver/mysql format.
func Open(dsn string, opts ...conn.Option) (*conn.DB, error) {
	return mysql.OpenDialect(dsn, exprql.MariaDB, opts...)
}
