// Package mysql opens exprql connections to MySQL and MariaDB through
// go-sql-driver/mysql.
package mysql

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/conn"
)

// Open opens a MySQL connection pool for dsn.
func Open(dsn string, opts ...conn.Option) (*conn.DB, error) {
	return OpenDialect(dsn, exprql.MySQL, opts...)
}

// OpenDialect opens dsn and renders statements for d, which should be a
// member of the mysql family.
func OpenDialect(dsn string, d exprql.Dialect, opts ...conn.Option) (*conn.DB, error) {
	cfg, err := Config(dsn)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	return conn.New(sql.OpenDB(connector), d, opts...), nil
}

// Config parses dsn. Results carry driver-native types: DATETIME columns are
// parsed into time.Time.
func Config(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	return cfg, nil
}
