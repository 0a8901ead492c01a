// Package postgres opens exprql connections to PostgreSQL through the pgx
// database/sql driver.
package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/conn"
)

// Open opens a connection pool for dsn, a URL or keyword/value string.
//
// exprql renders PostgreSQL text literals with backslash escapes, so every
// session runs with standard_conforming_strings off.
func Open(dsn string, opts ...conn.Option) (*conn.DB, error) {
	cfg, err := Config(dsn)
	if err != nil {
		return nil, err
	}
	return conn.New(stdlib.OpenDB(*cfg), exprql.Postgres, opts...), nil
}

// Config parses dsn and applies the session settings exprql relies on.
func Config(dsn string) (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = make(map[string]string)
	}
	cfg.RuntimeParams["standard_conforming_strings"] = "off"
	return cfg, nil
}
