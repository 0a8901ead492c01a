// Package mssql opens exprql connections to SQL Server through go-mssqldb.
//
// SQL Server has no LIMIT clause; statements using Limit or Offset will be
// rejected by the server.
package mssql

import (
	"database/sql"
	"fmt"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/conn"
)

// Open opens a SQL Server connection pool for dsn, a sqlserver:// URL or an
// ADO-style connection string.
func Open(dsn string, opts ...conn.Option) (*conn.DB, error) {
	connector, err := mssql.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mssql dsn: %w", err)
	}
	return conn.New(sql.OpenDB(connector), exprql.MSSQL, opts...), nil
}
