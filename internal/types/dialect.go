package types

import "strings"

// Dialect identifies the target database engine. It selects literal escaping
// and boolean representation rules.
type Dialect string

const (
	SQLite     Dialect = "sqlite"
	Postgres   Dialect = "postgres"
	PostgreSQL Dialect = "postgresql"
	MySQL      Dialect = "mysql"
	MariaDB    Dialect = "mariadb"
	Firebird   Dialect = "firebird"
	Sybase     Dialect = "sybase"
	MaxDB      Dialect = "maxdb"
	MSSQL      Dialect = "mssql"
)

// Normalize lowercases and trims a dialect identifier.
func (d Dialect) Normalize() Dialect {
	return Dialect(strings.ToLower(strings.TrimSpace(string(d))))
}

// IsPostgres reports whether d belongs to the postgres family.
func (d Dialect) IsPostgres() bool {
	switch d.Normalize() {
	case Postgres, PostgreSQL:
		return true
	}
	return false
}

// IsMySQL reports whether d belongs to the mysql family.
func (d Dialect) IsMySQL() bool {
	switch d.Normalize() {
	case MySQL, MariaDB:
		return true
	}
	return false
}
