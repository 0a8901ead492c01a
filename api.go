// Package exprql provides an algebra for building SQL statements from
// expression trees and rendering them to dialect-aware SQL text.
//
// Leaves are references (tables, fields, raw aliases), literals, and named
// parameters. Leaves are combined into Expression nodes with comparison,
// boolean, and arithmetic combinators. Repeated combination with the same
// boolean or arithmetic operator keeps the tree flat:
//
//	users := exprql.T("Users")
//	cond := exprql.And(users.Field("id").Eq(4), users.Field("name").Eq("Joe"), users.Field("age").Gt(18))
//	sql, err := cond.Render(exprql.SQLite, nil)
//	// ((Users.id = 4) AND (Users.name = 'Joe') AND (Users.age > 18))
//
// # Statements
//
// Statements are assembled with chained calls and rendered on demand:
//
//	q := exprql.Select(users.Field("id"), users.Field("login")).
//		From(users).
//		Where(users.Field("id").Eq(exprql.P("id"))).
//		Params(exprql.Params{"id": 4})
//
//	sql, err := q.Render(exprql.Postgres)
//	// SELECT Users.id, Users.login FROM Users WHERE (Users.id = 4)
//
// # Dialects
//
// The dialect is an explicit argument of every render call. It controls text
// escaping (backslash escapes for the mysql and postgres families, doubled
// quotes for sqlite, firebird, sybase, maxdb, and mssql) and boolean literals
// ('t'/'f' for the postgres family, 1/0 elsewhere).
//
// # Execution
//
// Statements execute against any Connection. The conn package adapts
// database/sql, and the sqlite, postgres, mysql, and mssql packages open
// connections for their drivers. Result rows are addressed by short field
// name or by qualified table__field name.
package exprql

import "github.com/zoobzio/exprql/internal/types"

// Dialect identifies the target database engine.
type Dialect = types.Dialect

// Re-export dialect constants for public API.
const (
	SQLite     = types.SQLite
	Postgres   = types.Postgres
	PostgreSQL = types.PostgreSQL
	MySQL      = types.MySQL
	MariaDB    = types.MariaDB
	Firebird   = types.Firebird
	Sybase     = types.Sybase
	MaxDB      = types.MaxDB
	MSSQL      = types.MSSQL
)

// Operator represents the operator connecting an expression's children.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	// Comparison operators.
	EQ   = types.EQ
	NE   = types.NE
	GT   = types.GT
	GE   = types.GE
	LT   = types.LT
	LE   = types.LE
	IN   = types.IN
	LIKE = types.LIKE

	// Boolean junctions.
	AND = types.AND
	OR  = types.OR

	// Arithmetic operators.
	OpAdd = types.Add
	OpSub = types.Sub
	OpMul = types.Mul
	OpDiv = types.Div
	OpMod = types.Mod
)

// Operation represents the kind of statement.
type Operation = types.Operation

// Re-export operation constants for public API.
const (
	OpNone   = types.OpNone
	OpSelect = types.OpSelect
	OpUpdate = types.OpUpdate
	OpDelete = types.OpDelete
)

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// JoinType represents the kind of SQL join.
type JoinType = types.JoinType

// Re-export join type constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	OuterJoin = types.OuterJoin
	CrossJoin = types.CrossJoin
)
