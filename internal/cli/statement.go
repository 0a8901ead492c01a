package cli

import (
	"fmt"
	"strings"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/internal/parse"
)

// StatementOptions describes a SELECT assembled from command-line flags.
type StatementOptions struct {
	Table  string
	Fields []string
	Where  string
	Params []string
	Limit  int
}

// Build assembles the SELECT statement. A negative Limit means no LIMIT
// clause.
func (o StatementOptions) Build() (*exprql.Statement, error) {
	if o.Table == "" {
		return nil, fmt.Errorf("--table is required")
	}
	table := exprql.T(o.Table)

	var items []exprql.Selectable
	for _, name := range o.Fields {
		items = append(items, table.Field(name))
	}
	if len(items) == 0 {
		items = append(items, table)
	}

	stmt := exprql.Select(items...).From(table)

	if o.Where != "" {
		cond, err := parse.Condition(o.Where)
		if err != nil {
			return nil, err
		}
		stmt = stmt.Where(cond)
	}

	params, err := ParseParams(o.Params)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		stmt = stmt.Params(params)
	}

	if o.Limit >= 0 {
		stmt = stmt.Limit(o.Limit)
	}
	return stmt, stmt.Err()
}

// ParseParams reads name=value pairs. Values that parse as literals (numbers,
// 'quoted strings', NULL, TRUE, FALSE) take their literal type; anything else
// is kept as a plain string.
func ParseParams(pairs []string) (exprql.Params, error) {
	params := exprql.Params{}
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected name=value", pair)
		}
		if v, err := parse.Value(raw); err == nil {
			params[name] = v
			continue
		}
		params[name] = raw
	}
	return params, nil
}
