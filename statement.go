package exprql

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Selectable is an item of a SELECT list: Table (rendered table.*), Field,
// Alias, *Expression, or Aliased (rendered "item AS alias").
type Selectable interface {
	selectSQL(params Params, d Dialect) (string, error)
}

// FromItem is an entry of a FROM or JOIN list: Table, Alias, or Aliased
// (rendered "table alias").
type FromItem interface {
	fromSQL(params Params, d Dialect) (string, error)
}

// Orderable is an entry of an ORDER BY list: Field, Alias, *Expression, or
// an Ordering built with Asc or Desc.
type Orderable interface {
	orderSQL(params Params, d Dialect) (string, error)
}

func (t Table) selectSQL(Params, Dialect) (string, error) { return t.name + ".*", nil }
func (t Table) fromSQL(Params, Dialect) (string, error)   { return t.name, nil }

func (f Field) selectSQL(p Params, d Dialect) (string, error) { return f.renderSQL(p, d) }
func (f Field) orderSQL(p Params, d Dialect) (string, error)  { return f.renderSQL(p, d) }

func (a Alias) selectSQL(p Params, d Dialect) (string, error) { return a.renderSQL(p, d) }
func (a Alias) fromSQL(p Params, d Dialect) (string, error)   { return a.renderSQL(p, d) }
func (a Alias) orderSQL(p Params, d Dialect) (string, error)  { return a.renderSQL(p, d) }

func (e *Expression) selectSQL(p Params, d Dialect) (string, error) { return e.renderSQL(p, d) }
func (e *Expression) orderSQL(p Params, d Dialect) (string, error)  { return e.renderSQL(p, d) }

func (a Aliased) selectSQL(p Params, d Dialect) (string, error) {
	s, err := a.item.renderSQL(p, d)
	if err != nil {
		return "", err
	}
	return s + " AS " + a.alias, nil
}

func (a Aliased) fromSQL(p Params, d Dialect) (string, error) {
	s, err := a.item.renderSQL(p, d)
	if err != nil {
		return "", err
	}
	return s + " " + a.alias, nil
}

// Ordering is an ORDER BY entry with an explicit direction.
type Ordering struct {
	item Operand
	dir  Direction
}

// Asc orders by v ascending.
func Asc(v any) Ordering {
	return Ordering{item: operand(v), dir: ASC}
}

// Desc orders by v descending.
func Desc(v any) Ordering {
	return Ordering{item: operand(v), dir: DESC}
}

func (o Ordering) orderSQL(p Params, d Dialect) (string, error) {
	s, err := o.item.renderSQL(p, d)
	if err != nil {
		return "", err
	}
	return s + " " + string(o.dir), nil
}

type assignment struct {
	field Field
	value *Expression
}

type join struct {
	item  FromItem
	kind  JoinType
	conds *Expression
}

// Statement assembles a SELECT, UPDATE, or DELETE statement. Its kind is set
// exactly once. The first error raised by a builder call is kept and returned
// from Render, Execute, and Err; later calls are ignored.
//
// A Statement must not be modified concurrently.
type Statement struct {
	kind     Operation
	fields   []Selectable
	distinct bool
	target   Table
	sets     []assignment
	from     []FromItem
	joins    []join
	where    *Expression
	having   *Expression
	groupBy  []Operand
	orderBy  []Orderable
	limit    *int
	offset   *int
	params   Params
	schema   *Schema
	err      error
}

// NewStatement creates a statement with no kind set.
func NewStatement() *Statement {
	return &Statement{}
}

// Select creates a SELECT statement. With no items it selects *.
func Select(items ...Selectable) *Statement {
	return NewStatement().Select(items...)
}

// Update creates an UPDATE statement for t.
func Update(t Table) *Statement {
	return NewStatement().Update(t)
}

// Delete creates a DELETE statement.
func Delete() *Statement {
	return NewStatement().Delete()
}

func (s *Statement) fail(format string, args ...any) *Statement {
	s.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidState}, args...)...)
	return s
}

func (s *Statement) setKind(kind Operation) bool {
	if s.kind != OpNone {
		s.fail("statement kind already set to %s", s.kind)
		return false
	}
	s.kind = kind
	return true
}

// Select makes s a SELECT statement.
func (s *Statement) Select(items ...Selectable) *Statement {
	if s.err != nil {
		return s
	}
	if s.setKind(OpSelect) {
		s.fields = append([]Selectable(nil), items...)
	}
	return s
}

// Update makes s an UPDATE statement for t. At least one Set is required.
func (s *Statement) Update(t Table) *Statement {
	if s.err != nil {
		return s
	}
	if s.setKind(OpUpdate) {
		s.target = t
	}
	return s
}

// Delete makes s a DELETE statement.
func (s *Statement) Delete() *Statement {
	if s.err != nil {
		return s
	}
	s.setKind(OpDelete)
	return s
}

// Set assigns v to f. Plain values are wrapped as literals.
func (s *Statement) Set(f Field, v any) *Statement {
	if s.err != nil {
		return s
	}
	if s.kind != OpUpdate {
		return s.fail("Set() can only be used with UPDATE statements")
	}
	s.sets = append(s.sets, assignment{field: f, value: Wrap(v)})
	return s
}

// SetMap assigns each value to the column of the update target with the same
// name, in name order.
func (s *Statement) SetMap(values map[string]any) *Statement {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.Set(s.target.Field(name), values[name])
	}
	return s
}

// From sets the FROM list. Only SELECT and DELETE statements have one.
func (s *Statement) From(items ...FromItem) *Statement {
	if s.err != nil {
		return s
	}
	if s.kind != OpSelect && s.kind != OpDelete {
		return s.fail("From() can only be used with SELECT or DELETE statements")
	}
	s.from = append(s.from, items...)
	return s
}

// Where sets the WHERE clause, folding conds with AND. Calling it again ANDs
// the new conditions onto the existing clause.
func (s *Statement) Where(conds ...any) *Statement {
	if s.err != nil {
		return s
	}
	if len(conds) == 0 {
		return s.fail("Where() requires at least one condition")
	}
	e := fold(AND, conds[0], conds[1:])
	if s.where == nil {
		s.where = e
	} else {
		s.where = Combine(s.where, e, AND)
	}
	return s
}

// And ANDs conds onto the active clause: HAVING if set, otherwise WHERE.
func (s *Statement) And(conds ...any) *Statement {
	return s.extend(AND, conds)
}

// Or ORs conds onto the active clause: HAVING if set, otherwise WHERE.
func (s *Statement) Or(conds ...any) *Statement {
	return s.extend(OR, conds)
}

func (s *Statement) extend(op Operator, conds []any) *Statement {
	if s.err != nil {
		return s
	}
	if len(conds) == 0 {
		return s.fail("%s() requires at least one condition", op)
	}
	e := fold(op, conds[0], conds[1:])
	switch {
	case s.having != nil:
		s.having = Combine(s.having, e, op)
	case s.where != nil:
		s.where = Combine(s.where, e, op)
	default:
		return s.fail("%s() requires a prior Where() or Having()", op)
	}
	return s
}

// Join appends a join. conds are folded with AND; with none, no ON clause is rendered.
func (s *Statement) Join(item FromItem, kind JoinType, conds ...any) *Statement {
	if s.err != nil {
		return s
	}
	if s.kind != OpSelect && s.kind != OpDelete {
		return s.fail("Join() can only be used with SELECT or DELETE statements")
	}
	j := join{item: item, kind: kind}
	if len(conds) > 0 {
		j.conds = fold(AND, conds[0], conds[1:])
	}
	s.joins = append(s.joins, j)
	return s
}

// InnerJoin appends an INNER JOIN.
func (s *Statement) InnerJoin(item FromItem, conds ...any) *Statement {
	return s.Join(item, InnerJoin, conds...)
}

// LeftJoin appends a LEFT JOIN.
func (s *Statement) LeftJoin(item FromItem, conds ...any) *Statement {
	return s.Join(item, LeftJoin, conds...)
}

// RightJoin appends a RIGHT JOIN.
func (s *Statement) RightJoin(item FromItem, conds ...any) *Statement {
	return s.Join(item, RightJoin, conds...)
}

// OuterJoin appends a FULL OUTER JOIN.
func (s *Statement) OuterJoin(item FromItem, conds ...any) *Statement {
	return s.Join(item, OuterJoin, conds...)
}

// CrossJoin appends a CROSS JOIN.
func (s *Statement) CrossJoin(item FromItem) *Statement {
	return s.Join(item, CrossJoin)
}

// GroupBy sets the GROUP BY list.
func (s *Statement) GroupBy(items ...Operand) *Statement {
	if s.err != nil {
		return s
	}
	if s.kind != OpSelect {
		return s.fail("GroupBy() can only be used with SELECT statements")
	}
	s.groupBy = append(s.groupBy, items...)
	return s
}

// Having sets the HAVING clause, folding conds with AND. GroupBy must come first.
func (s *Statement) Having(conds ...any) *Statement {
	if s.err != nil {
		return s
	}
	if len(s.groupBy) == 0 {
		return s.fail("Having() requires a prior GroupBy()")
	}
	if len(conds) == 0 {
		return s.fail("Having() requires at least one condition")
	}
	e := fold(AND, conds[0], conds[1:])
	if s.having == nil {
		s.having = e
	} else {
		s.having = Combine(s.having, e, AND)
	}
	return s
}

// OrderBy sets the ORDER BY list.
func (s *Statement) OrderBy(items ...Orderable) *Statement {
	if s.err != nil {
		return s
	}
	if s.kind != OpSelect {
		return s.fail("OrderBy() can only be used with SELECT statements")
	}
	s.orderBy = append(s.orderBy, items...)
	return s
}

// Limit sets the LIMIT.
func (s *Statement) Limit(n int) *Statement {
	if s.err != nil {
		return s
	}
	if n < 0 {
		return s.fail("negative limit %d", n)
	}
	s.limit = &n
	return s
}

// Offset sets the OFFSET of a SELECT.
func (s *Statement) Offset(n int) *Statement {
	if s.err != nil {
		return s
	}
	if s.kind != OpSelect {
		return s.fail("Offset() can only be used with SELECT statements")
	}
	if n < 0 {
		return s.fail("negative offset %d", n)
	}
	s.offset = &n
	return s
}

// Distinct makes a SELECT return distinct rows.
func (s *Statement) Distinct() *Statement {
	if s.err != nil {
		return s
	}
	if s.kind != OpSelect {
		return s.fail("Distinct() can only be used with SELECT statements")
	}
	s.distinct = true
	return s
}

// Params sets the mapping parameters are resolved against.
func (s *Statement) Params(p Params) *Statement {
	s.params = p
	return s
}

// WithSchema attaches a schema catalog. Selected tables known to the schema
// render as their explicit column lists (users.id, users.login, ...) instead
// of users.*, which also names them in results. Without a schema, or for a
// table the schema does not know, a selected table renders as table.*.
func (s *Statement) WithSchema(schema *Schema) *Statement {
	s.schema = schema
	return s
}

// Kind returns the statement kind, or OpNone if unset.
func (s *Statement) Kind() Operation {
	return s.kind
}

// Err returns the first builder error.
func (s *Statement) Err() error {
	return s.err
}

// Render renders the statement for dialect d.
func (s *Statement) Render(d Dialect) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	var b strings.Builder
	var err error
	switch s.kind {
	case OpSelect:
		err = s.renderSelect(&b, d)
	case OpUpdate:
		err = s.renderUpdate(&b, d)
	case OpDelete:
		b.WriteString("DELETE")
		err = s.renderFrom(&b, d)
	default:
		return "", fmt.Errorf("%w: statement kind not set", ErrInvalidState)
	}
	if err != nil {
		return "", err
	}

	if err := s.renderClause(&b, " WHERE ", s.where, d); err != nil {
		return "", err
	}
	if s.kind == OpSelect {
		if err := s.renderTail(&b, d); err != nil {
			return "", err
		}
	}
	if s.limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(*s.limit))
	}
	if s.offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(*s.offset))
	}
	return b.String(), nil
}

// MustRender is like Render but panics on error.
func (s *Statement) MustRender(d Dialect) string {
	sql, err := s.Render(d)
	if err != nil {
		panic(err)
	}
	return sql
}

func (s *Statement) renderSelect(b *strings.Builder, d Dialect) error {
	b.WriteString("SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}
	if len(s.fields) == 0 {
		b.WriteString("*")
	} else {
		parts := make([]string, 0, len(s.fields))
		for _, item := range s.fields {
			if t, ok := item.(Table); ok {
				if cols := s.schema.Columns(t); len(cols) > 0 {
					for _, c := range cols {
						parts = append(parts, c.String())
					}
					continue
				}
			}
			sql, err := item.selectSQL(s.params, d)
			if err != nil {
				return err
			}
			parts = append(parts, sql)
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	return s.renderFrom(b, d)
}

func (s *Statement) renderUpdate(b *strings.Builder, d Dialect) error {
	if len(s.sets) == 0 {
		return fmt.Errorf("%w: UPDATE requires at least one Set()", ErrMissingClause)
	}
	parts := make([]string, len(s.sets))
	for i, a := range s.sets {
		v, err := a.value.renderSQL(s.params, d)
		if err != nil {
			return err
		}
		parts[i] = a.field.Name() + " = " + v
	}
	b.WriteString("UPDATE ")
	b.WriteString(s.target.Name())
	b.WriteString(" SET ")
	b.WriteString(strings.Join(parts, ", "))
	return nil
}

func (s *Statement) renderFrom(b *strings.Builder, d Dialect) error {
	if len(s.from) == 0 {
		return fmt.Errorf("%w: %s requires a FROM list", ErrMissingClause, s.kind)
	}
	parts := make([]string, len(s.from))
	for i, item := range s.from {
		sql, err := item.fromSQL(s.params, d)
		if err != nil {
			return err
		}
		parts[i] = sql
	}
	b.WriteString(" FROM ")
	b.WriteString(strings.Join(parts, ", "))

	for _, j := range s.joins {
		sql, err := j.item.fromSQL(s.params, d)
		if err != nil {
			return err
		}
		b.WriteString(" ")
		b.WriteString(string(j.kind))
		b.WriteString(" JOIN ")
		b.WriteString(sql)
		if err := s.renderClause(b, " ON ", j.conds, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) renderTail(b *strings.Builder, d Dialect) error {
	if len(s.groupBy) > 0 {
		parts := make([]string, len(s.groupBy))
		for i, item := range s.groupBy {
			sql, err := item.renderSQL(s.params, d)
			if err != nil {
				return err
			}
			parts[i] = sql
		}
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if err := s.renderClause(b, " HAVING ", s.having, d); err != nil {
		return err
	}
	if len(s.orderBy) > 0 {
		parts := make([]string, len(s.orderBy))
		for i, item := range s.orderBy {
			sql, err := item.orderSQL(s.params, d)
			if err != nil {
				return err
			}
			parts[i] = sql
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	return nil
}

func (s *Statement) renderClause(b *strings.Builder, keyword string, e *Expression, d Dialect) error {
	if e == nil {
		return nil
	}
	sql, err := e.renderSQL(s.params, d)
	if err != nil {
		return err
	}
	b.WriteString(keyword)
	b.WriteString(sql)
	return nil
}

// Execute renders s with the connection dialect and runs it. The returned
// Rows is lazy and can be consumed once.
func (s *Statement) Execute(ctx context.Context, c Connection) (*Rows, error) {
	sql, err := s.Render(c.Dialect())
	if err != nil {
		return nil, err
	}
	cur, err := c.Execute(ctx, sql)
	if err != nil {
		return nil, err
	}
	return newRows(cur, s.Projection()), nil
}
