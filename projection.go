package exprql

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Projection maps result column names to positions. Each column may be known
// by a short name and by a qualified table__field name; both are lowercased.
type Projection struct {
	short     map[string]int
	qualified map[string]int
	names     []string
}

// Projection builds the name index of a SELECT from its select list. Fields
// are named by column and by table__field, aliased items by their alias.
// Expressions and raw aliases occupy a position without a name. A bare Table
// expands to its columns when the statement has a schema that knows it;
// otherwise the width of the table is unknown and naming stops there.
func (s *Statement) Projection() *Projection {
	p := &Projection{
		short:     make(map[string]int),
		qualified: make(map[string]int),
	}
	if s.kind != OpSelect {
		return p
	}

	if len(s.fields) == 0 {
		if len(s.from) == 1 && len(s.joins) == 0 {
			if t, ok := s.from[0].(Table); ok {
				for _, f := range s.schema.Columns(t) {
					p.add(f.Name(), qualifiedName(f))
				}
			}
		}
		return p
	}

	for _, item := range s.fields {
		switch x := item.(type) {
		case Field:
			p.add(x.Name(), qualifiedName(x))
		case Aliased:
			q := ""
			if f, ok := x.item.(Field); ok {
				q = qualifiedName(f)
			}
			p.add(x.alias, q)
		case Table:
			cols := s.schema.Columns(x)
			if len(cols) == 0 {
				return p
			}
			for _, f := range cols {
				p.add(f.Name(), qualifiedName(f))
			}
		default:
			p.add("", "")
		}
	}
	return p
}

func qualifiedName(f Field) string {
	if f.table.name == "" {
		return ""
	}
	return f.table.name + "__" + f.name
}

// add appends a position. The first column to claim a name keeps it.
func (p *Projection) add(short, qualified string) {
	i := len(p.names)
	p.names = append(p.names, short)
	if short != "" {
		if _, ok := p.short[strings.ToLower(short)]; !ok {
			p.short[strings.ToLower(short)] = i
		}
	}
	if qualified != "" {
		if _, ok := p.qualified[strings.ToLower(qualified)]; !ok {
			p.qualified[strings.ToLower(qualified)] = i
		}
	}
}

// Index returns the position of name, checking short names before qualified
// names. Lookup is case-insensitive.
func (p *Projection) Index(name string) (int, bool) {
	key := strings.ToLower(name)
	if i, ok := p.short[key]; ok {
		return i, true
	}
	i, ok := p.qualified[key]
	return i, ok
}

// Names returns the short name of each known position; unnamed positions are "".
func (p *Projection) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Row is one result row addressable by position or by projected name.
type Row struct {
	values     []any
	projection *Projection
}

// Get returns the value of the named column. Unknown names report false
// rather than an error.
func (r Row) Get(name string) (any, bool) {
	if r.projection == nil {
		return nil, false
	}
	i, ok := r.projection.Index(name)
	if !ok || i >= len(r.values) {
		return nil, false
	}
	return r.values[i], true
}

// Index returns the value at position i.
func (r Row) Index(i int) any {
	return r.values[i]
}

// Len returns the number of columns.
func (r Row) Len() int {
	return len(r.values)
}

// Values returns the raw column values in order.
func (r Row) Values() []any {
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// Map returns the row keyed by projected short name. Unnamed columns are
// keyed by their position.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	var names []string
	if r.projection != nil {
		names = r.projection.names
	}
	for i, v := range r.values {
		if i < len(names) && names[i] != "" {
			m[names[i]] = v
			continue
		}
		m[strconv.Itoa(i)] = v
	}
	return m
}

// Rows is a lazy, forward-only sequence of result rows over one cursor.
// It is not restartable: re-execute the statement to read the rows again.
type Rows struct {
	cursor     Cursor
	projection *Projection
	current    Row
	started    bool
	done       bool
	err        error
}

func newRows(cur Cursor, p *Projection) *Rows {
	return &Rows{cursor: cur, projection: p}
}

// Projection returns the name index of the rows.
func (r *Rows) Projection() *Projection {
	return r.projection
}

// Dialect returns the dialect reported by the cursor.
func (r *Rows) Dialect() Dialect {
	return r.cursor.Dialect()
}

// Next advances to the next row. The cursor is closed once rows are exhausted
// or an error occurs.
func (r *Rows) Next() bool {
	r.started = true
	if r.done {
		return false
	}
	if !r.cursor.Next() {
		r.finish(r.cursor.Err())
		return false
	}
	values, err := r.cursor.Values()
	if err != nil {
		r.finish(err)
		return false
	}
	r.current = Row{values: values, projection: r.projection}
	return true
}

// Row returns the current row.
func (r *Rows) Row() Row {
	return r.current
}

// Err returns the first error met while iterating.
func (r *Rows) Err() error {
	return r.err
}

// Close releases the cursor. It is safe to call more than once.
func (r *Rows) Close() error {
	if r.done {
		return nil
	}
	r.done = true
	return r.cursor.Close()
}

func (r *Rows) finish(err error) {
	if r.err == nil {
		r.err = err
	}
	if cerr := r.Close(); cerr != nil && r.err == nil {
		r.err = cerr
	}
}

// All returns an iterator over the remaining rows. It may be ranged over once;
// a second consumption yields nothing and records ErrInvalidState.
func (r *Rows) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		if r.started {
			if r.err == nil {
				r.err = fmt.Errorf("%w: rows already consumed", ErrInvalidState)
			}
			return
		}
		for r.Next() {
			if !yield(r.current) {
				r.finish(nil)
				return
			}
		}
	}
}
