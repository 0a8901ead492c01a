package exprql

// Table is a table reference. Names are not checked against any schema.
type Table struct {
	name string
}

// T creates a table reference.
func T(name string) Table {
	return Table{name: name}
}

// Name returns the table name.
func (t Table) Name() string {
	return t.name
}

// Field mints a field reference owned by t.
func (t Table) Field(name string) Field {
	return Field{table: t, name: name}
}

// Fields mints several field references owned by t.
func (t Table) Fields(names ...string) []Field {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = t.Field(name)
	}
	return fields
}

// As pairs the table with an alias for FROM and JOIN lists.
func (t Table) As(alias string) Aliased {
	return As(t, alias)
}

func (t Table) String() string {
	return t.name
}

func (t Table) renderSQL(Params, Dialect) (string, error) {
	return t.name, nil
}

// Field is a column reference rendered as table.name.
type Field struct {
	table Table
	name  string
}

// Name returns the column name without its table.
func (f Field) Name() string {
	return f.name
}

// Table returns the owning table.
func (f Field) Table() Table {
	return f.table
}

func (f Field) String() string {
	if f.table.name == "" {
		return f.name
	}
	return f.table.name + "." + f.name
}

func (f Field) renderSQL(Params, Dialect) (string, error) {
	return f.String(), nil
}

// Eq compares f = v. A nil v renders as IS NULL.
func (f Field) Eq(v any) *Expression { return Eq(f, v) }

// Ne compares f != v. A nil v renders as IS NOT NULL.
func (f Field) Ne(v any) *Expression { return Ne(f, v) }

// Lt compares f < v.
func (f Field) Lt(v any) *Expression { return Lt(f, v) }

// Le compares f <= v.
func (f Field) Le(v any) *Expression { return Le(f, v) }

// Gt compares f > v.
func (f Field) Gt(v any) *Expression { return Gt(f, v) }

// Ge compares f >= v.
func (f Field) Ge(v any) *Expression { return Ge(f, v) }

// In tests membership of f in values.
func (f Field) In(values any) *Expression { return In(f, values) }

// Like matches f against a pattern.
func (f Field) Like(pattern any) *Expression { return Like(f, pattern) }

// IsNull is shorthand for Eq(nil).
func (f Field) IsNull() *Expression { return Eq(f, nil) }

// IsNotNull is shorthand for Ne(nil).
func (f Field) IsNotNull() *Expression { return Ne(f, nil) }

// As pairs the field with an output alias.
func (f Field) As(alias string) Aliased { return As(f, alias) }

// Asc orders by f ascending.
func (f Field) Asc() Ordering { return Asc(f) }

// Desc orders by f descending.
func (f Field) Desc() Ordering { return Desc(f) }

// Alias is raw SQL text rendered verbatim. The caller is responsible for its safety.
type Alias string

func (a Alias) renderSQL(Params, Dialect) (string, error) {
	return string(a), nil
}

// Aliased pairs a reference or expression with alias text.
type Aliased struct {
	item  Operand
	alias string
}

// As pairs item with alias. In a select list it renders as "item AS alias";
// in FROM and JOIN lists as "item alias".
func As(item Operand, alias string) Aliased {
	return Aliased{item: item, alias: alias}
}

// Item returns the aliased reference or expression.
func (a Aliased) Item() Operand {
	return a.item
}

// Alias returns the alias text.
func (a Aliased) Alias() string {
	return a.alias
}
