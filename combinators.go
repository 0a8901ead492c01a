package exprql

// And folds its arguments into one AND node. A single argument is returned
// as its wrapped expression.
func And(first any, rest ...any) *Expression {
	return fold(AND, first, rest)
}

// Or folds its arguments into one OR node.
func Or(first any, rest ...any) *Expression {
	return fold(OR, first, rest)
}

func fold(op Operator, first any, rest []any) *Expression {
	e := Wrap(first)
	for _, r := range rest {
		e = Combine(e, r, op)
	}
	return e
}

// Not negates v, rendering NOT(v).
func Not(v any) *Expression {
	return Wrap(v).Apply("NOT")
}

// compare builds a binary comparison node. Leaves are kept unwrapped so the
// result is not a multi node and can be flattened into junctions.
func compare(l, r any, op Operator) *Expression {
	return &Expression{op: op, children: []Operand{operand(l), operand(r)}}
}

// Eq builds (l = r), or (l IS NULL) when r is nil.
func Eq(l, r any) *Expression { return compare(l, r, EQ) }

// Ne builds (l != r), or (l IS NOT NULL) when r is nil.
func Ne(l, r any) *Expression { return compare(l, r, NE) }

// Lt builds (l < r).
func Lt(l, r any) *Expression { return compare(l, r, LT) }

// Le builds (l <= r).
func Le(l, r any) *Expression { return compare(l, r, LE) }

// Gt builds (l > r).
func Gt(l, r any) *Expression { return compare(l, r, GT) }

// Ge builds (l >= r).
func Ge(l, r any) *Expression { return compare(l, r, GE) }

// In builds (l IN (v1, v2, ...)). values is usually a slice.
func In(l, values any) *Expression { return compare(l, values, IN) }

// Like builds (l LIKE pattern).
func Like(l, pattern any) *Expression { return compare(l, pattern, LIKE) }

// Add builds (l + r), flattening chains of additions.
func Add(l, r any) *Expression { return Combine(Wrap(l), r, OpAdd) }

// Sub builds (l - r).
func Sub(l, r any) *Expression { return Combine(Wrap(l), r, OpSub) }

// Mul builds (l * r).
func Mul(l, r any) *Expression { return Combine(Wrap(l), r, OpMul) }

// Div builds (l / r).
func Div(l, r any) *Expression { return Combine(Wrap(l), r, OpDiv) }

// Mod builds (l % r).
func Mod(l, r any) *Expression { return Combine(Wrap(l), r, OpMod) }

// Func applies the single-argument SQL function name to v.
func Func(name string, v any) *Expression {
	return Wrap(v).Apply(name)
}

// Call builds a function call with any number of arguments, rendered as
// NAME(a, b, ...). With no arguments it renders NAME().
func Call(name string, args ...any) *Expression {
	children := make([]Operand, len(args))
	for i, a := range args {
		children[i] = operand(a)
	}
	return &Expression{fn: name, children: children, call: true}
}

// Everything is the * placeholder.
func Everything() *Expression {
	return &Expression{}
}

// Count applies COUNT.
func Count(v any) *Expression { return Func("COUNT", v) }

// CountAll renders COUNT(*).
func CountAll() *Expression { return Everything().Apply("COUNT") }

// Max applies MAX.
func Max(v any) *Expression { return Func("MAX", v) }

// Min applies MIN.
func Min(v any) *Expression { return Func("MIN", v) }

// Sum applies SUM.
func Sum(v any) *Expression { return Func("SUM", v) }

// Avg applies AVG.
func Avg(v any) *Expression { return Func("AVG", v) }

// Upper applies UPPER.
func Upper(v any) *Expression { return Func("UPPER", v) }

// Lower applies LOWER.
func Lower(v any) *Expression { return Func("LOWER", v) }

// And combines e with others using AND.
func (e *Expression) And(others ...any) *Expression { return fold(AND, e, others) }

// Or combines e with others using OR.
func (e *Expression) Or(others ...any) *Expression { return fold(OR, e, others) }

// Not negates e.
func (e *Expression) Not() *Expression { return e.Apply("NOT") }

// Eq compares e = v.
func (e *Expression) Eq(v any) *Expression { return Eq(e, v) }

// Ne compares e != v.
func (e *Expression) Ne(v any) *Expression { return Ne(e, v) }

// Lt compares e < v.
func (e *Expression) Lt(v any) *Expression { return Lt(e, v) }

// Le compares e <= v.
func (e *Expression) Le(v any) *Expression { return Le(e, v) }

// Gt compares e > v.
func (e *Expression) Gt(v any) *Expression { return Gt(e, v) }

// Ge compares e >= v.
func (e *Expression) Ge(v any) *Expression { return Ge(e, v) }

// In tests membership of e in values.
func (e *Expression) In(values any) *Expression { return In(e, values) }

// Like matches e against pattern.
func (e *Expression) Like(pattern any) *Expression { return Like(e, pattern) }

// Add builds (e + v).
func (e *Expression) Add(v any) *Expression { return Combine(e, v, OpAdd) }

// Sub builds (e - v).
func (e *Expression) Sub(v any) *Expression { return Combine(e, v, OpSub) }

// Mul builds (e * v).
func (e *Expression) Mul(v any) *Expression { return Combine(e, v, OpMul) }

// Div builds (e / v).
func (e *Expression) Div(v any) *Expression { return Combine(e, v, OpDiv) }

// As pairs e with an output alias.
func (e *Expression) As(alias string) Aliased { return As(e, alias) }

// Asc orders by e ascending.
func (e *Expression) Asc() Ordering { return Asc(e) }

// Desc orders by e descending.
func (e *Expression) Desc() Ordering { return Desc(e) }
