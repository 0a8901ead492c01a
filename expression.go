package exprql

import (
	"strings"
)

// Operand is a child of an expression node: an *Expression, a Table, Field,
// or Alias reference, a Literal, or a Param.
type Operand interface {
	renderSQL(params Params, d Dialect) (string, error)
}

// Expression is a node of the expression tree.
//
// A node with an operator renders its children joined by that operator and
// parenthesized. A node without an operator is a pass-through around at most
// one child, used to apply a function; with no children it renders as *.
// Nodes are never mutated after construction: every combinator returns a new
// root, so callers must always use the returned value.
type Expression struct {
	op       Operator
	children []Operand
	fn       string
	call     bool
}

// Wrap coerces v to an expression. An *Expression is returned unchanged.
// References, literals, and parameters become a single-child pass-through node.
// Any other value is wrapped in a Literal first.
func Wrap(v any) *Expression {
	switch x := v.(type) {
	case *Expression:
		if x != nil {
			return x
		}
	case Operand:
		return &Expression{children: []Operand{x}}
	}
	return &Expression{children: []Operand{operand(v)}}
}

// operand coerces v to a node child without adding a pass-through node. A
// bare pass-through node is replaced by its lone child.
func operand(v any) Operand {
	switch x := v.(type) {
	case *Expression:
		if x == nil {
			return L(nil)
		}
		if x.op == "" && x.fn == "" && !x.call && len(x.children) == 1 {
			return x.children[0]
		}
		return x
	case Operand:
		return x
	}
	return L(v)
}

// Combine joins left and right with op and returns the new root.
//
// Comparisons are binary and never merged. For AND, OR, and arithmetic
// operators the result is flattened when left carries no function and already
// uses op: a right side that is a multi node with the same operator and no
// function contributes its children when op is associative and is appended as
// one child otherwise, and a right side that is not a multi node is appended
// as one child. Otherwise a new two-child node [left, right] is
// built. left is never modified.
func Combine(left *Expression, right any, op Operator) *Expression {
	if left == nil {
		left = Wrap(nil)
	}
	if op.IsComparison() {
		return &Expression{op: op, children: []Operand{left, operand(right)}}
	}

	r := Wrap(right)
	if left.fn == "" && !left.call && left.op == op {
		switch {
		case r.op == op && r.fn == "" && !r.call && r.IsMulti():
			if !op.IsAssociative() {
				return &Expression{op: op, children: concat(left.children, r)}
			}
			return &Expression{op: op, children: concat(left.children, r.children...)}
		case !r.IsMulti():
			return &Expression{op: op, children: concat(left.children, r)}
		}
	}
	return &Expression{op: op, children: []Operand{left, r}}
}

func concat(base []Operand, extra ...Operand) []Operand {
	out := make([]Operand, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

// Apply applies the function name to e. If e has no function yet the result is
// a copy of e carrying name; otherwise e becomes the sole child of a new node
// carrying name, so NOT(NOT(x)) keeps both applications.
func (e *Expression) Apply(name string) *Expression {
	if e.fn == "" {
		c := *e
		c.fn = name
		return &c
	}
	return &Expression{children: []Operand{e}, fn: name}
}

// IsMulti reports whether any direct child is itself an expression.
func (e *Expression) IsMulti() bool {
	for _, c := range e.children {
		if _, ok := c.(*Expression); ok {
			return true
		}
	}
	return false
}

// Operator returns the node operator, or "" for a pass-through node.
func (e *Expression) Operator() Operator {
	return e.op
}

// Func returns the applied function name, or "".
func (e *Expression) Func() string {
	return e.fn
}

// Children returns a copy of the node children.
func (e *Expression) Children() []Operand {
	out := make([]Operand, len(e.children))
	copy(out, e.children)
	return out
}

// Render renders the tree for dialect d, resolving parameters from params.
// On error no partial text is returned.
func (e *Expression) Render(d Dialect, params Params) (string, error) {
	return e.renderSQL(params, d)
}

// MustRender is like Render but panics on error.
func (e *Expression) MustRender(d Dialect, params Params) string {
	s, err := e.Render(d, params)
	if err != nil {
		panic(err)
	}
	return s
}

func (e *Expression) renderSQL(params Params, d Dialect) (string, error) {
	if e.op == "" {
		return e.renderPassThrough(params, d)
	}

	parts := make([]string, len(e.children))
	for i, c := range e.children {
		s, err := c.renderSQL(params, d)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	op := string(e.op)
	if len(parts) == 2 && parts[1] == "NULL" {
		if rewritten, ok := e.op.NullRewrite(); ok {
			op = rewritten
		}
	}

	body := "(" + strings.Join(parts, " "+op+" ") + ")"
	return e.fn + body, nil
}

func (e *Expression) renderPassThrough(params Params, d Dialect) (string, error) {
	if e.call || (len(e.children) > 1 && e.fn != "") {
		args := make([]string, len(e.children))
		for i, c := range e.children {
			s, err := c.renderSQL(params, d)
			if err != nil {
				return "", err
			}
			args[i] = s
		}
		return e.fn + "(" + strings.Join(args, ", ") + ")", nil
	}

	if len(e.children) > 1 {
		return "", MalformedNodeError{Children: len(e.children)}
	}

	body := "*"
	if len(e.children) == 1 {
		s, err := e.children[0].renderSQL(params, d)
		if err != nil {
			return "", err
		}
		body = s
	}
	if e.fn != "" {
		return e.fn + "(" + body + ")", nil
	}
	return body, nil
}
