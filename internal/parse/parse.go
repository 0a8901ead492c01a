// Package parse reads textual SQL conditions into exprql expression trees.
//
// The accepted language covers what the expression algebra can express:
// AND, OR, NOT, comparisons (= != <> < <= > >=), IS [NOT] NULL, IN lists,
// LIKE, arithmetic (+ - * / %), function calls including COUNT(*),
// table.field references, :name parameters, numbers, 'quoted' strings with
// '' escapes, and NULL, TRUE, FALSE. Keywords are case-insensitive.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/exprql"
)

// ErrNotLiteral is returned by Value for input that parses to something
// other than a literal value.
var ErrNotLiteral = errors.New("not a literal value")

// Condition parses s into an expression.
func Condition(s string) (*exprql.Expression, error) {
	tree, err := conditionParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("parse condition: %w", err)
	}
	v, err := tree.build()
	if err != nil {
		return nil, fmt.Errorf("parse condition: %w", err)
	}
	return exprql.Wrap(v), nil
}

// Value parses a single literal: a number, 'string', NULL, TRUE, or FALSE.
func Value(s string) (any, error) {
	p, err := valueParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("parse value: %w", err)
	}
	if !p.isLiteral() {
		return nil, fmt.Errorf("%w: %q", ErrNotLiteral, s)
	}
	return p.build()
}

func (o *orExpr) build() (any, error) {
	terms, err := buildAll(o.Terms)
	if err != nil {
		return nil, err
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return exprql.Or(terms[0], terms[1:]...), nil
}

func (a *andExpr) build() (any, error) {
	terms, err := buildAll(a.Terms)
	if err != nil {
		return nil, err
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return exprql.And(terms[0], terms[1:]...), nil
}

func (n *notExpr) build() (any, error) {
	if n.Negated != nil {
		v, err := n.Negated.build()
		if err != nil {
			return nil, err
		}
		return exprql.Not(v), nil
	}
	return n.Cmp.build()
}

var comparisons = map[string]func(l, r any) *exprql.Expression{
	"=":  exprql.Eq,
	"!=": exprql.Ne,
	"<>": exprql.Ne,
	"<":  exprql.Lt,
	"<=": exprql.Le,
	">":  exprql.Gt,
	">=": exprql.Ge,
}

func (c *comparison) build() (any, error) {
	left, err := c.Left.build()
	if err != nil || c.RHS == nil {
		return left, err
	}

	r := c.RHS
	switch {
	case r.Is != nil:
		if r.Is.Not {
			return exprql.Ne(left, nil), nil
		}
		return exprql.Eq(left, nil), nil
	case r.In != nil:
		return buildIn(left, r.In)
	case r.Like != nil:
		pattern, err := r.Like.build()
		if err != nil {
			return nil, err
		}
		return exprql.Like(left, pattern), nil
	default:
		right, err := r.Compare.Right.build()
		if err != nil {
			return nil, err
		}
		return comparisons[r.Compare.Op](left, right), nil
	}
}

func buildIn(left any, in *inList) (any, error) {
	if in.Param != nil {
		return exprql.In(left, exprql.P(strings.TrimPrefix(*in.Param, ":"))), nil
	}
	values := make([]any, len(in.Values))
	for i, s := range in.Values {
		if !s.isLiteral() {
			return nil, fmt.Errorf("IN list entries must be literals")
		}
		v, err := s.build()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return exprql.In(left, values), nil
}

func (s *sum) build() (any, error) {
	v, err := s.Left.build()
	if err != nil {
		return nil, err
	}
	for _, tail := range s.Rest {
		r, err := tail.Term.build()
		if err != nil {
			return nil, err
		}
		if tail.Op == "+" {
			v = exprql.Add(v, r)
		} else {
			v = exprql.Sub(v, r)
		}
	}
	return v, nil
}

func (s *sum) isLiteral() bool {
	return len(s.Rest) == 0 && len(s.Left.Rest) == 0 && s.Left.Left.isLiteral()
}

func (t *term) build() (any, error) {
	v, err := t.Left.build()
	if err != nil {
		return nil, err
	}
	for _, tail := range t.Rest {
		r, err := tail.Primary.build()
		if err != nil {
			return nil, err
		}
		switch tail.Op {
		case "*":
			v = exprql.Mul(v, r)
		case "/":
			v = exprql.Div(v, r)
		default:
			v = exprql.Mod(v, r)
		}
	}
	return v, nil
}

func (p *primary) isLiteral() bool {
	return p.Null || p.Bool != nil || p.Number != nil || p.String != nil
}

func (p *primary) build() (any, error) {
	switch {
	case p.Null:
		return nil, nil
	case p.Bool != nil:
		return bool(*p.Bool), nil
	case p.Number != nil:
		return number(*p.Number)
	case p.String != nil:
		return unquote(*p.String), nil
	case p.Param != nil:
		return exprql.P(strings.TrimPrefix(*p.Param, ":")), nil
	case p.Call != nil:
		return p.Call.build()
	case p.Ref != nil:
		return p.Ref.build(), nil
	default:
		return p.Group.build()
	}
}

func (c *call) build() (any, error) {
	if c.Star {
		return exprql.Func(c.Name, exprql.Everything()), nil
	}
	args, err := buildAll(c.Args)
	if err != nil {
		return nil, err
	}
	return exprql.Call(c.Name, args...), nil
}

func (r *ref) build() exprql.Field {
	if r.Field == "" {
		return exprql.T("").Field(r.Table)
	}
	return exprql.T(r.Table).Field(r.Field)
}

type builder interface {
	build() (any, error)
}

func buildAll[T builder](nodes []T) ([]any, error) {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		v, err := n.build()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func number(s string) (any, error) {
	if !strings.Contains(s, ".") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return f, nil
}

func unquote(s string) string {
	return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
}
