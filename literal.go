package exprql

import "github.com/zoobzio/exprql/internal/render"

// Literal wraps a scalar or collection value rendered through the literal converter.
type Literal struct {
	value any
}

// L creates a literal.
func L(v any) Literal {
	return Literal{value: v}
}

// Value returns the wrapped value.
func (l Literal) Value() any {
	return l.value
}

func (l Literal) renderSQL(_ Params, d Dialect) (string, error) {
	return render.Literal(l.value, d)
}

// RenderLiteral converts v to SQL literal text for dialect d.
func RenderLiteral(v any, d Dialect) (string, error) {
	return render.Literal(v, d)
}

// RegisterConverter installs a literal conversion for values of type T.
// T must be a concrete type.
func RegisterConverter[T any](fn func(v T, d Dialect) (string, error)) {
	var zero T
	render.Register(zero, func(v any, d Dialect) (string, error) {
		return fn(v.(T), d)
	})
}

// QuoteText quotes s with the text escaping rule of dialect d.
func QuoteText(s string, d Dialect) (string, error) {
	return render.Text(s, d)
}
