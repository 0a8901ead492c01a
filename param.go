package exprql

import "github.com/zoobzio/exprql/internal/render"

// Params maps parameter names to values at render time.
type Params map[string]any

// Param is a named placeholder. Its value is looked up in the Params supplied
// to each render, so the same Param can be rendered with different mappings.
type Param struct {
	name string
}

// P creates a named parameter.
func P(name string) Param {
	return Param{name: name}
}

// Name returns the parameter name.
func (p Param) Name() string {
	return p.name
}

// Resolve looks up the parameter value.
func (p Param) Resolve(params Params) (any, error) {
	if params == nil {
		return nil, ParameterNotFoundError{Name: p.name, NoParams: true}
	}
	v, ok := params[p.name]
	if !ok {
		return nil, ParameterNotFoundError{Name: p.name}
	}
	return v, nil
}

func (p Param) renderSQL(params Params, d Dialect) (string, error) {
	v, err := p.Resolve(params)
	if err != nil {
		return "", err
	}
	return render.Literal(v, d)
}
