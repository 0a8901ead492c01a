package exprql

import (
	"errors"
	"fmt"

	"github.com/zoobzio/exprql/internal/render"
)

var (
	// ErrInvalidState is returned when a statement method is called out of order
	// or for the wrong statement kind.
	ErrInvalidState = errors.New("invalid state")
	// ErrMissingClause is returned when a required clause is absent at render time.
	ErrMissingClause = errors.New("missing clause")
	// ErrMalformedNode is returned when an expression node violates its shape invariant.
	ErrMalformedNode = errors.New("malformed node")
	// ErrParameterNotFound is returned when a parameter has no value in the render mapping.
	ErrParameterNotFound = errors.New("parameter not found")

	// ErrNoConverter is returned for values with no literal conversion.
	ErrNoConverter = render.ErrNoConverter
	// ErrUnknownDialect is returned when a dialect has no text literal rule.
	ErrUnknownDialect = render.ErrUnknownDialect
	// ErrUnsupportedDialect is returned when a literal is rendered with no dialect.
	ErrUnsupportedDialect = render.ErrUnsupportedDialect
)

// NoConverterError carries the type that could not be converted.
type NoConverterError = render.NoConverterError

// UnknownDialectError carries the dialect that has no text rule.
type UnknownDialectError = render.UnknownDialectError

// ParameterNotFoundError indicates a parameter missing from the render mapping.
type ParameterNotFoundError struct {
	Name string
	// NoParams is set when no mapping was supplied at all.
	NoParams bool
}

func (e ParameterNotFoundError) Error() string {
	if e.NoParams {
		return fmt.Sprintf("%s: %q (no parameters supplied)", ErrParameterNotFound, e.Name)
	}
	return fmt.Sprintf("%s: %q", ErrParameterNotFound, e.Name)
}

// Is matches ErrParameterNotFound.
func (e ParameterNotFoundError) Is(target error) bool {
	return target == ErrParameterNotFound
}

// MalformedNodeError describes an operator-less node with several children and
// no function name.
type MalformedNodeError struct {
	Children int
}

func (e MalformedNodeError) Error() string {
	return fmt.Sprintf("%s: operator-less node has %d children and no function", ErrMalformedNode, e.Children)
}

// Is matches ErrMalformedNode.
func (e MalformedNodeError) Is(target error) bool {
	return target == ErrMalformedNode
}
