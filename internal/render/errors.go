package render

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedDialect is returned when a literal is rendered without a dialect.
	ErrUnsupportedDialect = errors.New("unsupported dialect")
	// ErrUnknownDialect is returned when a dialect has no rule for a value kind.
	ErrUnknownDialect = errors.New("unknown dialect")
	// ErrNoConverter is returned for values with no literal conversion.
	ErrNoConverter = errors.New("no converter")
)

// UnknownDialectError indicates that a dialect has no text-literal rule.
type UnknownDialectError struct {
	Dialect string
}

func (e UnknownDialectError) Error() string {
	return fmt.Sprintf("%s: no text literal rule for dialect %q", ErrUnknownDialect, e.Dialect)
}

// Is matches ErrUnknownDialect.
func (e UnknownDialectError) Is(target error) bool {
	return target == ErrUnknownDialect
}

// NoConverterError indicates a value whose type cannot be rendered as a literal.
type NoConverterError struct {
	Type   reflect.Type
	Reason string
}

func (e NoConverterError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s for %s: %s", ErrNoConverter, name, e.Reason)
	}
	return fmt.Sprintf("%s for %s", ErrNoConverter, name)
}

// Is matches ErrNoConverter.
func (e NoConverterError) Is(target error) bool {
	return target == ErrNoConverter
}
