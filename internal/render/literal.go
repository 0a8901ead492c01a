package render

import (
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/exprql/internal/types"
)

const (
	nullSQL        = "NULL"
	datetimeLayout = "2006-01-02 15:04:05"
)

var backslashEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\x00", `\0`,
	"\b", `\b`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Literal renders v as SQL literal text for dialect d.
func Literal(v any, d types.Dialect) (string, error) {
	if d.Normalize() == "" {
		return "", ErrUnsupportedDialect
	}
	return convert(v, d)
}

func convert(v any, d types.Dialect) (string, error) {
	if v == nil {
		return nullSQL, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nullSQL, nil
		}
	}

	if fn, ok := lookup(rv.Type()); ok {
		return fn(v, d)
	}

	switch x := v.(type) {
	case bool:
		return Bool(x, d), nil
	case string:
		return Text(x, d)
	case []byte:
		return Text(string(x), d)
	case time.Time:
		return quote(x.Format(datetimeLayout)), nil
	case time.Duration:
		return Interval(x), nil
	case driver.Valuer:
		dv, err := x.Value()
		if err != nil {
			return "", fmt.Errorf("driver value of %T: %w", v, err)
		}
		return convert(dv, d)
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return convert(rv.Elem().Interface(), d)
	case reflect.Bool:
		return Bool(rv.Bool(), d), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return float(rv)
	case reflect.String:
		return Text(rv.String(), d)
	case reflect.Slice, reflect.Array:
		return list(rv, d)
	}

	return "", NoConverterError{Type: rv.Type()}
}

// Bool renders b as 't'/'f' for the postgres family and 1/0 elsewhere.
func Bool(b bool, d types.Dialect) string {
	if CapabilitiesOf(d).Bool == BoolQuoted {
		if b {
			return "'t'"
		}
		return "'f'"
	}
	if b {
		return "1"
	}
	return "0"
}

// Text quotes s using the escaping rule of dialect d.
func Text(s string, d types.Dialect) (string, error) {
	switch CapabilitiesOf(d).Quote {
	case QuoteBackslash:
		return quote(backslashEscaper.Replace(s)), nil
	case QuoteDoubled:
		return quote(strings.ReplaceAll(s, "'", "''")), nil
	}
	return "", UnknownDialectError{Dialect: string(d)}
}

// Interval renders a duration as whole days plus the remaining whole seconds.
func Interval(dur time.Duration) string {
	const day = 24 * time.Hour
	days := dur / day
	rem := dur % day
	if rem < 0 {
		days--
		rem += day
	}
	return fmt.Sprintf("INTERVAL '%d days %d seconds'", int64(days), int64(rem/time.Second))
}

func float(rv reflect.Value) (string, error) {
	f := rv.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", NoConverterError{Type: rv.Type(), Reason: "non-finite value"}
	}
	bits := 64
	if rv.Kind() == reflect.Float32 {
		bits = 32
	}
	return strconv.FormatFloat(f, 'f', -1, bits), nil
}

func list(rv reflect.Value, d types.Dialect) (string, error) {
	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		s, err := convert(rv.Index(i).Interface(), d)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}

func quote(s string) string {
	return "'" + s + "'"
}
