package render

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/zoobzio/exprql/internal/types"
)

// Func converts a value of a registered type to SQL literal text.
type Func func(v any, d types.Dialect) (string, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[reflect.Type]Func)
)

func init() {
	Register(civil.Date{}, func(v any, _ types.Dialect) (string, error) {
		return quote(formatDate(v.(civil.Date))), nil
	})
	Register(civil.Time{}, func(v any, _ types.Dialect) (string, error) {
		return quote(formatTime(v.(civil.Time))), nil
	})
	Register(civil.DateTime{}, func(v any, _ types.Dialect) (string, error) {
		dt := v.(civil.DateTime)
		return quote(formatDate(dt.Date) + " " + formatTime(dt.Time)), nil
	})
	Register(uuid.UUID{}, func(v any, d types.Dialect) (string, error) {
		return Text(v.(uuid.UUID).String(), d)
	})
}

// Register installs fn as the converter for values of sample's dynamic type.
// A later registration for the same type replaces the earlier one.
func Register(sample any, fn Func) {
	t := reflect.TypeOf(sample)
	if t == nil {
		panic("render: cannot register a converter for nil")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = fn
}

func lookup(t reflect.Type) (Func, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[t]
	return fn, ok
}

func formatDate(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func formatTime(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}
