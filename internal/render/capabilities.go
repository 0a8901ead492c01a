package render

import "github.com/zoobzio/exprql/internal/types"

// QuoteStyle is the text-literal escaping strategy of a dialect.
type QuoteStyle int

const (
	QuoteUnknown   QuoteStyle = iota // Dialect has no text rule
	QuoteBackslash                   // Backslash escapes for ', \, NUL, \b, \n, \r, \t
	QuoteDoubled                     // Embedded ' doubled
)

// BoolStyle is the boolean-literal representation of a dialect.
type BoolStyle int

const (
	BoolNumeric BoolStyle = iota // 1 / 0
	BoolQuoted                   // 't' / 'f'
)

// Capabilities describes the literal rules of a dialect.
type Capabilities struct {
	Quote QuoteStyle
	Bool  BoolStyle
}

// CapabilitiesOf returns the literal rules for d.
func CapabilitiesOf(d types.Dialect) Capabilities {
	switch {
	case d.IsPostgres():
		return Capabilities{Quote: QuoteBackslash, Bool: BoolQuoted}
	case d.IsMySQL():
		return Capabilities{Quote: QuoteBackslash, Bool: BoolNumeric}
	}

	switch d.Normalize() {
	case types.SQLite, types.Firebird, types.Sybase, types.MaxDB, types.MSSQL:
		return Capabilities{Quote: QuoteDoubled, Bool: BoolNumeric}
	}
	return Capabilities{Quote: QuoteUnknown, Bool: BoolNumeric}
}
