package parse

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// conditionLexer tokenizes SQL condition text.
var conditionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i:AND|OR|NOT|IN|LIKE|IS|NULL|TRUE|FALSE)\b`},
	{Name: "Param", Pattern: `:[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "Operator", Pattern: `<>|<=|>=|!=|[-+*/%=<>]`},
	{Name: "Punct", Pattern: `[(),.]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var options = []participle.Option{
	participle.Lexer(conditionLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Keyword"),
	participle.UseLookahead(2),
}

var (
	conditionParser = participle.MustBuild[orExpr](options...)
	valueParser     = participle.MustBuild[primary](options...)
)

type orExpr struct {
	Terms []*andExpr `@@ ( "OR" @@ )*`
}

type andExpr struct {
	Terms []*notExpr `@@ ( "AND" @@ )*`
}

type notExpr struct {
	Negated *notExpr    `  "NOT" @@`
	Cmp     *comparison `| @@`
}

type comparison struct {
	Left *sum `@@`
	RHS  *rhs `@@?`
}

type rhs struct {
	Is      *isNull  `  "IS" @@`
	In      *inList  `| "IN" @@`
	Like    *sum     `| "LIKE" @@`
	Compare *compare `| @@`
}

type isNull struct {
	Not bool `@"NOT"? "NULL"`
}

type inList struct {
	Values []*sum   `  "(" @@ ( "," @@ )* ")"`
	Param  *string  `| @Param`
}

type compare struct {
	Op    string `@( "<>" | "!=" | "<=" | ">=" | "=" | "<" | ">" )`
	Right *sum   `@@`
}

type sum struct {
	Left *term      `@@`
	Rest []*sumTail `@@*`
}

type sumTail struct {
	Op   string `@( "+" | "-" )`
	Term *term  `@@`
}

type term struct {
	Left *primary    `@@`
	Rest []*termTail `@@*`
}

type termTail struct {
	Op      string   `@( "*" | "/" | "%" )`
	Primary *primary `@@`
}

type primary struct {
	Null   bool     `  @"NULL"`
	Bool   *boolean `| @( "TRUE" | "FALSE" )`
	Number *string  `| @( "-"? Number )`
	String *string  `| @String`
	Param  *string  `| @Param`
	Call   *call    `| @@`
	Ref    *ref     `| @@`
	Group  *orExpr  `| "(" @@ ")"`
}

type boolean bool

func (b *boolean) Capture(values []string) error {
	*b = boolean(strings.EqualFold(values[0], "TRUE"))
	return nil
}

type call struct {
	Name string    `@Ident "("`
	Star bool      `( @"*"`
	Args []*orExpr `| ( @@ ( "," @@ )* )? ) ")"`
}

type ref struct {
	Table string `@Ident`
	Field string `( "." @Ident )?`
}
