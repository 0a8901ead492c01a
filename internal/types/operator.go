package types

// Operator is the symbol connecting the children of an expression node.
type Operator string

const (
	// Comparison operators. Comparisons are binary and never flattened.
	EQ   Operator = "="
	NE   Operator = "!="
	GT   Operator = ">"
	GE   Operator = ">="
	LT   Operator = "<"
	LE   Operator = "<="
	IN   Operator = "IN"
	LIKE Operator = "LIKE"

	// Boolean junctions.
	AND Operator = "AND"
	OR  Operator = "OR"

	// Arithmetic operators.
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
	Mod Operator = "%"
)

// IsComparison reports whether op is a binary comparison.
func (op Operator) IsComparison() bool {
	switch op {
	case EQ, NE, GT, GE, LT, LE, IN, LIKE:
		return true
	}
	return false
}

// IsAssociative reports whether regrouping operands of op keeps the result:
// AND, OR, addition, and multiplication.
func (op Operator) IsAssociative() bool {
	switch op {
	case AND, OR, Add, Mul:
		return true
	}
	return false
}

// IsJunction reports whether op is AND or OR.
func (op Operator) IsJunction() bool {
	return op == AND || op == OR
}

// NullRewrite returns the operator used when the right-hand side of an
// equality comparison renders as NULL.
func (op Operator) NullRewrite() (string, bool) {
	switch op {
	case EQ:
		return "IS", true
	case NE:
		return "IS NOT", true
	}
	return "", false
}
