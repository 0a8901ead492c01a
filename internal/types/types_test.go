package types

import "testing"

// =============================================================================
// Operator Tests
// =============================================================================

func TestOperator_IsComparison(t *testing.T) {
	tests := []struct {
		op   Operator
		want bool
	}{
		{EQ, true},
		{NE, true},
		{GT, true},
		{GE, true},
		{LT, true},
		{LE, true},
		{IN, true},
		{LIKE, true},
		{AND, false},
		{OR, false},
		{Add, false},
		{Mul, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			if got := tt.op.IsComparison(); got != tt.want {
				t.Errorf("IsComparison() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperator_IsJunction(t *testing.T) {
	if !AND.IsJunction() || !OR.IsJunction() {
		t.Error("AND and OR must be junctions")
	}
	if EQ.IsJunction() || Add.IsJunction() {
		t.Error("EQ and + must not be junctions")
	}
}

func TestOperator_IsAssociative(t *testing.T) {
	for _, op := range []Operator{AND, OR, Add, Mul} {
		if !op.IsAssociative() {
			t.Errorf("%s.IsAssociative() = false, want true", op)
		}
	}
	for _, op := range []Operator{Sub, Div, Mod, EQ, LT} {
		if op.IsAssociative() {
			t.Errorf("%s.IsAssociative() = true, want false", op)
		}
	}
}

func TestOperator_NullRewrite(t *testing.T) {
	if got, ok := EQ.NullRewrite(); !ok || got != "IS" {
		t.Errorf("EQ.NullRewrite() = %q, %v", got, ok)
	}
	if got, ok := NE.NullRewrite(); !ok || got != "IS NOT" {
		t.Errorf("NE.NullRewrite() = %q, %v", got, ok)
	}
	if _, ok := LT.NullRewrite(); ok {
		t.Error("LT must not be rewritten")
	}
}

// =============================================================================
// Dialect Tests
// =============================================================================

func TestDialect_Families(t *testing.T) {
	tests := []struct {
		dialect  Dialect
		postgres bool
		mysql    bool
	}{
		{Postgres, true, false},
		{PostgreSQL, true, false},
		{" Postgres ", true, false},
		{MySQL, false, true},
		{MariaDB, false, true},
		{SQLite, false, false},
		{MSSQL, false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			if got := tt.dialect.IsPostgres(); got != tt.postgres {
				t.Errorf("IsPostgres() = %v, want %v", got, tt.postgres)
			}
			if got := tt.dialect.IsMySQL(); got != tt.mysql {
				t.Errorf("IsMySQL() = %v, want %v", got, tt.mysql)
			}
		})
	}
}
