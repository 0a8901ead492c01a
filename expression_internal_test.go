package exprql

import (
	"errors"
	"testing"
)

func TestRender_MalformedNode(t *testing.T) {
	e := &Expression{children: []Operand{L(1), L(2)}}

	sql, err := e.Render(SQLite, nil)
	if !errors.Is(err, ErrMalformedNode) {
		t.Fatalf("Render() error = %v, want ErrMalformedNode", err)
	}
	if sql != "" {
		t.Errorf("Render() = %q on error, want empty", sql)
	}

	var mne MalformedNodeError
	if !errors.As(err, &mne) || mne.Children != 2 {
		t.Errorf("expected MalformedNodeError with 2 children, got %v", err)
	}
}

func TestRender_FunctionWithSeveralChildren(t *testing.T) {
	e := &Expression{children: []Operand{L(1), L(2)}, fn: "GREATEST"}

	sql, err := e.Render(SQLite, nil)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if sql != "GREATEST(1, 2)" {
		t.Errorf("Render() = %q, want %q", sql, "GREATEST(1, 2)")
	}
}

func TestMalformedNode_NestedPropagates(t *testing.T) {
	bad := &Expression{children: []Operand{L(1), L(2)}}
	_, err := And(Eq(T("t").Field("a"), 1), bad).Render(MySQL, nil)
	if !errors.Is(err, ErrMalformedNode) {
		t.Errorf("Render() error = %v, want ErrMalformedNode", err)
	}
}

func TestIsMulti(t *testing.T) {
	f := T("t").Field("a")

	tests := []struct {
		name string
		expr *Expression
		want bool
	}{
		{"comparison of leaves", Eq(f, 1), false},
		{"pass-through", Wrap(f), false},
		{"everything", Everything(), false},
		{"junction", And(Eq(f, 1), Eq(f, 2)), true},
		{"negated comparison", Not(Eq(f, 1)), false},
		{"double negation", Not(Not(Eq(f, 1))), true},
		{"arithmetic", Add(f, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.IsMulti(); got != tt.want {
				t.Errorf("IsMulti() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombine_ComparisonNeverMerges(t *testing.T) {
	f := T("t").Field("a")
	left := Eq(f, 1)

	e := Combine(left, 2, EQ)
	if len(e.children) != 2 || e.children[0] != left {
		t.Errorf("Combine() children = %v", e.children)
	}
	if len(left.children) != 2 {
		t.Errorf("left modified: %v", left.children)
	}
}

func TestCombine_CopiesChildren(t *testing.T) {
	f := T("t").Field("a")
	first := Eq(f, 1)
	left := And(first, Eq(f, 2))

	capBefore := cap(left.children)
	x := Combine(left, Eq(f, 3), AND)
	y := Combine(left, Eq(f, 4), AND)

	if len(left.children) != 2 || cap(left.children) != capBefore {
		t.Fatalf("left children len=%d cap=%d, want len=2 cap=%d", len(left.children), cap(left.children), capBefore)
	}

	x.children[0] = L("changed")
	if left.children[0] != Operand(first) || y.children[0] != Operand(first) {
		t.Error("merges share a backing array")
	}
	if got := y.MustRender(SQLite, nil); got != "((t.a = 1) AND (t.a = 2) AND (t.a = 4))" {
		t.Errorf("y = %q after changing x", got)
	}
}

func TestOperand_UnwrapsPassThrough(t *testing.T) {
	f := T("t").Field("a")
	if got := operand(Wrap(f)); got != Operand(f) {
		t.Errorf("operand(Wrap(f)) = %#v, want the field", got)
	}

	fn := Func("LOWER", f)
	if got := operand(fn); got != Operand(fn) {
		t.Error("operand() unwrapped a function node")
	}
	if got := operand(Everything()); got == nil {
		t.Error("operand(Everything()) = nil")
	}
}

func TestCombine_NilLeft(t *testing.T) {
	e := Combine(nil, 1, AND)
	sql, err := e.Render(SQLite, nil)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if sql != "(NULL AND 1)" {
		t.Errorf("Render() = %q, want %q", sql, "(NULL AND 1)")
	}
}
