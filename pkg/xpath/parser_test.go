package xpath

import (
	"errors"
	"testing"
)

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		expr string
		want string // literal value of a one-node tree
	}{
		{"abc", "abc"},
		{"  abc  ", "abc"},
		{"A B C", "A B C"},
		{"Sign In", "Sign In"},
		{`"a & b"`, "a & b"},
		{`'(01:00)'`, "(01:00)"},
		{`"  spaced  "`, "  spaced  "},
	}

	for _, tt := range tests {
		e, err := Parse(tt.expr)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.expr, err)
		}
		lit, ok := e.(*Literal)
		if !ok {
			t.Fatalf("Parse(%q) = %T, want *Literal", tt.expr, e)
		}
		if lit.Value != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.expr, lit.Value, tt.want)
		}
	}
}

func TestParseOperators(t *testing.T) {
	e, err := Parse("a & b | c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Equal precedence, left associative: ((a & b) | c).
	or, ok := e.(*Or)
	if !ok {
		t.Fatalf("top node = %T, want *Or", e)
	}
	and, ok := or.L.(*And)
	if !ok {
		t.Fatalf("left node = %T, want *And", or.L)
	}
	if and.L.(*Literal).Value != "a" || and.R.(*Literal).Value != "b" {
		t.Errorf("and operands = %v %v, want a b", and.L, and.R)
	}
	if or.R.(*Literal).Value != "c" {
		t.Errorf("or right = %v, want c", or.R)
	}
}

func TestParseNotBinding(t *testing.T) {
	// "!" applies only to the next atomic or parenthesized expression.
	e, err := Parse("!a & b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	and, ok := e.(*And)
	if !ok {
		t.Fatalf("top node = %T, want *And", e)
	}
	if _, ok := and.L.(*Not); !ok {
		t.Errorf("left node = %T, want *Not", and.L)
	}
	if _, ok := and.R.(*Literal); !ok {
		t.Errorf("right node = %T, want *Literal", and.R)
	}
}

func TestParseNestedParens(t *testing.T) {
	e, err := Parse("((a | (b & !c)))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	or, ok := e.(*Or)
	if !ok {
		t.Fatalf("top node = %T, want *Or", e)
	}
	and, ok := or.R.(*And)
	if !ok {
		t.Fatalf("right node = %T, want *And", or.R)
	}
	if _, ok := and.R.(*Not); !ok {
		t.Errorf("and right = %T, want *Not", and.R)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"(a & b",
		"a & b)",
		"a &",
		"& a",
		"a | | b",
		"!",
		"()",
		`"unterminated`,
	}

	for _, expr := range tests {
		_, err := Parse(expr)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", expr)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error = %T, want *ParseError", expr, err)
		}
	}
}
