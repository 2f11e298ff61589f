package untyped

import "testing"

// closedUnder reports whether every variable in t points at one of the
// depth binders around it.
func closedUnder(depth int, t Term) bool {
	switch t := t.(type) {
	case Var:
		return t.Index >= 0 && t.Index < depth
	case Abs:
		return closedUnder(depth+1, t.Body)
	case App:
		return closedUnder(depth, t.Fn) && closedUnder(depth, t.Arg)
	}
	panic("unreachable")
}

// open is λ.λ. 1 (0 2) under a context of one name.
var open = Abstraction(Abstraction(
	Application(Variable(1, 3), Application(Variable(0, 3), Variable(2, 3))),
	"y"), "x")

func TestShift(t *testing.T) {
	tests := []struct {
		name string
		d    int
		in   Term
		want Term
	}{
		{"FreeVar", 3, Variable(1, 2), Variable(4, 5)},
		{"Down", -1, Variable(2, 3), Variable(1, 2)},
		{"BoundVar", 1, id, Abstraction(Variable(0, 2), "x")},
		{
			"UnderTwoBinders", 2, open,
			Abstraction(Abstraction(
				Application(Variable(1, 5), Application(Variable(0, 5), Variable(4, 5))),
				"y"), "x"),
		},
		{
			"App", 1, Application(Variable(0, 1), Abstraction(Variable(1, 2), "z")),
			Application(Variable(1, 2), Abstraction(Variable(2, 3), "z")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shift(tt.d, tt.in); got != tt.want {
				t.Errorf("Shift(%d, %s) = %s, want %s", tt.d, tt.in.DeBruijnString(), got.DeBruijnString(), tt.want.DeBruijnString())
			}
		})
	}
}

func TestShiftKeepsNames(t *testing.T) {
	got := Shift(5, open).(Abs)
	if got.Name != "x" || got.Body.(Abs).Name != "y" {
		t.Errorf("names lost: %#v", got)
	}
}

func TestShiftIdentity(t *testing.T) {
	terms := append([]Term{open, Variable(0, 1)}, catalogueTerms()...)
	for _, tm := range terms {
		if got := Shift(0, tm); got != tm {
			t.Errorf("Shift(0, %s) = %s", tm.DeBruijnString(), got.DeBruijnString())
		}
	}
}

func TestShiftAdditive(t *testing.T) {
	for _, c := range []struct{ a, b int }{{1, 1}, {2, -1}, {3, -3}, {0, 4}, {5, -2}} {
		got := Shift(c.b, Shift(c.a, open))
		want := Shift(c.a+c.b, open)
		if got != want {
			t.Errorf("Shift(%d, Shift(%d, t)) = %s, want %s", c.b, c.a, got.DeBruijnString(), want.DeBruijnString())
		}
	}
}

func TestSubst(t *testing.T) {
	// [b ↦ a](b (λx.λy. b)) in the context a, b.
	tm := Application(Variable(0, 2), Abstraction(Abstraction(Variable(2, 4), "y"), "x"))
	got := Subst(0, Variable(1, 2), tm)
	want := Application(Variable(1, 2), Abstraction(Abstraction(Variable(3, 4), "y"), "x"))
	if got != want {
		t.Fatalf("Subst = %s, want %s", got.DeBruijnString(), want.DeBruijnString())
	}
	if s := Print(got, []string{"a", "b"}); s != "(a (lambda x. (lambda y. a)))" {
		t.Errorf("Print = %q", s)
	}
}

func TestSubstLeavesOtherVars(t *testing.T) {
	tm := Application(Variable(1, 2), Abstraction(Variable(0, 3), "x"))
	if got := Subst(0, id, tm); got != tm {
		t.Errorf("Subst = %s, want %s", got.DeBruijnString(), tm.DeBruijnString())
	}
}

func TestSubstTop(t *testing.T) {
	// (λy. y a) a in the context a: the argument lands next to its own
	// binding and both refer to a once the binder is gone.
	body := Application(Variable(0, 2), Variable(1, 2))
	got := SubstTop(body, Variable(0, 1))
	want := Application(Variable(0, 1), Variable(0, 1))
	if got != want {
		t.Fatalf("SubstTop = %s, want %s", got.DeBruijnString(), want.DeBruijnString())
	}
	if s := Print(got, []string{"a"}); s != "(a a)" {
		t.Errorf("Print = %q", s)
	}
}

func TestSubstTopClosed(t *testing.T) {
	bodies := []Abs{id, k, sComb, tru, fls, not, zero, one, two, scc, selfApp}
	args := []Term{id, k, two, selfApp}
	for _, abs := range bodies {
		for _, arg := range args {
			got := SubstTop(abs.Body, arg)
			if !closedUnder(0, got) {
				t.Errorf("SubstTop(%s, %s) = %s refers past its binders",
					abs.Body.DeBruijnString(), arg.DeBruijnString(), got.DeBruijnString())
			}
		}
	}
}
