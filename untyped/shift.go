package untyped

// Shift adds d to the index of every free variable in t. A variable is free
// when its index reaches past the binders crossed so far. ContextLen moves
// by d for every variable, bound or not, since it tracks the size of the
// whole context rather than binder depth.
func Shift(d int, t Term) Term {
	return shift(d, 0, t)
}

func shift(d, c int, t Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Index < c {
			return Var{t.Index, t.ContextLen + d}
		}
		return Var{t.Index + d, t.ContextLen + d}
	case Abs:
		return Abs{t.Name, shift(d, c+1, t.Body)}
	case App:
		return App{shift(d, c, t.Fn), shift(d, c, t.Arg)}
	}
	panic("unreachable")
}

// Subst replaces the free occurrences of variable j in t with s. Under each
// binder the target index and the free variables of s move up by one.
func Subst(j int, s, t Term) Term {
	return subst(j, 0, s, t)
}

func subst(j, c int, s, t Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Index == j+c {
			return Shift(c, s)
		}
		return t
	case Abs:
		return Abs{t.Name, subst(j, c+1, s, t.Body)}
	case App:
		return App{subst(j, c, s, t.Fn), subst(j, c, s, t.Arg)}
	}
	panic("unreachable")
}

// SubstTop substitutes s for variable 0 in t, the body of an abstraction,
// and then drops the binder: s is lifted over it first and the result is
// lowered once it is gone.
func SubstTop(t, s Term) Term {
	return Shift(-1, Subst(0, Shift(1, s), t))
}
