// Package untyped implements the untyped lambda calculus over de Bruijn
// indices: shifting, capture-avoiding substitution, small-step
// call-by-value reduction, and printing back to named terms.
//
// Terms are immutable. Every operation builds a new tree and leaves its
// input untouched, so subterms may be shared freely.
package untyped

// Term is one of Var, Abs or App.
type Term interface {
	isTerm()
	DeBruijnString() string
	ContextString(ctx []string) string
}

// Var is a variable reference. Index counts binders outward from the
// reference, 0 being the innermost. ContextLen is the length of the naming
// context the variable was resolved against; reduction ignores it and the
// printer uses it to detect terms that are out of sync with their context.
type Var struct {
	Index      int
	ContextLen int
}

func (Var) isTerm() {}

// Abs binds one variable in Body. Name is only a hint for printing.
type Abs struct {
	Name string
	Body Term
}

func (Abs) isTerm() {}

type App struct {
	Fn  Term
	Arg Term
}

func (App) isTerm() {}

func Variable(index, contextLen int) Var {
	return Var{Index: index, ContextLen: contextLen}
}

func Abstraction(body Term, name string) Abs {
	return Abs{Name: name, Body: body}
}

func Application(fn, arg Term) App {
	return App{Fn: fn, Arg: arg}
}
